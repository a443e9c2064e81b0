package model

// User 用户模型，username 为主键（注册时取 email 中最后一个 @ 之前的部分）
type User struct {
	Username string  `gorm:"primaryKey;size:255;comment:用户名" json:"username"`
	Email    string  `gorm:"size:255;not null;uniqueIndex;comment:邮箱" json:"email"`
	Name     string  `gorm:"size:255;not null;comment:昵称" json:"name"`
	Password string  `gorm:"size:255;not null;comment:密码哈希" json:"-"` // json:"-" 序列化时忽略密码
	IsActive bool    `gorm:"not null;default:true;comment:是否启用" json:"is_active"`
	IsStaff  bool    `gorm:"not null;default:false;comment:是否管理员" json:"is_staff"`
	Avatar   *string `gorm:"size:500;comment:用户头像" json:"avatar"`

	// 关联关系
	Blogs    []Blog    `gorm:"foreignKey:AuthorUsername" json:"blogs,omitempty"`
	Comments []Comment `gorm:"foreignKey:Username" json:"comments,omitempty"`
	Likes    []Like    `gorm:"foreignKey:Username" json:"likes,omitempty"`
}

func (User) TableName() string {
	return "users"
}

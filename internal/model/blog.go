package model

import "time"

// Blog 博客模型
// desc 字段落库为 description 列（desc 是 SQL 保留字），JSON 仍输出 desc
type Blog struct {
	ID             int64     `gorm:"primaryKey;autoIncrement;comment:博客ID" json:"id"`
	Title          string    `gorm:"size:255;not null;comment:标题" json:"title"`
	Desc           string    `gorm:"column:description;type:text;not null;comment:正文" json:"desc"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index:idx_blogs_created_at;comment:创建时间" json:"created_at"`
	AuthorUsername string    `gorm:"size:255;not null;index:idx_blogs_author;comment:作者用户名" json:"author"`

	// likes_count 由查询时的 COUNT 子查询填充，不落库
	LikesCount int64 `gorm:"->;-:migration" json:"likes_count"`

	// 关联关系
	Author   User      `gorm:"foreignKey:AuthorUsername;constraint:OnDelete:CASCADE" json:"-"`
	Comments []Comment `gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Likes    []Like    `gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE" json:"likes,omitempty"`
}

func (Blog) TableName() string {
	return "blogs"
}

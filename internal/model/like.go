package model

import "time"

// Like 点赞模型，复合唯一索引保证同一用户对同一博客最多点赞一次
type Like struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:点赞记录ID" json:"id"`
	BlogID    int64     `gorm:"not null;uniqueIndex:uq_blog_user_like;index:idx_likes_blog_id;comment:被点赞博客ID" json:"blog_id"`
	Username  string    `gorm:"size:255;not null;uniqueIndex:uq_blog_user_like;index:idx_likes_username;comment:点赞用户名" json:"username"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:点赞时间" json:"created_at"`

	Blog Blog `gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE" json:"-"`
	// references 必须显式指定：两侧都有 Username 字段，省略时 gorm 会把外键方向解析反
	User User `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE" json:"-"`
}

func (Like) TableName() string {
	return "likes"
}

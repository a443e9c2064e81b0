package model

import "time"

// Comment 评论模型
type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:评论ID" json:"id"`
	Text      string    `gorm:"type:text;not null;comment:评论内容" json:"text"`
	BlogID    int64     `gorm:"not null;index:idx_comments_blog_id;comment:所属博客ID" json:"blog_id"`
	Username  string    `gorm:"size:255;not null;index:idx_comments_username;comment:评论用户名" json:"username"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:评论时间" json:"created_at"`

	Blog Blog `gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE" json:"-"`
	// references 必须显式指定：两侧都有 Username 字段，省略时 gorm 会把外键方向解析反
	User User `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}

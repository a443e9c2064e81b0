package model

import "time"

// Follow 关注关系模型，表示 follower 关注 following
// 复合唯一索引保证同一对用户最多只有一条边
type Follow struct {
	ID                int64     `gorm:"primaryKey;autoIncrement;comment:关注关系ID" json:"id"`
	FollowerUsername  string    `gorm:"size:255;not null;uniqueIndex:uq_follower_following;index:idx_follows_follower;comment:关注者用户名" json:"follower"`
	FollowingUsername string    `gorm:"size:255;not null;uniqueIndex:uq_follower_following;index:idx_follows_following;comment:被关注者用户名" json:"following"`
	CreatedAt         time.Time `gorm:"autoCreateTime;comment:关注时间" json:"created_at"`

	FollowerUser  User `gorm:"foreignKey:FollowerUsername;constraint:OnDelete:CASCADE" json:"-"`
	FollowingUser User `gorm:"foreignKey:FollowingUsername;constraint:OnDelete:CASCADE" json:"-"`
}

func (Follow) TableName() string {
	return "follows"
}

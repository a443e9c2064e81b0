package repository

import (
	"errors"
	"testing"
	"time"

	"bloggers/internal/model"

	"gorm.io/gorm"
)

// 迁移后的 users.username 必须是字符串列且外键方向正确：
// 用户可先于评论/点赞写入，评论和点赞通过 username 引用 users
func TestUserWritesAfterMigrate(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	if err := repo.Create(&model.User{
		Username: "jake",
		Email:    "jake@example.com",
		Name:     "Jake",
		Password: "hashed",
		IsActive: true,
	}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	user, err := repo.GetByUsername("jake")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if user.Username != "jake" || user.Email != "jake@example.com" {
		t.Fatalf("unexpected user roundtrip: %+v", user)
	}

	blogID := seedBlog(t, db, "jake", "post", time.Now())
	if err := db.Create(&model.Comment{BlogID: blogID, Username: "jake", Text: "hi"}).Error; err != nil {
		t.Fatalf("create comment referencing user: %v", err)
	}
	if err := db.Create(&model.Like{BlogID: blogID, Username: "jake"}).Error; err != nil {
		t.Fatalf("create like referencing user: %v", err)
	}

	var comment model.Comment
	if err := db.Where("username = ?", "jake").First(&comment).Error; err != nil {
		t.Fatalf("read comment by username: %v", err)
	}
	if comment.Username != "jake" {
		t.Fatalf("expected comment username jake, got %q", comment.Username)
	}
}

func TestUpdateAvatar(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	seedUser(t, db, "jake")

	if err := repo.UpdateAvatar("jake", "http://cdn/avatars/jake/x.png"); err != nil {
		t.Fatalf("update avatar: %v", err)
	}

	user, err := repo.GetByUsername("jake")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if user.Avatar == nil || *user.Avatar != "http://cdn/avatars/jake/x.png" {
		t.Fatalf("expected avatar set, got %+v", user.Avatar)
	}

	if err := repo.UpdateAvatar("ghost", "x"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found for unknown user, got %v", err)
	}
}

package repository

import (
	"testing"
	"time"

	"bloggers/internal/model"
	"bloggers/pkg/logger"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger.Logger = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Follow{},
		&model.Blog{},
		&model.Comment{},
		&model.Like{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) {
	t.Helper()
	user := model.User{
		Username: username,
		Email:    username + "@example.com",
		Name:     username,
		Password: "hashed",
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
}

func seedBlog(t *testing.T, db *gorm.DB, author, title string, createdAt time.Time) int64 {
	t.Helper()
	blog := model.Blog{
		Title:          title,
		Desc:           "body of " + title,
		AuthorUsername: author,
		CreatedAt:      createdAt,
	}
	if err := db.Create(&blog).Error; err != nil {
		t.Fatalf("seed blog %s: %v", title, err)
	}
	return blog.ID
}

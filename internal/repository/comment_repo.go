package repository

import (
	"bloggers/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create 创建评论
func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// CountByBlog 统计博客的评论数
func (r *CommentRepository) CountByBlog(blogID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Comment{}).Where("blog_id = ?", blogID).Count(&count).Error
	return count, err
}

// ListByBlog 获取博客的评论列表，按时间正序
func (r *CommentRepository) ListByBlog(blogID int64) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.Where("blog_id = ?", blogID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}

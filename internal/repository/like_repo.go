package repository

import (
	"bloggers/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Create 创建点赞，重复点赞时静默跳过（唯一索引 + ON CONFLICT DO NOTHING）
// 返回是否真正新建了点赞
func (r *LikeRepository) Create(blogID int64, username string) (bool, error) {
	like := &model.Like{
		BlogID:   blogID,
		Username: username,
	}
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete 删除点赞，记录不存在时不报错（幂等删除）
// 返回是否真正删除了记录
func (r *LikeRepository) Delete(blogID int64, username string) (bool, error) {
	result := r.db.Where("blog_id = ? AND username = ?", blogID, username).
		Delete(&model.Like{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists 检查点赞是否存在
func (r *LikeRepository) Exists(blogID int64, username string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("blog_id = ? AND username = ?", blogID, username).
		Count(&count).Error
	return count > 0, err
}

// CountByBlog 统计博客的点赞数
func (r *LikeRepository) CountByBlog(blogID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Like{}).Where("blog_id = ?", blogID).Count(&count).Error
	return count, err
}

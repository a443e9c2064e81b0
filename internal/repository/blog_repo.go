package repository

import (
	"strings"

	"bloggers/internal/model"

	"gorm.io/gorm"
)

// likesCountSelect 在博客查询上附加 COUNT 子查询填充 likes_count
const likesCountSelect = "blogs.*, (SELECT COUNT(*) FROM likes WHERE likes.blog_id = blogs.id) AS likes_count"

type BlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

// Create 创建博客
func (r *BlogRepository) Create(blog *model.Blog) error {
	return r.db.Create(blog).Error
}

// GetByID 根据 ID 查询博客（不含关联）
func (r *BlogRepository) GetByID(id int64) (*model.Blog, error) {
	var blog model.Blog
	err := r.db.Select(likesCountSelect).First(&blog, id).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// GetByIDWithDetail 根据 ID 查询博客，带评论、点赞和 likes_count
func (r *BlogRepository) GetByIDWithDetail(id int64) (*model.Blog, error) {
	var blog model.Blog
	err := r.db.Select(likesCountSelect).
		Preload("Comments").
		Preload("Likes").
		First(&blog, id).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// DeleteCascade 在单个事务中删除博客及其全部评论和点赞
// 返回是否真正删除了博客
func (r *BlogRepository) DeleteCascade(id int64) (bool, error) {
	deleted := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blog_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("blog_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Blog{}, id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}

// ListAll 获取全部博客，按创建时间倒序，带评论、点赞和 likes_count
func (r *BlogRepository) ListAll() ([]model.Blog, error) {
	var blogs []model.Blog
	err := r.db.Select(likesCountSelect).
		Preload("Comments").
		Preload("Likes").
		Order("created_at DESC").
		Find(&blogs).Error
	return blogs, err
}

// ListByAuthor 获取指定作者的博客，按创建时间倒序
func (r *BlogRepository) ListByAuthor(username string) ([]model.Blog, error) {
	var blogs []model.Blog
	err := r.db.Select(likesCountSelect).
		Preload("Comments").
		Preload("Likes").
		Where("author_username = ?", username).
		Order("created_at DESC").
		Find(&blogs).Error
	return blogs, err
}

// ListByAuthors 获取一批作者的博客，按创建时间倒序（时间线数据库降级用）
func (r *BlogRepository) ListByAuthors(usernames []string, limit int) ([]model.Blog, error) {
	if len(usernames) == 0 {
		return nil, nil
	}
	var blogs []model.Blog
	err := r.db.Select(likesCountSelect).
		Where("author_username IN ?", usernames).
		Order("created_at DESC").
		Limit(limit).
		Find(&blogs).Error
	return blogs, err
}

// GetByIDs 批量查询博客并保持传入 ID 的顺序（时间线按 Redis 顺序输出）
func (r *BlogRepository) GetByIDs(ids []int64) ([]model.Blog, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var blogs []model.Blog
	err := r.db.Select(likesCountSelect).Where("blogs.id IN ?", ids).Find(&blogs).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]model.Blog, len(blogs))
	for i := range blogs {
		byID[blogs[i].ID] = blogs[i]
	}

	ordered := make([]model.Blog, 0, len(ids))
	for _, id := range ids {
		if b, ok := byID[id]; ok {
			ordered = append(ordered, b)
		}
	}
	return ordered, nil
}

// SearchByKeyword 标题/正文关键词搜索（ES 不可用时的数据库降级路径）
func (r *BlogRepository) SearchByKeyword(keyword string, limit int) ([]model.Blog, error) {
	pattern := "%" + strings.ToLower(keyword) + "%"
	var blogs []model.Blog
	err := r.db.Select(likesCountSelect).
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&blogs).Error
	return blogs, err
}

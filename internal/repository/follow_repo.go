package repository

import (
	"bloggers/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// Create 创建关注关系，重复关注时静默跳过（唯一索引 + ON CONFLICT DO NOTHING）
// 返回是否真正新建了边
func (r *FollowRepository) Create(follower, following string) (bool, error) {
	edge := &model.Follow{
		FollowerUsername:  follower,
		FollowingUsername: following,
	}
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(edge)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete 删除关注关系，边不存在时不报错（幂等删除）
// 返回是否真正删除了边
func (r *FollowRepository) Delete(follower, following string) (bool, error) {
	result := r.db.Where("follower_username = ? AND following_username = ?", follower, following).
		Delete(&model.Follow{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists 检查关注关系是否存在
func (r *FollowRepository) Exists(follower, following string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Follow{}).
		Where("follower_username = ? AND following_username = ?", follower, following).
		Count(&count).Error
	return count > 0, err
}

// ListFollowers 获取关注 username 的用户列表（粉丝）
func (r *FollowRepository) ListFollowers(username string) ([]model.User, error) {
	var users []model.User
	err := r.db.Model(&model.User{}).
		Joins("JOIN follows ON follows.follower_username = users.username").
		Where("follows.following_username = ?", username).
		Order("follows.created_at DESC").
		Find(&users).Error
	return users, err
}

// ListFollowing 获取 username 关注的用户列表
func (r *FollowRepository) ListFollowing(username string) ([]model.User, error) {
	var users []model.User
	err := r.db.Model(&model.User{}).
		Joins("JOIN follows ON follows.following_username = users.username").
		Where("follows.follower_username = ?", username).
		Order("follows.created_at DESC").
		Find(&users).Error
	return users, err
}

// ListFollowerUsernames 获取粉丝用户名列表（时间线 fanout 用）
func (r *FollowRepository) ListFollowerUsernames(username string) ([]string, error) {
	var names []string
	err := r.db.Model(&model.Follow{}).
		Where("following_username = ?", username).
		Pluck("follower_username", &names).Error
	return names, err
}

// ListFollowingUsernames 获取关注对象用户名列表（时间线数据库降级用）
func (r *FollowRepository) ListFollowingUsernames(username string) ([]string, error) {
	var names []string
	err := r.db.Model(&model.Follow{}).
		Where("follower_username = ?", username).
		Pluck("following_username", &names).Error
	return names, err
}

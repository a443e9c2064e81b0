package service

import (
	"errors"

	"bloggers/internal/repository"
	"bloggers/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrCannotFollowSelf = errors.New("不能关注自己")

type FollowService struct {
	followRepo *repository.FollowRepository
	userRepo   *repository.UserRepository
}

func NewFollowService(followRepo *repository.FollowRepository, userRepo *repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// Follow 关注用户，重复关注为幂等成功
func (s *FollowService) Follow(currentUsername, targetUsername string) error {
	if currentUsername == targetUsername {
		return ErrCannotFollowSelf
	}

	if _, err := s.userRepo.GetByUsername(targetUsername); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	created, err := s.followRepo.Create(currentUsername, targetUsername)
	if err != nil {
		return err
	}
	if !created {
		logger.Debug("Follow edge already exists",
			zap.String("follower", currentUsername),
			zap.String("following", targetUsername),
		)
	}
	return nil
}

// Unfollow 取消关注，边不存在时同样视为成功（幂等删除）
func (s *FollowService) Unfollow(currentUsername, targetUsername string) error {
	if _, err := s.userRepo.GetByUsername(targetUsername); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	_, err := s.followRepo.Delete(currentUsername, targetUsername)
	return err
}

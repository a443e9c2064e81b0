package service

import (
	"errors"

	"bloggers/internal/api/dto"
	"bloggers/internal/repository"
	"bloggers/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type LikeService struct {
	likeRepo *repository.LikeRepository
	blogRepo *repository.BlogRepository
}

func NewLikeService(likeRepo *repository.LikeRepository, blogRepo *repository.BlogRepository) *LikeService {
	return &LikeService{likeRepo: likeRepo, blogRepo: blogRepo}
}

// Like 点赞博客，重复点赞为幂等成功
func (s *LikeService) Like(username string, blogID int64) (*dto.LikeCountData, error) {
	if _, err := s.blogRepo.GetByID(blogID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	created, err := s.likeRepo.Create(blogID, username)
	if err != nil {
		return nil, err
	}
	if !created {
		logger.Debug("Like already exists",
			zap.Int64("blog_id", blogID),
			zap.String("username", username),
		)
	}

	count, err := s.likeRepo.CountByBlog(blogID)
	if err != nil {
		return nil, err
	}

	return &dto.LikeCountData{BlogID: blogID, LikesCount: count}, nil
}

// Unlike 取消点赞，记录不存在时同样视为成功（幂等删除）
func (s *LikeService) Unlike(username string, blogID int64) error {
	if _, err := s.blogRepo.GetByID(blogID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBlogNotFound
		}
		return err
	}

	_, err := s.likeRepo.Delete(blogID, username)
	return err
}

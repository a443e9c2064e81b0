package service

import (
	"errors"

	"bloggers/internal/api/dto"
	"bloggers/internal/model"
	"bloggers/internal/repository"

	"gorm.io/gorm"
)

type CommentService struct {
	commentRepo *repository.CommentRepository
	blogRepo    *repository.BlogRepository
}

func NewCommentService(commentRepo *repository.CommentRepository, blogRepo *repository.BlogRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, blogRepo: blogRepo}
}

// Create 在博客下发表评论
func (s *CommentService) Create(username string, blogID int64, req *dto.CommentCreateRequest) (*dto.CommentInfo, error) {
	if _, err := s.blogRepo.GetByID(blogID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		Text:     req.Text,
		BlogID:   blogID,
		Username: username,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	return &dto.CommentInfo{
		ID:   comment.ID,
		Text: comment.Text,
		User: comment.Username,
	}, nil
}

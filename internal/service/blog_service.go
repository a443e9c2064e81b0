package service

import (
	"context"
	"errors"
	"time"

	"bloggers/internal/api/dto"
	"bloggers/internal/config"
	infraES "bloggers/internal/infra/elasticsearch"
	infraKafka "bloggers/internal/infra/kafka"
	"bloggers/internal/model"
	"bloggers/internal/repository"
	"bloggers/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrBlogNotFound  = errors.New("博客不存在")
	ErrNotBlogAuthor = errors.New("只有作者可以删除博客")
)

type BlogService struct {
	blogRepo   *repository.BlogRepository
	followRepo *repository.FollowRepository
}

func NewBlogService(blogRepo *repository.BlogRepository, followRepo *repository.FollowRepository) *BlogService {
	return &BlogService{blogRepo: blogRepo, followRepo: followRepo}
}

// Create 创建博客，作者取当前登录用户
func (s *BlogService) Create(author string, req *dto.BlogCreateRequest) (*dto.BlogInfo, error) {
	blog := &model.Blog{
		Title:          req.Title,
		Desc:           req.Desc,
		AuthorUsername: author,
	}

	if err := s.blogRepo.Create(blog); err != nil {
		return nil, err
	}

	// 事件发布与 ES 同步为尽力而为，失败只记日志，不影响请求
	s.publishEvent(infraKafka.EventBlogCreated, blog)
	s.syncToES(blog)

	return toBlogInfo(blog), nil
}

// GetDetail 获取博客详情，带评论、点赞和 likes_count
func (s *BlogService) GetDetail(id int64) (*dto.BlogDetail, error) {
	blog, err := s.blogRepo.GetByIDWithDetail(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return toBlogDetail(blog), nil
}

// Delete 删除博客（仅作者本人），事务内级联删除其评论和点赞
func (s *BlogService) Delete(id int64, currentUsername string) error {
	blog, err := s.blogRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBlogNotFound
		}
		return err
	}

	if blog.AuthorUsername != currentUsername {
		return ErrNotBlogAuthor
	}

	deleted, err := s.blogRepo.DeleteCascade(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBlogNotFound
	}

	s.publishEvent(infraKafka.EventBlogDeleted, blog)
	s.removeFromES(id)

	return nil
}

// ListAll 获取全部博客，按创建时间倒序
func (s *BlogService) ListAll() (*dto.BlogListData, error) {
	blogs, err := s.blogRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return buildBlogListData(blogs), nil
}

// ListByAuthor 获取指定作者的博客，按创建时间倒序
func (s *BlogService) ListByAuthor(username string) (*dto.BlogListData, error) {
	blogs, err := s.blogRepo.ListByAuthor(username)
	if err != nil {
		return nil, err
	}
	return buildBlogListData(blogs), nil
}

// publishEvent 发布博客事件到 Kafka（尽力而为）
func (s *BlogService) publishEvent(eventType string, blog *model.Blog) {
	topic := config.GetKafka().Topics["blog_events"]
	if topic == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	event := &infraKafka.BlogEvent{
		Type:      eventType,
		BlogID:    blog.ID,
		Author:    blog.AuthorUsername,
		CreatedAt: blog.CreatedAt.Unix(),
	}
	if err := infraKafka.SendBlogEvent(ctx, topic, event); err != nil {
		logger.Warn("Failed to publish blog event",
			zap.String("type", eventType),
			zap.Int64("blog_id", blog.ID),
			zap.Error(err),
		)
	}
}

// syncToES 同步博客到 ES（尽力而为）
func (s *BlogService) syncToES(blog *model.Blog) {
	if !infraES.Available() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := infraES.SyncBlog(ctx, blog); err != nil {
		logger.Warn("Failed to sync blog to ES", zap.Int64("blog_id", blog.ID), zap.Error(err))
	}
}

// removeFromES 从 ES 删除博客（尽力而为）
func (s *BlogService) removeFromES(blogID int64) {
	if !infraES.Available() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := infraES.DeleteBlog(ctx, blogID); err != nil {
		logger.Warn("Failed to remove blog from ES", zap.Int64("blog_id", blogID), zap.Error(err))
	}
}

func toBlogInfo(blog *model.Blog) *dto.BlogInfo {
	return &dto.BlogInfo{
		ID:         blog.ID,
		Title:      blog.Title,
		Desc:       blog.Desc,
		CreatedAt:  blog.CreatedAt,
		Author:     blog.AuthorUsername,
		LikesCount: blog.LikesCount,
	}
}

func toBlogDetail(blog *model.Blog) *dto.BlogDetail {
	comments := make([]dto.CommentInfo, 0, len(blog.Comments))
	for i := range blog.Comments {
		comments = append(comments, dto.CommentInfo{
			ID:   blog.Comments[i].ID,
			Text: blog.Comments[i].Text,
			User: blog.Comments[i].Username,
		})
	}

	likes := make([]dto.LikeInfo, 0, len(blog.Likes))
	for i := range blog.Likes {
		likes = append(likes, dto.LikeInfo{
			ID:   blog.Likes[i].ID,
			User: blog.Likes[i].Username,
		})
	}

	return &dto.BlogDetail{
		BlogInfo: *toBlogInfo(blog),
		Comments: comments,
		Likes:    likes,
	}
}

func buildBlogListData(blogs []model.Blog) *dto.BlogListData {
	items := make([]dto.BlogDetail, 0, len(blogs))
	for i := range blogs {
		items = append(items, *toBlogDetail(&blogs[i]))
	}
	return &dto.BlogListData{
		Blogs: items,
		Total: int64(len(items)),
	}
}

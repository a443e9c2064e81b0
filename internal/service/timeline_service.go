package service

import (
	"context"

	"bloggers/internal/api/dto"
	"bloggers/internal/model"
	"bloggers/internal/repository"
	"bloggers/pkg/logger"

	"go.uber.org/zap"
)

type TimelineService struct {
	blogRepo     *repository.BlogRepository
	followRepo   *repository.FollowRepository
	timelineRepo *repository.TimelineRepository
}

func NewTimelineService(
	blogRepo *repository.BlogRepository,
	followRepo *repository.FollowRepository,
	timelineRepo *repository.TimelineRepository,
) *TimelineService {
	return &TimelineService{
		blogRepo:     blogRepo,
		followRepo:   followRepo,
		timelineRepo: timelineRepo,
	}
}

// GetTimeline 获取用户时间线：关注对象发布的博客，按时间倒序
// 优先读 Redis 中 fanout 好的时间线，Redis 不可用或为空时降级到数据库
func (s *TimelineService) GetTimeline(ctx context.Context, username string, limit int) (*dto.TimelineData, error) {
	if s.timelineRepo != nil && s.timelineRepo.Available() {
		ids, err := s.timelineRepo.GetBlogIDs(ctx, username, limit)
		if err != nil {
			logger.Warn("Timeline read from redis failed, fallback to DB",
				zap.String("username", username),
				zap.Error(err),
			)
		} else if len(ids) > 0 {
			blogs, err := s.blogRepo.GetByIDs(ids)
			if err != nil {
				return nil, err
			}
			return buildTimelineData(blogs), nil
		}
	}

	return s.timelineFromDB(username, limit)
}

func (s *TimelineService) timelineFromDB(username string, limit int) (*dto.TimelineData, error) {
	following, err := s.followRepo.ListFollowingUsernames(username)
	if err != nil {
		return nil, err
	}

	blogs, err := s.blogRepo.ListByAuthors(following, limit)
	if err != nil {
		return nil, err
	}
	return buildTimelineData(blogs), nil
}

func buildTimelineData(blogs []model.Blog) *dto.TimelineData {
	items := make([]dto.BlogInfo, 0, len(blogs))
	for i := range blogs {
		items = append(items, *toBlogInfo(&blogs[i]))
	}
	return &dto.TimelineData{
		Blogs: items,
		Total: int64(len(items)),
	}
}

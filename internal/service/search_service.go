package service

import (
	"context"

	"bloggers/internal/api/dto"
	infraES "bloggers/internal/infra/elasticsearch"
	"bloggers/internal/model"
	"bloggers/internal/repository"
	"bloggers/pkg/logger"

	"go.uber.org/zap"
)

type SearchService struct {
	blogRepo *repository.BlogRepository
}

func NewSearchService(blogRepo *repository.BlogRepository) *SearchService {
	return &SearchService{blogRepo: blogRepo}
}

// Search 按关键词搜索博客，优先走 ES，不可用或出错时降级到数据库模糊查询
func (s *SearchService) Search(ctx context.Context, keyword string, limit int) (*dto.TimelineData, error) {
	if infraES.Available() {
		ids, err := infraES.SearchBlogs(ctx, keyword, limit)
		if err != nil {
			logger.Warn("ES search failed, fallback to DB", zap.String("keyword", keyword), zap.Error(err))
		} else {
			blogs, err := s.blogRepo.GetByIDs(ids)
			if err != nil {
				return nil, err
			}
			return buildSearchData(blogs), nil
		}
	}

	blogs, err := s.blogRepo.SearchByKeyword(keyword, limit)
	if err != nil {
		return nil, err
	}
	return buildSearchData(blogs), nil
}

func buildSearchData(blogs []model.Blog) *dto.TimelineData {
	items := make([]dto.BlogInfo, 0, len(blogs))
	for i := range blogs {
		items = append(items, *toBlogInfo(&blogs[i]))
	}
	return &dto.TimelineData{
		Blogs: items,
		Total: int64(len(items)),
	}
}

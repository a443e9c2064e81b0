package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bloggers/internal/model"
	"bloggers/pkg/logger"

	"go.uber.org/zap"
)

// ESBlogDoc ES 博客文档结构
type ESBlogDoc struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Desc       string `json:"desc"`
	Author     string `json:"author"`
	LikesCount int64  `json:"likes_count"`
	CreatedAt  string `json:"created_at"`
}

func blogToESDoc(b *model.Blog) *ESBlogDoc {
	return &ESBlogDoc{
		ID:         b.ID,
		Title:      b.Title,
		Desc:       b.Desc,
		Author:     b.AuthorUsername,
		LikesCount: b.LikesCount,
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}

// SyncBlog 同步单篇博客到 ES
func SyncBlog(ctx context.Context, b *model.Blog) error {
	doc := blogToESDoc(b)
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	resp, err := Index(ctx, BlogsIndex(), fmt.Sprintf("%d", b.ID), bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index document failed: %s", resp.String())
	}

	logger.Debug("Blog synced to ES", zap.Int64("blog_id", b.ID))
	return nil
}

// DeleteBlog 从 ES 删除博客
func DeleteBlog(ctx context.Context, blogID int64) error {
	resp, err := Delete(ctx, BlogsIndex(), fmt.Sprintf("%d", blogID))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// 404 说明文档本来就不在索引里，视为成功
	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete document failed: %s", resp.String())
	}

	logger.Debug("Blog removed from ES", zap.Int64("blog_id", blogID))
	return nil
}

// SearchBlogs 在 ES 中按关键词搜索博客，返回命中的博客 ID（按相关度排序）
func SearchBlogs(ctx context.Context, keyword string, limit int) ([]int64, error) {
	query := map[string]interface{}{
		"size": limit,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  keyword,
				"fields": []string{"title^2", "desc"},
			},
		},
	}

	body, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	resp, err := Search(ctx, BlogsIndex(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("search failed: %s", resp.String())
	}

	var result struct {
		Hits struct {
			Hits []struct {
				Source ESBlogDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		ids = append(ids, hit.Source.ID)
	}
	return ids, nil
}

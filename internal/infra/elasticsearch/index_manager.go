package elasticsearch

import (
	"context"
	"strings"
	"time"

	"bloggers/internal/config"
	"bloggers/pkg/logger"

	"go.uber.org/zap"
)

// blogsIndexMapping 博客索引映射：标题与正文全文检索，作者与时间用于过滤排序
const blogsIndexMapping = `{
  "settings": {
    "number_of_shards": 1,
    "number_of_replicas": 0
  },
  "mappings": {
    "properties": {
      "id":          {"type": "long"},
      "title":       {"type": "text"},
      "desc":        {"type": "text"},
      "author":      {"type": "keyword"},
      "likes_count": {"type": "long"},
      "created_at":  {"type": "date"}
    }
  }
}`

// BlogsIndex 返回博客索引名
func BlogsIndex() string {
	cfg := config.GetElasticsearch()
	if name := cfg.Index["blogs"]; name != "" {
		return name
	}
	return "blogs"
}

// InitIndexes 确保所需索引存在，不存在则按映射创建
func InitIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	index := BlogsIndex()

	exists, err := IndicesExists(ctx, index)
	if err != nil {
		return err
	}
	if exists {
		logger.Debug("Elasticsearch index already exists", zap.String("index", index))
		return nil
	}

	resp, err := IndicesCreate(ctx, index, strings.NewReader(blogsIndexMapping))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		logger.Warn("Elasticsearch index creation failed",
			zap.String("index", index),
			zap.String("response", resp.String()),
		)
		return nil
	}

	logger.Info("Elasticsearch index created", zap.String("index", index))
	return nil
}

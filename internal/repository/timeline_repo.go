package repository

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// TimelineRepository 基于 Redis ZSET 的用户时间线存储
// key 为 timeline:{username}，member 为博客 ID，score 为博客创建时间（Unix 秒）
type TimelineRepository struct {
	client *redis.Client
}

func NewTimelineRepository(client *redis.Client) *TimelineRepository {
	return &TimelineRepository{client: client}
}

// Available Redis 是否可用（不可用时调用方降级到数据库）
func (r *TimelineRepository) Available() bool {
	return r.client != nil
}

func timelineKey(username string) string {
	return "timeline:" + username
}

// PushBlog 将博客写入一批粉丝的时间线，并裁剪到 maxLen 条
func (r *TimelineRepository) PushBlog(ctx context.Context, blogID, createdAt int64, followers []string, maxLen int) error {
	pipe := r.client.Pipeline()
	member := strconv.FormatInt(blogID, 10)
	for _, follower := range followers {
		key := timelineKey(follower)
		pipe.ZAdd(ctx, key, redis.Z{
			Score:  float64(createdAt),
			Member: member,
		})
		pipe.ZRemRangeByRank(ctx, key, 0, int64(-maxLen-1))
	}
	_, err := pipe.Exec(ctx)
	return err
}

// RemoveBlog 从一批粉丝的时间线中移除博客
func (r *TimelineRepository) RemoveBlog(ctx context.Context, blogID int64, followers []string) error {
	pipe := r.client.Pipeline()
	member := strconv.FormatInt(blogID, 10)
	for _, follower := range followers {
		pipe.ZRem(ctx, timelineKey(follower), member)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// GetBlogIDs 读取用户时间线中的博客 ID，按时间倒序
func (r *TimelineRepository) GetBlogIDs(ctx context.Context, username string, limit int) ([]int64, error) {
	members, err := r.client.ZRevRange(ctx, timelineKey(username), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

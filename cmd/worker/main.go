package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bloggers/internal/config"
	"bloggers/internal/infra/database"
	infraKafka "bloggers/internal/infra/kafka"
	infraRedis "bloggers/internal/infra/redis"
	"bloggers/internal/repository"
	"bloggers/pkg/logger"

	"go.uber.org/zap"
)

// 时间线扇出 worker：消费博客事件，把新博客推送到每个粉丝的 Redis 时间线
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := infraRedis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to init redis", zap.Error(err))
	}
	defer infraRedis.Close()

	followRepo := repository.NewFollowRepository(database.Get())
	timelineRepo := repository.NewTimelineRepository(infraRedis.Get())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	topic := cfg.Kafka.Topics["blog_events"]
	groupID := "bloggers-timeline-worker"

	logger.Info("Timeline worker started",
		zap.String("topic", topic),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	handler := func(event *infraKafka.BlogEvent) error {
		followers, err := followRepo.ListFollowerUsernames(event.Author)
		if err != nil {
			return fmt.Errorf("list followers of %s: %w", event.Author, err)
		}
		if len(followers) == 0 {
			return nil
		}

		switch event.Type {
		case infraKafka.EventBlogCreated:
			return timelineRepo.PushBlog(ctx, event.BlogID, event.CreatedAt, followers, cfg.Redis.TimelineSize)
		case infraKafka.EventBlogDeleted:
			return timelineRepo.RemoveBlog(ctx, event.BlogID, followers)
		default:
			logger.Warn("Unknown blog event type", zap.String("type", event.Type))
			return nil
		}
	}

	infraKafka.StartBlogEventConsumer(ctx, cfg.Kafka.Brokers, topic, groupID, handler)
}

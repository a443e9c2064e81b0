package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bloggers/internal/config"
	"bloggers/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// 博客事件类型
const (
	EventBlogCreated = "blog_created"
	EventBlogDeleted = "blog_deleted"
)

// BlogEvent 博客领域事件消息体
type BlogEvent struct {
	Type      string `json:"type"`
	BlogID    int64  `json:"blog_id"`
	Author    string `json:"author"`
	CreatedAt int64  `json:"created_at"` // Unix 秒
}

// InitProducer 初始化 Kafka 生产者
func InitProducer(cfg *config.KafkaConfig) error {
	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// SendBlogEvent 发送博客事件到指定 topic
// 生产者未初始化时返回错误，调用方按尽力而为处理（只记日志，不影响请求）
func SendBlogEvent(ctx context.Context, topic string, event *BlogEvent) error {
	if producer == nil {
		return fmt.Errorf("kafka producer not initialized")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal blog event: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(fmt.Sprintf("blog-%d", event.BlogID)),
		Value: payload,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send blog event: %w", err)
	}

	logger.Info("Blog event sent",
		zap.String("type", event.Type),
		zap.Int64("blog_id", event.BlogID),
		zap.String("topic", topic),
	)

	return nil
}

// CloseProducer 关闭生产者
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 频道与缓存键约定
const (
	reportChannelPrefix = "intel:report:"
	latestReportKey     = "intel:latest_report"
)

// ReportChannel 分析结果通知频道命名规则（按请求 ID 区分）
func ReportChannel(requestID string) string {
	return reportChannelPrefix + requestID
}

// Client Redis 客户端封装（Pub/Sub + 最新报告缓存）
type Client struct {
	rdb *redis.Client
}

// NewClient 创建 Redis 客户端，支持密码认证
func NewClient(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// 测试连接
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// ReportNotification 分析完成通知消息
type ReportNotification struct {
	RequestID string          `json:"request_id"`
	Status    string          `json:"status"` // SUCCESS/FAILED
	Report    json.RawMessage `json:"report,omitempty"`
	Error     string          `json:"error,omitempty"`
	Timestamp int64           `json:"timestamp"`
}

// PublishReport 发布分析完成通知（Smart Wait 的服务端）
func (c *Client) PublishReport(ctx context.Context, channel string, notification *ReportNotification) error {
	msgJSON, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := c.rdb.Publish(ctx, channel, msgJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}

// WaitForMessage 订阅指定频道并等待一条消息，支持超时控制
// 用于 Smart Wait：订阅分析结果频道，等待 worker 推送结果
func (c *Client) WaitForMessage(ctx context.Context, channel string, timeout time.Duration) (string, error) {
	sub := c.rdb.Subscribe(ctx, channel)
	defer sub.Close()

	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	select {
	case msg := <-sub.Channel():
		return msg.Payload, nil
	case <-timeoutCtx.Done():
		return "", timeoutCtx.Err()
	}
}

// SetLatestReport 缓存最近一次分析的格式化报告
func (c *Client) SetLatestReport(ctx context.Context, payload []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, latestReportKey, payload, ttl).Err()
}

// GetLatestReport 读取最近一次分析的格式化报告（无缓存时返回 nil）
func (c *Client) GetLatestReport(ctx context.Context) ([]byte, error) {
	data, err := c.rdb.Get(ctx, latestReportKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}

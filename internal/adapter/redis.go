package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shahparag-spring2021/webapp/internal/config"
	"github.com/shahparag-spring2021/webapp/internal/logger"
	"github.com/shahparag-spring2021/webapp/models"
)

// redisPublishClient is the subset of *redis.Client used by [redisPublisher].
type redisPublishClient interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
	Close() error
}

type redisPublisher struct {
	client  redisPublishClient
	channel string

	logger *logger.Logger
}

// NewRedisPublisher constructs a [Publisher] that PUBLISHes each event as
// JSON on cfg.RedisChannel. The connection is verified with PING.
func NewRedisPublisher(ctx context.Context, cfg config.Adapter, logger *logger.Logger) (Publisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddress,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
		MaxRetries:   2,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		logger.Err(err).Str("func", "NewRedisPublisher").Str("address", cfg.RedisAddress).Msg("redis is unreachable")
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &redisPublisher{client: client, channel: cfg.RedisChannel, logger: logger}, nil
}

func (p *redisPublisher) Publish(ctx context.Context, event models.BookEvent) error {
	if err := validateEvent(event); err != nil {
		return err
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	receivers, err := p.client.Publish(ctx, p.channel, payload).Result()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisPublisher.Publish").Msg("redis publish failed")
		return fmt.Errorf("redis publish failed: %w", err)
	}
	logger.FromContext(ctx).Debug().
		Str("channel", p.channel).
		Int64("receivers", receivers).
		Msg("book event published")

	return nil
}

func (p *redisPublisher) Close() error {
	return p.client.Close()
}

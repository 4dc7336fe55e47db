package adapter

import (
	"context"
	"fmt"

	"github.com/shahparag-spring2021/webapp/internal/config"
	"github.com/shahparag-spring2021/webapp/internal/logger"
)

// NewPublisher returns the [Publisher] selected by cfg.Notifier.
func NewPublisher(ctx context.Context, cfg config.Adapter, logger *logger.Logger) (Publisher, error) {
	switch cfg.Notifier {
	case config.NotifierWebhook:
		logger.Info().Str("url", cfg.WebhookURL).Msg("notifications are sent to webhook")
		return NewWebhookPublisher(cfg, logger), nil
	case config.NotifierRedis:
		logger.Info().Str("channel", cfg.RedisChannel).Msg("notifications are sent to redis")
		return NewRedisPublisher(ctx, cfg, logger)
	case config.NotifierLog, "":
		return NewLogPublisher(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNotifier, cfg.Notifier)
	}
}

package adapter

import (
	"context"

	"github.com/shahparag-spring2021/webapp/internal/logger"
	"github.com/shahparag-spring2021/webapp/models"
)

type logPublisher struct{}

// NewLogPublisher constructs a [Publisher] that only writes events to the
// request logger.
func NewLogPublisher() Publisher {
	return logPublisher{}
}

func (logPublisher) Publish(ctx context.Context, event models.BookEvent) error {
	if err := validateEvent(event); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Str("event", string(event.Type)).
		Str("book_id", event.BookID).
		Str("username", event.Username).
		Str("link", event.Link).
		Msg("book event")

	return nil
}

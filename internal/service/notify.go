package service

import (
	"context"
	"strings"
	"time"

	"github.com/shahparag-spring2021/webapp/internal/adapter"
	"github.com/shahparag-spring2021/webapp/internal/logger"
	"github.com/shahparag-spring2021/webapp/models"
)

// notifier publishes book events on a best-effort basis: a failed publish
// is logged and never returned to the caller.
type notifier struct {
	publisher adapter.Publisher
	publicURL string
	now       func() time.Time
}

func (n notifier) bookEvent(eventType models.BookEventType, book models.Book, user models.User) models.BookEvent {
	return models.BookEvent{
		Type:       eventType,
		BookID:     book.ID,
		Title:      book.Title,
		Username:   user.Username,
		Link:       strings.TrimRight(n.publicURL, "/") + "/books/" + book.ID,
		OccurredAt: n.now().UTC(),
	}
}

func (n notifier) notify(ctx context.Context, event models.BookEvent) {
	if n.publisher == nil {
		return
	}

	if err := n.publisher.Publish(ctx, event); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("event", string(event.Type)).
			Str("book_id", event.BookID).
			Msg("book notification was not delivered")
	}
}

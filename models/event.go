package models

import "time"

// BookEventType names a book mutation that is announced to subscribers.
type BookEventType string

const (
	BookCreated BookEventType = "book.created"
	BookDeleted BookEventType = "book.deleted"
)

// BookEvent is the payload published on book creation and deletion.
type BookEvent struct {
	Type       BookEventType `json:"type"`
	BookID     string        `json:"book_id"`
	Title      string        `json:"title"`
	Username   string        `json:"username"`
	Link       string        `json:"link"`
	OccurredAt time.Time     `json:"occurred_at"`
}

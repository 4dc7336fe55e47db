package service

import (
	"fmt"
	"time"

	"github.com/shahparag-spring2021/webapp/models"
)

var fixedNow = time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// sequenceIDs returns "id-1", "id-2", ... in order.
type sequenceIDs struct {
	n int
}

func (s *sequenceIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func testUser() models.User {
	return models.User{
		ID:             "user-1",
		Username:       "jane@example.com",
		PasswordHash:   "stored-hash",
		FirstName:      "Jane",
		LastName:       "Doe",
		AccountCreated: fixedNow.Add(-time.Hour),
		AccountUpdated: fixedNow.Add(-time.Hour),
	}
}

func ptr[T any](v T) *T { return &v }

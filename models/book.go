package models

import "time"

// Book is a book record owned by the user who created it.
// All descriptive fields are immutable once created.
type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	ISBN          string    `json:"isbn"`
	PublishedDate string    `json:"published_date"`
	BookCreated   time.Time `json:"book_created"`

	// UserID is a weak reference to the creator. It is always taken from
	// the authenticated caller.
	UserID string `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}

// BookDetails is the single-book projection. Images are embedded only when
// at least one image references the book.
type BookDetails struct {
	Book
	Images []Image `json:"book_images,omitempty"`
}

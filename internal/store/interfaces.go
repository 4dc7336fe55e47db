package store

import (
	"context"
	"io"

	"github.com/shahparag-spring2021/webapp/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
}

// BookRepository persists books. DeleteBook removes the book together with
// all of its image records.
type BookRepository interface {
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	ListBooks(ctx context.Context) ([]models.Book, error)
	FindBookByID(ctx context.Context, id string) (models.Book, error)
	DeleteBook(ctx context.Context, id string) error
}

// ImageRepository persists image metadata. Image content lives in [BlobStorage].
type ImageRepository interface {
	CreateImage(ctx context.Context, image models.Image) (models.Image, error)
	ListImagesByBook(ctx context.Context, bookID string) ([]models.Image, error)
	FindImageByID(ctx context.Context, fileID string) (models.Image, error)
	DeleteImage(ctx context.Context, fileID string) error
	ListObjectNames(ctx context.Context) ([]string, error)
}

// BlobStorage stores image content under slash-separated keys.
type BlobStorage interface {
	Put(ctx context.Context, key string, content io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	// DeletePrefix removes every object whose key starts with prefix and
	// returns how many were removed.
	DeletePrefix(ctx context.Context, prefix string) (int, error)
	List(ctx context.Context, prefix string) ([]models.BlobInfo, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

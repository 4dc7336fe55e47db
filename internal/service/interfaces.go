package service

import (
	"context"
	"time"

	"github.com/shahparag-spring2021/webapp/models"
)

// AuthService resolves request credentials to a user and issues tokens.
type AuthService interface {
	// Authenticate treats identifier as a token first and falls back to a
	// username and password check. Any mismatch is ErrInvalidCredentials.
	Authenticate(ctx context.Context, identifier, secret string) (models.User, error)
	IssueToken(ctx context.Context, user models.User) (models.Token, error)
}

type UserService interface {
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	UpdateUser(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.User, error)
}

type BookService interface {
	ListBooks(ctx context.Context) ([]models.Book, error)
	GetBook(ctx context.Context, id string) (models.BookDetails, error)
	CreateBook(ctx context.Context, user models.User, req models.CreateBookRequest) (models.Book, error)
	DeleteBook(ctx context.Context, user models.User, id string) (models.Book, error)
}

type ImageService interface {
	UploadImage(ctx context.Context, user models.User, upload models.ImageUpload) (models.Image, error)
	DeleteImage(ctx context.Context, user models.User, bookID, fileID string) (models.Image, error)

	// ReconcileBlobs deletes stored blobs older than grace that no image row
	// references and returns how many were removed.
	ReconcileBlobs(ctx context.Context, grace time.Duration) (int, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator issues opaque unique identifiers.
type IDGenerator interface {
	Generate() string
}

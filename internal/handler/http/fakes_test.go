package http

import (
	"context"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/shahparag-spring2021/webapp/internal/config"
	"github.com/shahparag-spring2021/webapp/internal/logger"
	"github.com/shahparag-spring2021/webapp/internal/service"
	"github.com/shahparag-spring2021/webapp/models"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

type fakeAuthService struct {
	authenticateFn func(ctx context.Context, identifier, secret string) (models.User, error)
	issueTokenFn   func(ctx context.Context, user models.User) (models.Token, error)
}

func (f *fakeAuthService) Authenticate(ctx context.Context, identifier, secret string) (models.User, error) {
	return f.authenticateFn(ctx, identifier, secret)
}

func (f *fakeAuthService) IssueToken(ctx context.Context, user models.User) (models.Token, error) {
	return f.issueTokenFn(ctx, user)
}

type fakeUserService struct {
	createUserFn func(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	updateUserFn func(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.User, error)
}

func (f *fakeUserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	return f.createUserFn(ctx, req)
}

func (f *fakeUserService) UpdateUser(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.User, error) {
	return f.updateUserFn(ctx, user, req)
}

type fakeBookService struct {
	listBooksFn  func(ctx context.Context) ([]models.Book, error)
	getBookFn    func(ctx context.Context, id string) (models.BookDetails, error)
	createBookFn func(ctx context.Context, user models.User, req models.CreateBookRequest) (models.Book, error)
	deleteBookFn func(ctx context.Context, user models.User, id string) (models.Book, error)
}

func (f *fakeBookService) ListBooks(ctx context.Context) ([]models.Book, error) {
	return f.listBooksFn(ctx)
}

func (f *fakeBookService) GetBook(ctx context.Context, id string) (models.BookDetails, error) {
	return f.getBookFn(ctx, id)
}

func (f *fakeBookService) CreateBook(ctx context.Context, user models.User, req models.CreateBookRequest) (models.Book, error) {
	return f.createBookFn(ctx, user, req)
}

func (f *fakeBookService) DeleteBook(ctx context.Context, user models.User, id string) (models.Book, error) {
	return f.deleteBookFn(ctx, user, id)
}

type fakeImageService struct {
	uploadImageFn    func(ctx context.Context, user models.User, upload models.ImageUpload) (models.Image, error)
	deleteImageFn    func(ctx context.Context, user models.User, bookID, fileID string) (models.Image, error)
	reconcileBlobsFn func(ctx context.Context, grace time.Duration) (int, error)
}

func (f *fakeImageService) UploadImage(ctx context.Context, user models.User, upload models.ImageUpload) (models.Image, error) {
	return f.uploadImageFn(ctx, user, upload)
}

func (f *fakeImageService) DeleteImage(ctx context.Context, user models.User, bookID, fileID string) (models.Image, error) {
	return f.deleteImageFn(ctx, user, bookID, fileID)
}

func (f *fakeImageService) ReconcileBlobs(ctx context.Context, grace time.Duration) (int, error) {
	return f.reconcileBlobsFn(ctx, grace)
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testNow = time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

func testUser() models.User {
	return models.User{
		ID:             "user-1",
		Username:       "jane@example.com",
		PasswordHash:   "stored-hash",
		FirstName:      "Jane",
		LastName:       "Doe",
		AccountCreated: testNow,
		AccountUpdated: testNow,
	}
}

func testBook() models.Book {
	return models.Book{
		ID:            "book-1",
		Title:         "Computer Networks",
		Author:        "Andrew S. Tanenbaum",
		ISBN:          "978-0132126953",
		PublishedDate: "May, 2020",
		BookCreated:   testNow,
		UserID:        "user-1",
	}
}

// acceptingAuth authenticates "jane@example.com"/"secret" and rejects
// everything else.
func acceptingAuth() *fakeAuthService {
	return &fakeAuthService{
		authenticateFn: func(_ context.Context, identifier, secret string) (models.User, error) {
			if identifier == "jane@example.com" && secret == "secret" {
				return testUser(), nil
			}
			return models.User{}, service.ErrInvalidCredentials
		},
	}
}

func newServicesHandler(services *service.Services, cfg config.Server) *Handler {
	if services.AuthService == nil {
		services.AuthService = acceptingAuth()
	}
	return NewHandler(services, cfg, logger.Nop())
}

func withBasicAuth(req *http.Request) *http.Request {
	req.SetBasicAuth("jane@example.com", "secret")
	return req
}

func basicHeader(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahparag-spring2021/webapp/internal/app"
	"github.com/shahparag-spring2021/webapp/internal/config"
	"github.com/shahparag-spring2021/webapp/internal/service"
	"github.com/shahparag-spring2021/webapp/models"
)

func newBooksRouter(books *fakeBookService) http.Handler {
	return newServicesHandler(&service.Services{BookService: books}, config.Server{}).Init()
}

func TestListBooks(t *testing.T) {
	router := newBooksRouter(&fakeBookService{
		listBooksFn: func(context.Context) ([]models.Book, error) { return []models.Book{testBook()}, nil },
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []models.Book{testBook()}, got)
}

func TestListBooks_EmptyIsArray(t *testing.T) {
	router := newBooksRouter(&fakeBookService{
		listBooksFn: func(context.Context) ([]models.Book, error) { return []models.Book{}, nil },
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books", nil))

	assert.Equal(t, "[]", rec.Body.String())
}

func TestGetBook_BareWithoutImages(t *testing.T) {
	router := newBooksRouter(&fakeBookService{
		getBookFn: func(_ context.Context, id string) (models.BookDetails, error) {
			assert.Equal(t, "book-1", id)
			return models.BookDetails{Book: testBook()}, nil
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books/book-1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "book_images")
}

func TestGetBook_EmbedsImages(t *testing.T) {
	image := models.Image{FileID: "f-1", FileName: "a.png", S3ObjectName: "book-1/f-1/a.png", UserID: "user-1", BookID: "book-1", CreatedDate: testNow}
	router := newBooksRouter(&fakeBookService{
		getBookFn: func(context.Context, string) (models.BookDetails, error) {
			return models.BookDetails{Book: testBook(), Images: []models.Image{image}}, nil
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books/book-1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.BookDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "book-1", got.ID)
	assert.Equal(t, []models.Image{image}, got.Images)
}

func TestGetBook_NotFound(t *testing.T) {
	router := newBooksRouter(&fakeBookService{
		getBookFn: func(context.Context, string) (models.BookDetails, error) {
			return models.BookDetails{}, service.ErrBookNotFound
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateBook_Created(t *testing.T) {
	router := newBooksRouter(&fakeBookService{
		createBookFn: func(_ context.Context, user models.User, req models.CreateBookRequest) (models.Book, error) {
			assert.Equal(t, "user-1", user.ID)
			assert.Equal(t, "Computer Networks", req.Title)
			return testBook(), nil
		},
	})

	body := `{"title":"Computer Networks","author":"Andrew S. Tanenbaum","isbn":"978-0132126953","published_date":"May, 2020","user_id":"someone-else"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withBasicAuth(httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(body))))

	require.Equal(t, http.StatusCreated, rec.Code)
	var got models.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "user-1", got.UserID)
}

func TestCreateBook_MissingField(t *testing.T) {
	router := newBooksRouter(&fakeBookService{
		createBookFn: func(context.Context, models.User, models.CreateBookRequest) (models.Book, error) {
			return models.Book{}, service.ErrMissingField
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withBasicAuth(httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(`{"title":"x"}`))))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgMissingBookFields, strings.TrimSpace(rec.Body.String()))
}

func TestCreateBook_RequiresAuth(t *testing.T) {
	router := newBooksRouter(&fakeBookService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeleteBook(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "owner", wantStatus: http.StatusOK},
		{name: "not owner", serviceErr: service.ErrNotOwner, wantStatus: http.StatusUnauthorized},
		{name: "unknown book", serviceErr: service.ErrBookNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newBooksRouter(&fakeBookService{
				deleteBookFn: func(_ context.Context, user models.User, id string) (models.Book, error) {
					assert.Equal(t, "book-1", id)
					if tt.serviceErr != nil {
						return models.Book{}, tt.serviceErr
					}
					return testBook(), nil
				},
			})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, withBasicAuth(httptest.NewRequest(http.MethodDelete, "/books/book-1", nil)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"id":"book-1"`)
			}
		})
	}
}

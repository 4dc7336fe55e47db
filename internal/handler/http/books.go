package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shahparag-spring2021/webapp/internal/service"
	"github.com/shahparag-spring2021/webapp/models"
)

const (
	bookIDParam = "book_id"
	fileIDParam = "file_id"
)

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.services.BookService.ListBooks(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, books, http.StatusOK)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	book, err := h.services.BookService.GetBook(r.Context(), chi.URLParam(r, bookIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, book, http.StatusOK)
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request, user models.User) {
	var req models.CreateBookRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	book, err := h.services.BookService.CreateBook(r.Context(), user, req)
	if err != nil {
		if errors.Is(err, service.ErrMissingField) {
			err = fmt.Errorf("%w: %w", ErrMissingBookFields, err)
		}
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, book, http.StatusCreated)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request, user models.User) {
	book, err := h.services.BookService.DeleteBook(r.Context(), user, chi.URLParam(r, bookIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, book, http.StatusOK)
}

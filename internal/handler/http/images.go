package http

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shahparag-spring2021/webapp/internal/logger"
	"github.com/shahparag-spring2021/webapp/internal/service"
	"github.com/shahparag-spring2021/webapp/models"
)

const (
	uploadFormField = "file"

	// multipartMemory is the part of a multipart form kept in memory; the
	// rest is spooled to temporary files removed after the request.
	multipartMemory = 8 << 20
)

func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request, user models.User) {
	log := logger.FromRequest(r)

	if h.cfg.MaxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadSize)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		writeError(w, r, multipartError(err))
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Warn().Err(err).Msg("temporary upload files were not removed")
		}
	}()

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		writeError(w, r, multipartError(err))
		return
	}
	defer file.Close()

	image, err := h.services.ImageService.UploadImage(r.Context(), user, models.ImageUpload{
		BookID:      chi.URLParam(r, bookIDParam),
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, image, http.StatusCreated)
}

// deleteImage answers 204 without a body on success.
func (h *Handler) deleteImage(w http.ResponseWriter, r *http.Request, user models.User) {
	_, err := h.services.ImageService.DeleteImage(
		r.Context(),
		user,
		chi.URLParam(r, bookIDParam),
		chi.URLParam(r, fileIDParam),
	)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func multipartError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) || errors.Is(err, multipart.ErrMessageTooLarge) {
		return fmt.Errorf("%w: %w", ErrFileTooLarge, err)
	}
	return fmt.Errorf("%w: %w", service.ErrMissingFile, err)
}

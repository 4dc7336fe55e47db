package http

import (
	"errors"
	"net/http"

	"github.com/shahparag-spring2021/webapp/internal/app"
	"github.com/shahparag-spring2021/webapp/internal/logger"
	"github.com/shahparag-spring2021/webapp/internal/service"
)

// wwwAuthenticate is sent with every 401 caused by missing or wrong credentials.
const wwwAuthenticate = `Basic realm="Authentication Required"`

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is matched in order, so narrower errors come first.
var errorResponses = []errorResponse{
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{ErrFileTooLarge, http.StatusBadRequest, app.MsgFileTooLarge},
	{ErrMissingBookFields, http.StatusBadRequest, app.MsgMissingBookFields},

	{service.ErrMissingField, http.StatusBadRequest, app.MsgMissingUserFields},
	{service.ErrUsernameTaken, http.StatusBadRequest, app.MsgUsernameExists},
	{service.ErrWeakPassword, http.StatusBadRequest, app.MsgWeakPassword},
	{service.ErrImmutableField, http.StatusBadRequest, app.MsgImmutableUsername},
	{service.ErrInvalidRequest, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrMissingFile, http.StatusBadRequest, app.MsgMissingFile},
	{service.ErrUnsupportedFileType, http.StatusBadRequest, app.MsgUnsupportedFileType},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgUnauthorized},
	{service.ErrNotOwner, http.StatusUnauthorized, app.MsgNotOwner},

	{service.ErrBookNotFound, http.StatusNotFound, app.MsgBookNotFound},
	{service.ErrImageNotFound, http.StatusNotFound, app.MsgImageNotFound},
}

func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with the status and plain-text message
// mapped from it. Unknown errors become 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := responseFromError(err)

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("unexpected error occurred while handling request")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	if errors.Is(err, service.ErrInvalidCredentials) {
		w.Header().Set("WWW-Authenticate", wwwAuthenticate)
	}
	http.Error(w, message, status)
}

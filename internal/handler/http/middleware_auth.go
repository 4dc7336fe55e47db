package http

import (
	"net/http"

	"github.com/shahparag-spring2021/webapp/internal/logger"
	"github.com/shahparag-spring2021/webapp/internal/service"
	"github.com/shahparag-spring2021/webapp/models"
)

// authenticatedHandlerFunc is a handler that receives the caller resolved
// by the authenticated middleware.
type authenticatedHandlerFunc func(w http.ResponseWriter, r *http.Request, user models.User)

// authenticated enforces HTTP Basic authentication.
//
// The Basic username is tried as a token first and then as a username with
// the Basic password, see [service.AuthService.Authenticate]. Requests
// without credentials or with wrong ones are answered with 401 and a
// WWW-Authenticate challenge; the resolved user is handed to next.
func (h *Handler) authenticated(next authenticatedHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identifier, secret, ok := r.BasicAuth()
		if !ok || identifier == "" {
			logger.FromRequest(r).Warn().Err(ErrMissingBasicAuth).Send()
			writeError(w, r, service.ErrInvalidCredentials)
			return
		}

		user, err := h.services.AuthService.Authenticate(r.Context(), identifier, secret)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next(w, r, user)
	}
}

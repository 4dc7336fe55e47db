package http

import (
	"net/http"

	"github.com/shahparag-spring2021/webapp/internal/logger"
	"github.com/shahparag-spring2021/webapp/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, user, http.StatusCreated)
}

func (h *Handler) getSelf(w http.ResponseWriter, r *http.Request, user models.User) {
	writeJSON(w, r, user, http.StatusOK)
}

// updateSelf answers 204 without a body on success.
func (h *Handler) updateSelf(w http.ResponseWriter, r *http.Request, user models.User) {
	var req models.UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.UserService.UpdateUser(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	logger.FromRequest(r).Debug().Str("user_id", updated.ID).Msg("user updated")

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.IssueToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.TokenResponse{
		Token:    token.SignedString,
		Duration: tokenLifetimeSeconds(token),
	}, http.StatusOK)
}

func tokenLifetimeSeconds(token models.Token) int64 {
	if token.ExpiresAt == nil || token.IssuedAt == nil {
		return 0
	}
	return int64(token.ExpiresAt.Sub(token.IssuedAt.Time).Seconds())
}

package handlers

import (
	"net/http"

	"mvola/kit/observability"
)

type Auth struct {
	auth   AuthServiceContract
	logger *observability.Logger
}

func NewAuth(authSvc AuthServiceContract, logger *observability.Logger) *Auth {
	return &Auth{auth: authSvc, logger: logger}
}

func (h *Auth) Token(w http.ResponseWriter, r *http.Request) {
	tok, err := h.auth.Authenticate(r.Context())
	if err != nil {
		if h.logger != nil {
			h.logger.Error("authentication failed", "layer", "handler", "component", "auth", "method", "Token", "error", err.Error())
		}
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"token":      tok.AccessToken,
		"expires_in": tok.ExpiresIn,
	})
}

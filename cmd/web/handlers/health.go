package handlers

import (
	"net/http"
	"time"

	"mvola/internal/config"
)

type Health struct {
	cfg    config.Config
	health HealthServiceContract
}

func NewHealth(cfg config.Config, healthSvc HealthServiceContract) *Health {
	return &Health{cfg: cfg, health: healthSvc}
}

func (h *Health) Status(w http.ResponseWriter, r *http.Request) {
	payload := map[string]any{
		"message":   "mvola adapter running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"config": map[string]any{
			"baseUrl":        h.cfg.BaseURL,
			"hasCredentials": h.cfg.HasCredentials(),
		},
	}
	if h.health != nil {
		res := h.health.Check(r.Context())
		payload["checks"] = res.Checks
	}
	respondJSON(w, http.StatusOK, payload)
}

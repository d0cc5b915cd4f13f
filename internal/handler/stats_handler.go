package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/huntflow/api/internal/store"
)

// StatsHandler exposes the campaign counters shown on the dashboard.
type StatsHandler struct {
	store *store.Memory
}

// NewStatsHandler constructs a StatsHandler.
func NewStatsHandler(st *store.Memory) *StatsHandler {
	return &StatsHandler{store: st}
}

// Get handles GET /stats requests.
func (h *StatsHandler) Get(c echo.Context) error {
	return Success(c, http.StatusOK, "ok", h.store.Stats())
}

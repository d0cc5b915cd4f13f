package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/huntflow/api/internal/dto"
	"github.com/octobees/huntflow/api/internal/entity"
	"github.com/octobees/huntflow/api/internal/store"
)

// LeadHandler exposes read and status-mutation endpoints over the collection.
type LeadHandler struct {
	store *store.Memory
}

// NewLeadHandler constructs a LeadHandler.
func NewLeadHandler(st *store.Memory) *LeadHandler {
	return &LeadHandler{store: st}
}

// List handles GET /leads requests.
func (h *LeadHandler) List(c echo.Context) error {
	leads := h.store.Leads()
	return Success(c, http.StatusOK, "ok", map[string]any{
		"leads": leads,
		"total": len(leads),
	})
}

// UpdateStatus handles PATCH /leads/:id/status requests. Any view may set any
// status; transitions are not constrained by a state machine.
func (h *LeadHandler) UpdateStatus(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return Error(c, http.StatusBadRequest, "lead id is required")
	}

	var req dto.UpdateLeadStatusRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	status := entity.LeadStatus(req.Status)
	if !status.IsValid() {
		return Error(c, http.StatusBadRequest, "invalid status value")
	}

	updated, err := h.store.UpdateLead(id, func(l *entity.Lead) {
		l.Status = status
	})
	if err != nil {
		if errors.Is(err, store.ErrLeadNotFound) {
			return Error(c, http.StatusNotFound, "lead not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to update lead")
	}

	return Success(c, http.StatusOK, "lead updated", updated)
}

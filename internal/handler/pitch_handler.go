package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/octobees/huntflow/api/internal/dto"
	"github.com/octobees/huntflow/api/internal/service"
	"github.com/octobees/huntflow/api/internal/store"
)

// defaultServiceOffered mirrors the dashboard's pre-filled service field.
const defaultServiceOffered = "Web Development"

// PitchHandler exposes the analyze-and-outreach actions for a lead.
type PitchHandler struct {
	pitches *service.PitchService
}

// NewPitchHandler constructs a PitchHandler.
func NewPitchHandler(pitches *service.PitchService) *PitchHandler {
	return &PitchHandler{pitches: pitches}
}

// Analyze handles POST /leads/:id/pitch requests.
func (h *PitchHandler) Analyze(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return Error(c, http.StatusBadRequest, "lead id is required")
	}

	var req dto.PitchRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	req.ServiceOffered = strings.TrimSpace(req.ServiceOffered)
	if req.ServiceOffered == "" {
		req.ServiceOffered = defaultServiceOffered
	}

	pitch, lead, err := h.pitches.AnalyzeLead(c.Request().Context(), id, req.ServiceOffered)
	if err != nil {
		if errors.Is(err, store.ErrLeadNotFound) {
			return Error(c, http.StatusNotFound, "lead not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to generate pitch")
	}

	return Success(c, http.StatusOK, "pitch generated", map[string]any{
		"pitch": pitch,
		"lead":  lead,
	})
}

// Send handles POST /leads/:id/send requests.
func (h *PitchHandler) Send(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return Error(c, http.StatusBadRequest, "lead id is required")
	}

	lead, err := h.pitches.SendEmail(id)
	if err != nil {
		if errors.Is(err, store.ErrLeadNotFound) {
			return Error(c, http.StatusNotFound, "lead not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to mark lead contacted")
	}

	return Success(c, http.StatusOK, "email sent", lead)
}

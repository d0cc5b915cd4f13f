package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/octobees/huntflow/api/internal/dto"
	"github.com/octobees/huntflow/api/internal/service"
)

// HuntHandler exposes the lead acquisition workflow.
type HuntHandler struct {
	hunts *service.HuntService
}

// NewHuntHandler constructs a HuntHandler.
func NewHuntHandler(hunts *service.HuntService) *HuntHandler {
	return &HuntHandler{hunts: hunts}
}

// Run handles POST /hunts requests: one acquisition per call.
func (h *HuntHandler) Run(c echo.Context) error {
	var req dto.HuntRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	req.Keyword = strings.TrimSpace(req.Keyword)
	req.Location = strings.TrimSpace(req.Location)
	if req.Keyword == "" || req.Location == "" {
		return Error(c, http.StatusBadRequest, "keyword and location are required")
	}

	result, err := h.hunts.Hunt(c.Request().Context(), req.Keyword, req.Location)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrHuntInProgress):
			return Error(c, http.StatusConflict, "a hunt is already in progress")
		case errors.Is(err, service.ErrMissingQuery):
			return Error(c, http.StatusBadRequest, "keyword and location are required")
		default:
			return Error(c, http.StatusInternalServerError, "hunt failed")
		}
	}

	return Success(c, http.StatusOK, "hunt complete", result)
}

// Log handles GET /hunts/log requests and returns the current hunt narrative.
func (h *HuntHandler) Log(c echo.Context) error {
	return Success(c, http.StatusOK, "ok", map[string]any{
		"hunting": h.hunts.Hunting(),
		"entries": h.hunts.LogEntries(),
	})
}

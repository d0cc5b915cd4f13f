package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/huntflow/api/internal/service"
)

// InboxHandler exposes the reply-sentiment workflow.
type InboxHandler struct {
	inbox *service.InboxService
}

// NewInboxHandler constructs an InboxHandler.
func NewInboxHandler(inbox *service.InboxService) *InboxHandler {
	return &InboxHandler{inbox: inbox}
}

// Threads handles GET /inbox/threads requests.
func (h *InboxHandler) Threads(c echo.Context) error {
	threads := h.inbox.Threads()
	return Success(c, http.StatusOK, "ok", map[string]any{
		"threads": threads,
		"total":   len(threads),
	})
}

// Select handles POST /inbox/threads/:id/select requests: it binds the
// sentiment workflow to the chosen conversation.
func (h *InboxHandler) Select(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return Error(c, http.StatusBadRequest, "thread id is required")
	}

	selection, err := h.inbox.SelectThread(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrThreadNotFound) {
			return Error(c, http.StatusNotFound, "thread not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to select thread")
	}

	return Success(c, http.StatusOK, "thread selected", selection)
}

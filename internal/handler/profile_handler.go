package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/huntflow/api/internal/dto"
	"github.com/octobees/huntflow/api/internal/entity"
	"github.com/octobees/huntflow/api/internal/service"
)

// ProfileHandler exposes the operator profile.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler constructs a ProfileHandler.
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Get handles GET /profile requests.
func (h *ProfileHandler) Get(c echo.Context) error {
	return Success(c, http.StatusOK, "ok", h.profiles.Get())
}

// Update handles PUT /profile requests: the edited scratch copy is committed
// atomically or rejected whole.
func (h *ProfileHandler) Update(c echo.Context) error {
	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	saved, err := h.profiles.Update(entity.UserProfile{
		Name:          req.Name,
		JobTitle:      req.JobTitle,
		CompanyName:   req.CompanyName,
		PersonalEmail: req.PersonalEmail,
		BusinessEmail: req.BusinessEmail,
		Phone:         req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNameRequired):
			return Error(c, http.StatusBadRequest, "name is required")
		case errors.Is(err, service.ErrInvalidEmail):
			return Error(c, http.StatusBadRequest, "invalid email address")
		default:
			return Error(c, http.StatusInternalServerError, "failed to save profile")
		}
	}

	return Success(c, http.StatusOK, "profile saved", saved)
}

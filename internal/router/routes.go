package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/huntflow/api/internal/auth"
	"github.com/octobees/huntflow/api/internal/config"
	"github.com/octobees/huntflow/api/internal/handler"
	middlewarepkg "github.com/octobees/huntflow/api/internal/middleware"
	"github.com/octobees/huntflow/api/internal/service"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth    *handler.AuthHandler
	Leads   *handler.LeadHandler
	Hunts   *handler.HuntHandler
	Pitches *handler.PitchHandler
	Inbox   *handler.InboxHandler
	Profile *handler.ProfileHandler
	Stats   *handler.StatsHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	e.POST("/auth/login", handlers.Auth.Login)

	e.GET("/leads", handlers.Leads.List)
	e.GET("/hunts/log", handlers.Hunts.Log)
	e.GET("/inbox/threads", handlers.Inbox.Threads)
	e.GET("/profile", handlers.Profile.Get)
	e.GET("/stats", handlers.Stats.Get)

	secured := e.Group("")
	secured.Use(middlewarepkg.JWT(jwtManager))
	secured.Use(middlewarepkg.RequireRole(service.OperatorRole))

	secured.POST("/hunts", handlers.Hunts.Run, middlewarepkg.HuntRateLimiter(cfg.RateLimitHunt))
	secured.PATCH("/leads/:id/status", handlers.Leads.UpdateStatus)
	secured.POST("/leads/:id/pitch", handlers.Pitches.Analyze)
	secured.POST("/leads/:id/send", handlers.Pitches.Send)
	secured.POST("/inbox/threads/:id/select", handlers.Inbox.Select)
	secured.PUT("/profile", handlers.Profile.Update)
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/octobees/huntflow/api/internal/auth"
	"github.com/octobees/huntflow/api/internal/config"
	"github.com/octobees/huntflow/api/internal/entity"
	"github.com/octobees/huntflow/api/internal/genai"
	"github.com/octobees/huntflow/api/internal/handler"
	middlewarepkg "github.com/octobees/huntflow/api/internal/middleware"
	"github.com/octobees/huntflow/api/internal/router"
	"github.com/octobees/huntflow/api/internal/search"
	"github.com/octobees/huntflow/api/internal/service"
	"github.com/octobees/huntflow/api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if cfg.GeminiAPIKey == "" {
		log.Printf("warning: no Gemini API key configured; AI enrichment will use fallback data only")
	}

	sessionStore := store.NewMemory(defaultProfile(), seedStats())

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authService, err := service.NewAuthService(cfg.OperatorEmail, cfg.OperatorPassword, jwtManager)
	if err != nil {
		log.Fatalf("failed to set up operator auth: %v", err)
	}

	geminiClient := genai.NewClient(nil, cfg.GeminiBaseURL, cfg.GeminiModel, cfg.GeminiAPIKey)
	enricher := genai.NewEnricher(geminiClient)

	httpClient := &http.Client{Timeout: 15 * time.Second}
	searchClient := search.NewClient(httpClient, cfg.SearchBaseURL)

	huntService := service.NewHuntService(searchClient, enricher, sessionStore, cfg.AcquisitionMode, cfg.Narration)
	pitchService := service.NewPitchService(enricher, sessionStore)
	inboxService := service.NewInboxService(enricher, sessionStore)
	profileService := service.NewProfileService(sessionStore, cfg.DefaultPhoneRegion)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, jwtManager, router.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Leads:   handler.NewLeadHandler(sessionStore),
		Hunts:   handler.NewHuntHandler(huntService),
		Pitches: handler.NewPitchHandler(pitchService),
		Inbox:   handler.NewInboxHandler(inboxService),
		Profile: handler.NewProfileHandler(profileService),
		Stats:   handler.NewStatsHandler(sessionStore),
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}

// defaultProfile seeds the operator identity shown before the first edit.
func defaultProfile() entity.UserProfile {
	return entity.UserProfile{
		Name:          "John Doe",
		JobTitle:      "Lead Developer",
		CompanyName:   "Orbit Agency",
		PersonalEmail: "john@gmail.com",
		BusinessEmail: "john@orbitagency.com",
		Phone:         "+1 234 567 8900",
	}
}

// seedStats seeds the dashboard counters for the demo session.
func seedStats() entity.CampaignStats {
	return entity.CampaignStats{
		TotalLeads:  1240,
		EmailsSent:  850,
		OpenRate:    42,
		ReplyRate:   12,
		ActiveLeads: 45,
	}
}

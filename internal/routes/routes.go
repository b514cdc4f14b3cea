package routes

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/ModesteNGOMA/geofuite/internal/config"
	"github.com/ModesteNGOMA/geofuite/internal/features/analysis"
	"github.com/ModesteNGOMA/geofuite/internal/features/mapview"
	"github.com/ModesteNGOMA/geofuite/internal/features/media"
	"github.com/ModesteNGOMA/geofuite/internal/features/reports"
	"github.com/ModesteNGOMA/geofuite/internal/pkg/blobstore"
	"github.com/ModesteNGOMA/geofuite/internal/pkg/logger"
	"github.com/ModesteNGOMA/geofuite/internal/pkg/response"
	"github.com/ModesteNGOMA/geofuite/internal/pkg/viewstate"
)

func SetupRoutes(router *gin.Engine, cfg *config.Config) {
	// API v1 group
	api := router.Group("/api/v1")

	// The whole report collection lives under one fixed key in a local
	// blob file; the repository loads it once and mirrors every mutation.
	store := blobstore.New(cfg.DataFile, cfg.QuotaBytes)
	reportsRepo := reports.NewRepository(store)

	// Gemini advisory bridge; runs disabled without a credential.
	analysisService, err := analysis.NewService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Warn("AI advisory bridge unavailable: %v", err)
		analysisService, _ = analysis.NewService(context.Background(), "", cfg.GeminiModel)
	}

	// Register feature routes
	reports.RegisterRoutes(api, reportsRepo)
	analysis.RegisterRoutes(api, analysisService)
	media.RegisterRoutes(api)
	mapview.RegisterRoutes(api, cfg)

	// View navigation for the client shell
	api.GET("/views/:current/:action", func(c *gin.Context) {
		next, err := viewstate.Next(
			viewstate.View(c.Param("current")),
			viewstate.Action(c.Param("action")),
		)
		if err != nil {
			response.BadRequest(c, err.Error(), "INVALID_TRANSITION")
			return
		}
		response.Success(c, gin.H{"nextView": next})
	})
}

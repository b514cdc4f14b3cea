// ================== internal/features/mapview/routes.go ==================
package mapview

import (
	"github.com/gin-gonic/gin"

	"github.com/ModesteNGOMA/geofuite/internal/config"
	"github.com/ModesteNGOMA/geofuite/internal/pkg/logger"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	var geocoder *Geocoder
	if cfg.MapsAPIKey != "" {
		g, err := NewGeocoder(cfg.MapsAPIKey)
		if err != nil {
			logger.Warn("maps client unavailable, address lookup disabled: %v", err)
		} else {
			geocoder = g
		}
	} else {
		logger.Warn("MAPS_API_KEY not set, address lookup disabled")
	}

	handler := NewHandler(cfg.DefaultLat, cfg.DefaultLng, geocoder)

	mapGroup := router.Group("/map")
	{
		mapGroup.GET("/", handler.GetEmbed)
		mapGroup.GET("/address", handler.GetAddress)
	}
}

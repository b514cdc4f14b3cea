// ================== internal/features/analysis/routes.go ==================
package analysis

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ModesteNGOMA/geofuite/internal/pkg/ratelimit"
)

func RegisterRoutes(router *gin.RouterGroup, service *Service) {
	handler := NewHandler(service)

	// The analysis endpoint is the only one that spends remote quota.
	limiter := ratelimit.New(10, time.Minute)

	analysis := router.Group("/analysis")
	analysis.Use(ratelimit.Middleware(limiter))
	{
		analysis.POST("/", handler.Analyze)
	}
}

// ================== internal/features/reports/routes.go ==================
package reports

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, repo *Repository) {
	handler := NewHandler(repo)

	reports := router.Group("/reports")
	{
		reports.POST("/", handler.Create)
		reports.GET("/", handler.List)
		reports.GET("/:id", handler.Get)
		reports.GET("/:id/summary", handler.Summary)
	}
}

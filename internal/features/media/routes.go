package media

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	handler := NewHandler()

	media := router.Group("/media")
	{
		media.POST("/photo", handler.UploadPhoto)
	}
}

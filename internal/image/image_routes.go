package image

import (
	"github.com/gin-gonic/gin"

	"github.com/Hariharan358/rec-spo/internal/blob"
)

// RegisterImageRoutes mounts the image hosting API under /images.
// The static segments (/search, /categories) are registered before the
// :id route so gin resolves them first.
func RegisterImageRoutes(router *gin.RouterGroup, repo ImageRepository, blobStorage blob.Storage) {
	controller := NewImageController(repo, blobStorage)

	images := router.Group("/images")
	{
		images.GET("", controller.ListImages)
		images.POST("", controller.UploadImage)
		images.GET("/search", controller.SearchImages)
		images.GET("/categories/:category", controller.ListImagesByCategory)
		images.GET("/:id", controller.GetImage)
		images.PUT("/:id", controller.UpdateImage)
		images.DELETE("/:id", controller.DeleteImage)
	}
}

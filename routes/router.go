package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Hariharan358/rec-spo/internal/blob"
	"github.com/Hariharan358/rec-spo/internal/content"
	"github.com/Hariharan358/rec-spo/internal/image"
)

func SetupRoutes(store *content.Store, imageRepo image.ImageRepository, blobStorage blob.Storage) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>REC Sports Club</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>REC Sports Club API 🏏</h1>
					<p><a href="/swagger/index.html">API documentation</a></p>
				</body>
			</html>
		`))
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	content.RegisterContentRoutes(api, store)
	image.RegisterImageRoutes(api, imageRepo, blobStorage)

	return r
}

package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"weblarek/internal/interfaces/http/handler"
)

// Paths locates the API and the image CDN on the engine.
type Paths struct {
	API       string
	CDN       string
	ImagesDir string
}

func RegisterRoutes(r *gin.Engine, paths Paths, productHandler *handler.ProductHandler, orderHandler *handler.OrderHandler) {
	api := r.Group(paths.API)
	{
		api.GET("/product", productHandler.ListProducts)
		api.GET("/product/:id", productHandler.GetProduct)
		api.POST("/order", orderHandler.CreateOrder)
		api.GET("/order/:id", orderHandler.GetOrder)
	}

	if paths.ImagesDir != "" {
		r.Static(paths.CDN, paths.ImagesDir)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": handler.NotFoundMessage})
	})
}

// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/producttracker/backend/internal/config"
	"github.com/producttracker/backend/internal/handlers"
	"github.com/producttracker/backend/internal/middleware"
	"github.com/producttracker/backend/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	productService := services.NewProductService(db)
	findService := services.NewFindService(db)
	statsService := services.NewStatsService(db)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService)
	findHandler := handlers.NewFindHandler(findService)
	statsHandler := handlers.NewStatsHandler(statsService)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.POST("", productHandler.CreateProduct)
			products.GET("/:id", productHandler.GetProduct)
			products.PATCH("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
			products.GET("/:id/transitions", productHandler.GetProductTransitions)
		}

		finds := v1.Group("/finds")
		{
			finds.GET("", findHandler.GetFinds)
			finds.POST("", findHandler.CreateFind)
			finds.GET("/:id", findHandler.GetFind)
			finds.PATCH("/:id", findHandler.UpdateFind)
			finds.DELETE("/:id", findHandler.DeleteFind)
			finds.GET("/:id/transitions", findHandler.GetFindTransitions)
		}

		v1.GET("/categories", productHandler.GetCategories)
		v1.GET("/stats", statsHandler.GetStats)
		v1.GET("/dashboard", statsHandler.GetDashboard)
	}

	return r
}

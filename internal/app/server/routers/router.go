package routers

import (
	"github.com/gin-gonic/gin"

	"kopik/internal/app/server/handlers/intel"
	"kopik/internal/app/server/handlers/inventory"
	"kopik/internal/app/server/handlers/recommendation"
	"kopik/internal/app/server/middlewares"
	"kopik/pkg/logger"
)

// SetupRoutes 配置所有路由，使用 Route Group 分类
func SetupRoutes(
	intelHandler *intel.IntelHandler,
	inventoryHandler *inventory.InventoryHandler,
	recommendationHandler *recommendation.RecommendationHandler,
	log logger.Logger,
) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORS())
	r.Use(middlewares.Logger(log))
	r.Use(middlewares.ErrorHandler())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "kopik",
			"message": "Service is running",
		})
	})

	v1 := r.Group("/api/v1")
	{
		intelligence := v1.Group("/intelligence")
		{
			intelligence.GET("/dashboard", intelHandler.Dashboard)
			intelligence.POST("/analyze", intelHandler.Analyze)
		}

		items := v1.Group("/inventory-items")
		{
			items.POST("", inventoryHandler.Create)
			items.GET("", inventoryHandler.List)
			items.GET("/low-stock", inventoryHandler.LowStock)
		}

		v1.GET("/recommendations", recommendationHandler.List)
	}

	return r
}

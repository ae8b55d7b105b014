package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-services/internal/shared/middleware"
	"bookstore-services/internal/shared/response"
	"bookstore-services/pkg/container"
)

func SetupRouter(c *container.OrderContainer) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/", func(ctx *gin.Context) {
		response.MessageResponse(ctx, http.StatusOK, "Order Service is running")
	})
	router.GET("/health", healthCheckHandler(c))

	orders := router.Group("/orders")
	{
		orders.POST("", c.OrderHandler.CreateOrder)
		orders.GET("", c.OrderHandler.ListOrders)
		orders.GET("/:id", c.OrderHandler.GetOrder)
		orders.PATCH("/:id/status", c.OrderHandler.UpdateOrderStatus)
		orders.DELETE("/:id", c.OrderHandler.DeleteOrder)
		orders.GET("/:id/book", c.OrderHandler.GetOrderBook)
	}

	return router
}

func healthCheckHandler(c *container.OrderContainer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "UNHEALTHY", "Database is unreachable")
			return
		}
		response.MessageResponse(ctx, http.StatusOK, "OK")
	}
}

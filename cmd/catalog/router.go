package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-services/internal/shared/middleware"
	"bookstore-services/internal/shared/response"
	"bookstore-services/pkg/container"
)

func SetupRouter(c *container.CatalogContainer) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/", func(ctx *gin.Context) {
		response.MessageResponse(ctx, http.StatusOK, "Catalog Service is running")
	})
	router.GET("/health", healthCheckHandler(c))

	books := router.Group("/books")
	{
		books.GET("", c.BookHandler.ListBooks)
		books.POST("", c.BookHandler.CreateBook)
		books.GET("/:id", c.BookHandler.GetBook)
		books.PUT("/:id", c.BookHandler.UpdateBook)
		books.DELETE("/:id", c.BookHandler.DeleteBook)
	}

	return router
}

func healthCheckHandler(c *container.CatalogContainer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "UNHEALTHY", "Database is unreachable")
			return
		}
		response.MessageResponse(ctx, http.StatusOK, "OK")
	}
}

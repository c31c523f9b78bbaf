package api

import (
	"mappulator-service/internal/api/handlers"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(store handlers.POIStore) http.Handler {
	r := gin.New()
	r.Use(requestID(), loggingMiddleware(), gin.Recovery())

	markerHandler := &handlers.MarkerHandler{Store: store}

	r.GET("/health", handlers.Health)
	r.GET("/banner", handlers.Banner)
	r.GET("/markers", markerHandler.List)
	r.GET("/markers/:index", markerHandler.Get)
	r.GET("/observer", markerHandler.Observer)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	return r
}

package handlers

import (
	"mappulator-service/internal/api/dto"
	"mappulator-service/internal/domain"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Banner serves the static title and caption shown over the map.
func Banner(c *gin.Context) {
	b := domain.DefaultBanner()
	c.JSON(http.StatusOK, dto.BannerResponse{Title: b.Title, Caption: b.Caption})
}

package handlers

import (
	"net/http"

	"github.com/ais-aviation/currency-service/internal/dto"
	"github.com/gin-gonic/gin"
)

const serviceVersion = "1.0.0"

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func Health(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{
			Status:  "healthy",
			Service: serviceName,
			Version: serviceVersion,
		})
	}
}

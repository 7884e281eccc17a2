package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shellasitanaya/backend-cv-analyzer/models"
	"github.com/shellasitanaya/backend-cv-analyzer/tools"
)

// HealthCheck returns server health status
// @Summary Health check
// @Description Check if the server is running
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Version:   "1.0.0",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// GetTools returns available tool definitions
// @Summary List available tools
// @Description Get definitions of the registered evaluation tools
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{} "Tool definitions"
// @Router /tools [get]
func GetTools(registry *tools.ToolRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"tools": registry.GetToolDefinitions(),
		})
	}
}

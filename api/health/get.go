package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-gateway/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Reports liveness and whether the upstream podcast API is configured. Never calls the upstream.
// @Tags         service
// @Produce      json
// @Success      200 {object} types.HealthResponse
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.HealthResponse{
			Status:    types.StatusOK,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Upstream:  getUpstreamStatus(deps),
		})
	}
}

// getUpstreamStatus returns the upstream configuration status
func getUpstreamStatus(deps *types.Dependencies) types.UpstreamStatus {
	if deps == nil || deps.Config == nil {
		return types.UpstreamStatus{Status: "not configured"}
	}

	status := types.UpstreamStatus{
		Status:   "configured",
		Endpoint: deps.Config.Upstream.APIURL,
	}
	if deps.Config.HasPlaceholderAPIKey() {
		status.Status = "missing credentials"
	}
	return status
}

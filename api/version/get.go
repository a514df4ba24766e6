package version

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-gateway/api/types"
)

// Name is the service name reported by the info endpoint
const Name = "Podcast Search Gateway"

// Get handles version requests
// @Summary      Service information
// @Tags         service
// @Produce      json
// @Success      200 {object} types.VersionResponse
// @Router       / [get]
func Get(build types.BuildInfo) gin.HandlerFunc {
	version := build.Version
	if version == "" {
		version = "dev"
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.VersionResponse{
			Name:        Name,
			Version:     version,
			Commit:      build.GitCommit,
			Description: "GraphQL gateway for podcast search",
			Status:      "running",
		})
	}
}

package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/killallgit/podcast-gateway/api/graphiql"
	"github.com/killallgit/podcast-gateway/api/graphql"
	"github.com/killallgit/podcast-gateway/api/health"
	"github.com/killallgit/podcast-gateway/api/types"
	"github.com/killallgit/podcast-gateway/api/version"
	_ "github.com/killallgit/podcast-gateway/docs/swagger"
	"github.com/killallgit/podcast-gateway/internal/services/search"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies) error {
	if deps == nil || deps.Config == nil {
		return fmt.Errorf("config is nil")
	}
	cfg := deps.Config
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	// Public service routes
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	if cfg.Docs.Enabled {
		engine.GET("/docs", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
		})
		engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	if cfg.Monitoring.MetricsEnabled && deps.Metrics != nil {
		engine.GET(cfg.Monitoring.MetricsPath, gin.WrapH(deps.Metrics.Handler()))
	}

	engine.NoRoute(NotFoundHandler())

	// Initialize the search service if not set
	if deps.Searcher == nil {
		deps.Searcher = initializeSearchService(deps)
	}

	if err := graphql.RegisterRoutes(engine.Group(graphql.Path), deps); err != nil {
		return fmt.Errorf("registering graphql routes: %w", err)
	}
	graphiql.RegisterRoutes(engine, graphql.Path)

	return nil
}

// initializeSearchService wires the upstream client and the search service from config
func initializeSearchService(deps *types.Dependencies) search.PodcastSearcher {
	return search.NewFromConfig(deps.Config.Upstream, deps.Logger.Named("search"), deps.Metrics)
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Status:  types.StatusError,
			Message: "The requested endpoint was not found",
			Path:    c.Request.URL.Path,
		})
	}
}

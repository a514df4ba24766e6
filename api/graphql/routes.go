package graphql

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-gateway/api/types"
	"github.com/killallgit/podcast-gateway/internal/graph"
)

// RegisterRoutes registers the GraphQL endpoint
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) error {
	if deps == nil || deps.Searcher == nil {
		return fmt.Errorf("podcast searcher is not configured")
	}

	schema, err := graph.NewSchema(deps.Searcher)
	if err != nil {
		return err
	}
	exec := graph.NewExecutor(schema)
	pretty := deps.Config != nil && deps.Config.Server.PrettyJSON

	// POST|GET /graphql (router already includes the /graphql prefix)
	router.POST("", Post(exec, pretty))
	router.GET("", Get(exec, pretty))

	return nil
}

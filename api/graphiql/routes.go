package graphiql

import (
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gin-gonic/gin"
)

// Path serves the interactive explorer page
const Path = "/graphiql"

// Title is shown in the explorer's browser tab
const Title = "Podcast Search GraphiQL"

// RegisterRoutes serves the GraphiQL explorer, pointed at endpoint
func RegisterRoutes(engine *gin.Engine, endpoint string) {
	engine.GET(Path, gin.WrapH(playground.Handler(Title, endpoint)))
}

package graphql

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-gateway/api/types"
	"github.com/killallgit/podcast-gateway/internal/graph"
)

// Path is where the GraphQL endpoint is mounted
const Path = "/graphql"

// Post handles GraphQL requests sent as a JSON body
// @Summary      Execute a GraphQL operation
// @Description  Runs a GraphQL document against the gateway schema. searchPodcasts(query: String!) returns [Podcast] with title and description.
// @Tags         graphql
// @Accept       json
// @Produce      json
// @Param        request body graph.Request true "GraphQL request"
// @Success      200 {object} map[string]interface{} "GraphQL result (data and/or errors)"
// @Failure      400 {object} types.GraphQLErrorResponse "Request could not be parsed"
// @Failure      413 {object} types.GraphQLErrorResponse "Request body too large"
// @Router       /graphql [post]
func Post(exec *graph.Executor, pretty bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req graph.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				respondError(c, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			respondError(c, http.StatusBadRequest, "request body must be a JSON object with a query field")
			return
		}

		execute(c, exec, req, pretty)
	}
}

// Get handles GraphQL requests sent as URL query parameters
// @Summary      Execute a GraphQL query via GET
// @Description  Same as POST /graphql with query, variables (JSON encoded) and operationName as URL parameters.
// @Tags         graphql
// @Produce      json
// @Param        query          query string true  "GraphQL document"
// @Param        variables      query string false "JSON-encoded variables object"
// @Param        operationName  query string false "Operation to run"
// @Success      200 {object} map[string]interface{} "GraphQL result (data and/or errors)"
// @Failure      400 {object} types.GraphQLErrorResponse "Request could not be parsed"
// @Router       /graphql [get]
func Get(exec *graph.Executor, pretty bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := graph.Request{
			Query:         c.Query("query"),
			OperationName: c.Query("operationName"),
		}

		if raw := c.Query("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
				respondError(c, http.StatusBadRequest, "variables must be a JSON object")
				return
			}
		}

		execute(c, exec, req, pretty)
	}
}

func execute(c *gin.Context, exec *graph.Executor, req graph.Request, pretty bool) {
	if strings.TrimSpace(req.Query) == "" {
		respondError(c, http.StatusBadRequest, "must provide query string")
		return
	}

	result := exec.Execute(c.Request.Context(), req)
	for _, e := range result.Errors {
		_ = c.Error(errors.New(e.Message))
	}

	if pretty {
		c.IndentedJSON(http.StatusOK, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, types.GraphQLErrorResponse{
		Errors: []types.GraphQLErrorMessage{{Message: message}},
	})
}

package graph

import (
	"context"

	"github.com/graphql-go/graphql"
)

// Request is a GraphQL-over-HTTP request body
type Request struct {
	Query         string                 `json:"query" form:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName" form:"operationName"`
}

// Executor runs requests against a schema
type Executor struct {
	schema graphql.Schema
}

// NewExecutor creates an executor for schema
func NewExecutor(schema graphql.Schema) *Executor {
	return &Executor{schema: schema}
}

// Execute parses, validates and executes req. Validation failures come back
// in Result.Errors with no data and without any resolver having run.
// Variables are held to their declared scalar types before execution.
func (e *Executor) Execute(ctx context.Context, req Request) *graphql.Result {
	if result := checkVariables(req); result != nil {
		return result
	}
	return graphql.Do(graphql.Params{
		Schema:         e.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})
}

package graph

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// NewHandler returns the HTTP handler serving the schema. GraphiQL is
// enabled for interactive use.
func NewHandler(schema *graphql.Schema) *handler.Handler {
	return handler.New(&handler.Config{
		Schema:   schema,
		Pretty:   true,
		GraphiQL: true,
	})
}

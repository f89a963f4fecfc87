// Package graphql provides the GraphQL transport of the data collection API:
// the catalog, template, collection and answer operations of the REST API,
// with nested reads (template questions, collection answers) batched through
// the request's dataloaders. The type system lives in schema/schema.graphqls.
package graphql

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/heartmarshall/datacollect-backend/internal/transport/graphql/schema"
)

const queryCacheSize = 1000

// NewHandler serves GraphQL over POST. It must run behind the auth and
// dataloader middlewares.
func NewHandler(log *slog.Logger, resolvers schema.ResolverRoot) http.Handler {
	srv := handler.New(schema.NewExecutableSchema(schema.Config{Resolvers: resolvers}))
	srv.AddTransport(transport.POST{})
	srv.SetQueryCache(lru.New[*ast.QueryDocument](queryCacheSize))
	srv.SetErrorPresenter(NewErrorPresenter(log))
	srv.SetRecoverFunc(func(_ context.Context, r any) error {
		return fmt.Errorf("resolver panic: %v", r)
	})
	return srv
}

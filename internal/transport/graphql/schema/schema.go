// Package schema is the executable GraphQL schema of the data collection API.
// The type system is declared in schema.graphqls and loaded with gqlparser;
// field execution runs on the gqlgen runtime and is dispatched to a ResolverRoot.
package schema

import (
	"bytes"
	"context"
	_ "embed"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

//go:embed schema.graphqls
var sourceData string

var parsedSchema = gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphqls", Input: sourceData})

// introspectionError is a fresh value per call: the executor stamps the
// field path onto it.
func introspectionError() error {
	return gqlerror.Errorf("introspection is not supported")
}

// NewExecutableSchema creates an ExecutableSchema from the resolvers in cfg.
func NewExecutableSchema(cfg Config) graphql.ExecutableSchema {
	return &executableSchema{schema: parsedSchema, resolvers: cfg.Resolvers}
}

type executableSchema struct {
	schema    *ast.Schema
	resolvers ResolverRoot
}

func (e *executableSchema) Schema() *ast.Schema {
	return e.schema
}

// Complexity reports no custom costs; every field counts as one.
func (e *executableSchema) Complexity(_ context.Context, _, _ string, _ int, _ map[string]any) (int, bool) {
	return 0, false
}

func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)
	ec := &executionContext{OperationContext: opCtx, resolvers: e.resolvers}

	var root func(context.Context, ast.SelectionSet) graphql.Marshaler
	switch opCtx.Operation.Operation {
	case ast.Query:
		root = ec.execQuery
	case ast.Mutation:
		root = ec.execMutation
	default:
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}

	done := false
	return func(ctx context.Context) *graphql.Response {
		if done {
			return nil
		}
		done = true

		data := root(ctx, opCtx.Operation.SelectionSet)
		var buf bytes.Buffer
		data.MarshalGQL(&buf)
		return &graphql.Response{Data: buf.Bytes()}
	}
}

type executionContext struct {
	*graphql.OperationContext
	resolvers ResolverRoot
}

// resolveFunc produces the value of one resolved field from its arguments.
type resolveFunc func(ctx context.Context, a args) (graphql.Marshaler, error)

// resolve runs fn inside a field context so errors carry the field path.
// A failed or nil result becomes null.
func (ec *executionContext) resolve(ctx context.Context, object string, field graphql.CollectedField, fn resolveFunc) (ret graphql.Marshaler) {
	a := args(field.ArgumentMap(ec.Variables))
	ctx = graphql.WithFieldContext(ctx, &graphql.FieldContext{
		Object:     object,
		Field:      field,
		Args:       a,
		IsMethod:   true,
		IsResolver: true,
	})

	defer func() {
		if r := recover(); r != nil {
			ec.Error(ctx, ec.Recover(ctx, r))
			ret = graphql.Null
		}
	}()

	m, err := fn(ctx, a)
	if err != nil {
		ec.Error(ctx, err)
		return graphql.Null
	}
	if m == nil {
		return graphql.Null
	}
	return m
}

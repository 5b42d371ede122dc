// Package schema executes GraphQL operations against schema.graphql. It
// implements gqlgen's graphql.ExecutableSchema on top of the gqlparser AST,
// so the gqlgen handler does transport, parsing, validation and error
// presentation, while field values come from a table of resolver functions.
//
// Fields without a resolver are read from the parent value: a struct field
// whose json tag matches the field name, then an exported struct field or
// method with the capitalized name. Objects inside lists are completed
// concurrently so per-item loads can be batched by a dataloader.
package schema

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

//go:embed schema.graphql
var sdl string

var parsed = gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphql", Input: sdl})

// FieldFunc resolves one field. obj is the parent value, nil for root
// fields. args holds the coerced arguments, defaults applied.
type FieldFunc func(ctx context.Context, obj any, args map[string]any) (any, error)

// Resolvers maps object type name to field name to resolver.
type Resolvers map[string]map[string]FieldFunc

// ResolverRoot provides the resolver table.
type ResolverRoot interface {
	Fields() Resolvers
}

// Config configures NewExecutableSchema.
type Config struct {
	Resolvers ResolverRoot
}

type executableSchema struct {
	schema    *ast.Schema
	resolvers Resolvers
}

// NewExecutableSchema returns the executable schema for cfg. It panics when
// a field of Query or Mutation has no resolver, or a resolver names a field
// the schema does not define.
func NewExecutableSchema(cfg Config) graphql.ExecutableSchema {
	resolvers := cfg.Resolvers.Fields()
	if err := checkResolvers(parsed, resolvers); err != nil {
		panic(err)
	}
	return &executableSchema{schema: parsed, resolvers: resolvers}
}

// Schema returns the parsed schema shared by all executable schemas.
func Schema() *ast.Schema {
	return parsed
}

func checkResolvers(s *ast.Schema, resolvers Resolvers) error {
	for _, root := range []*ast.Definition{s.Query, s.Mutation} {
		if root == nil {
			continue
		}
		for _, f := range root.Fields {
			if isIntrospectionField(f.Name) {
				continue
			}
			if resolvers[root.Name][f.Name] == nil {
				return fmt.Errorf("schema: no resolver for %s.%s", root.Name, f.Name)
			}
		}
	}
	for typeName, fields := range resolvers {
		def := s.Types[typeName]
		if def == nil || def.Kind != ast.Object {
			return fmt.Errorf("schema: resolvers for unknown object type %s", typeName)
		}
		for name := range fields {
			if def.Fields.ForName(name) == nil {
				return fmt.Errorf("schema: resolver for unknown field %s.%s", typeName, name)
			}
		}
	}
	return nil
}

func isIntrospectionField(name string) bool {
	return name == "__schema" || name == "__type" || name == "__typename"
}

func (e *executableSchema) Schema() *ast.Schema {
	return e.schema
}

func (e *executableSchema) Complexity(_ context.Context, _, _ string, _ int, _ map[string]any) (int, bool) {
	return 0, false
}

func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)

	var root *ast.Definition
	switch opCtx.Operation.Operation {
	case ast.Query:
		root = e.schema.Query
	case ast.Mutation:
		root = e.schema.Mutation
	}
	if root == nil {
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}

	first := true
	return func(ctx context.Context) *graphql.Response {
		if !first {
			return nil
		}
		first = false

		ex := &execution{schema: e.schema, resolvers: e.resolvers, opCtx: opCtx}
		data, ok := ex.object(ctx, nil, root, opCtx.Operation.SelectionSet, nil)
		if !ok {
			return &graphql.Response{Data: []byte("null")}
		}
		return &graphql.Response{Data: ex.marshal(ctx, data)}
	}
}

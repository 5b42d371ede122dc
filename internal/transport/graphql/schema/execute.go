package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/introspection"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

var errIntrospectionDisabled = errors.New("introspection disabled")

type execution struct {
	schema    *ast.Schema
	resolvers Resolvers
	opCtx     *graphql.OperationContext
}

// object completes the selection of one object value. ok is false when a
// non-null field came back null; its error has already been added.
func (ex *execution) object(ctx context.Context, path ast.Path, def *ast.Definition, sel ast.SelectionSet, parent any) (object, bool) {
	fields := graphql.CollectFields(ex.opCtx, sel, []string{def.Name})
	out := make(object, 0, len(fields))

	for _, f := range fields {
		fpath := appendPath(path, ast.PathName(f.Alias))
		if f.Name == "__typename" {
			out = append(out, member{name: f.Alias, value: def.Name})
			continue
		}

		fdef := def.Fields.ForName(f.Name)
		if fdef == nil {
			ex.addError(ctx, gqlerror.ErrorPathf(fpath, "unknown field %s.%s", def.Name, f.Name))
			return nil, false
		}

		v, err := ex.resolve(ctx, def, fdef, f.Field, parent)
		if err != nil {
			ex.addError(ctx, gqlerror.WrapPath(fpath, err))
			if fdef.Type.NonNull {
				return nil, false
			}
			out = append(out, member{name: f.Alias})
			continue
		}

		val, ok := ex.complete(ctx, fpath, fdef.Type, f.Selections, v)
		if !ok {
			return nil, false
		}
		out = append(out, member{name: f.Alias, value: val})
	}
	return out, true
}

func (ex *execution) resolve(ctx context.Context, def *ast.Definition, fdef *ast.FieldDefinition, field *ast.Field, parent any) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("resolve %s.%s: panic: %v", def.Name, fdef.Name, r)
		}
	}()

	args := field.ArgumentMap(ex.opCtx.Variables)
	if def == ex.schema.Query {
		switch fdef.Name {
		case "__schema":
			if ex.opCtx.DisableIntrospection {
				return nil, errIntrospectionDisabled
			}
			return introspection.WrapSchema(ex.schema), nil
		case "__type":
			if ex.opCtx.DisableIntrospection {
				return nil, errIntrospectionDisabled
			}
			name, _ := args["name"].(string)
			typ := ex.schema.Types[name]
			if typ == nil {
				return nil, nil
			}
			return introspection.WrapTypeFromDef(ex.schema, typ), nil
		}
	}

	if fn := ex.resolvers[def.Name][fdef.Name]; fn != nil {
		return fn(ctx, parent, args)
	}
	return readField(parent, fdef, args)
}

// complete turns a resolved value into its response form for typ.
func (ex *execution) complete(ctx context.Context, path ast.Path, typ *ast.Type, sel ast.SelectionSet, v any) (any, bool) {
	rv := indirect(reflect.ValueOf(v))
	if isNull(rv, typ) {
		if typ.NonNull {
			ex.addError(ctx, gqlerror.ErrorPathf(path, "the requested element is null which the schema does not allow"))
			return nil, false
		}
		return nil, true
	}

	out, ok := ex.completeValue(ctx, path, typ, sel, rv)
	if !ok && !typ.NonNull {
		return nil, true
	}
	return out, ok
}

func (ex *execution) completeValue(ctx context.Context, path ast.Path, typ *ast.Type, sel ast.SelectionSet, rv reflect.Value) (any, bool) {
	if typ.Elem != nil {
		return ex.list(ctx, path, typ.Elem, sel, rv)
	}

	def := ex.schema.Types[typ.NamedType]
	var (
		out any
		err error
	)
	switch def.Kind {
	case ast.Scalar:
		out, err = serializeScalar(def.Name, rv)
	case ast.Enum:
		out, err = serializeEnum(def, rv)
	case ast.Object:
		obj, ok := ex.object(ctx, path, def, sel, rv.Interface())
		return obj, ok
	default:
		err = fmt.Errorf("abstract type %s is not supported", def.Name)
	}
	if err != nil {
		ex.addError(ctx, gqlerror.WrapPath(path, err))
		return nil, false
	}
	return out, true
}

func (ex *execution) list(ctx context.Context, path ast.Path, elem *ast.Type, sel ast.SelectionSet, rv reflect.Value) (any, bool) {
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		ex.addError(ctx, gqlerror.ErrorPathf(path, "expected a list, got %s", rv.Type()))
		return nil, false
	}

	n := rv.Len()
	out := make([]any, n)
	oks := make([]bool, n)
	item := func(i int) {
		out[i], oks[i] = ex.complete(ctx, appendPath(path, ast.PathIndex(i)), elem, sel, rv.Index(i).Interface())
	}

	if n > 1 && ex.isObject(elem) {
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer func() {
					if r := recover(); r != nil {
						ex.addError(ctx, gqlerror.ErrorPathf(appendPath(path, ast.PathIndex(i)), "panic: %v", r))
					}
				}()
				item(i)
			}()
		}
		wg.Wait()
	} else {
		for i := range n {
			item(i)
		}
	}

	for _, ok := range oks {
		if !ok {
			return nil, false
		}
	}
	return out, true
}

func (ex *execution) isObject(typ *ast.Type) bool {
	def := ex.schema.Types[typ.NamedType]
	return def != nil && def.Kind == ast.Object
}

func (ex *execution) addError(ctx context.Context, err *gqlerror.Error) {
	graphql.AddError(ctx, err)
}

func (ex *execution) marshal(ctx context.Context, data object) json.RawMessage {
	b, err := json.Marshal(data)
	if err != nil {
		graphql.AddError(ctx, fmt.Errorf("encode response: %w", err))
		return json.RawMessage("null")
	}
	return b
}

// appendPath never shares the backing array of path between siblings.
func appendPath(path ast.Path, el ast.PathElement) ast.Path {
	return append(path[:len(path):len(path)], el)
}

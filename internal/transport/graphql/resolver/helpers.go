package resolver

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

// parent returns the object a field is resolved on.
func parent[T any](obj any) (T, error) {
	v, ok := obj.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("resolver: parent is %T, want %T", obj, zero)
	}
	return v, nil
}

func stringArg(args map[string]any, name string) string {
	s, _ := args[name].(string)
	return s
}

func optionalStringArg(args map[string]any, name string) *string {
	s, ok := args[name].(string)
	if !ok {
		return nil
	}
	return &s
}

func boolArg(args map[string]any, name string) bool {
	b, _ := args[name].(bool)
	return b
}

// intArg reads an optional Int. Variables arrive as json.Number or int64,
// literals as int64.
func intArg(args map[string]any, name string) (*int, error) {
	var n int64
	switch v := args[name].(type) {
	case nil:
		return nil, nil
	case int:
		n = int64(v)
	case int64:
		n = v
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return nil, domain.NewValidationError(name, "must be an integer")
		}
		n = i
	case float64:
		if v != math.Trunc(v) {
			return nil, domain.NewValidationError(name, "must be an integer")
		}
		n = int64(v)
	default:
		return nil, domain.NewValidationError(name, "must be an integer")
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return nil, domain.NewValidationError(name, "out of range")
	}
	i := int(n)
	return &i, nil
}

func stringsArg(args map[string]any, name string) ([]string, error) {
	switch v := args[name].(type) {
	case nil:
		return nil, nil
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, domain.NewValidationError(name, "must be a list of strings")
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, domain.NewValidationError(name, "must be a list of strings")
	}
}

func uuidArg(args map[string]any, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(stringArg(args, name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a valid UUID")
	}
	return id, nil
}

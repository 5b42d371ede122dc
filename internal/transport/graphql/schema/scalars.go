package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/vektah/gqlparser/v2/ast"
)

var (
	timeType = reflect.TypeOf(time.Time{})
	uuidType = reflect.TypeOf(uuid.UUID{})
)

func serializeScalar(name string, v reflect.Value) (any, error) {
	switch name {
	case "String", "ID":
		if v.Kind() == reflect.String {
			return v.String(), nil
		}
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return s.String(), nil
		}
	case "Int":
		if n, ok := toInt64(v); ok {
			if n < math.MinInt32 || n > math.MaxInt32 {
				return nil, fmt.Errorf("%d overflows Int", n)
			}
			return n, nil
		}
	case "Float":
		if n, ok := toInt64(v); ok {
			return float64(n), nil
		}
		if v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64 {
			f := v.Float()
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, fmt.Errorf("%v is not a valid Float", f)
			}
			return f, nil
		}
	case "Boolean":
		if v.Kind() == reflect.Bool {
			return v.Bool(), nil
		}
	case "UUID":
		if v.Type() == uuidType {
			return v.Interface().(uuid.UUID).String(), nil
		}
		if v.Kind() == reflect.String {
			return v.String(), nil
		}
	case "DateTime":
		if v.Type() == timeType {
			return v.Interface().(time.Time).Format(time.RFC3339), nil
		}
	case "JSON":
		if raw, ok := v.Interface().(json.RawMessage); ok {
			return raw, nil
		}
		return v.Interface(), nil
	default:
		return nil, fmt.Errorf("unknown scalar %s", name)
	}
	return nil, fmt.Errorf("cannot represent %s as %s", v.Type(), name)
}

func toInt64(v reflect.Value) (int64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	}
	return 0, false
}

// serializeEnum accepts string-kinded values naming one of def's values.
func serializeEnum(def *ast.Definition, v reflect.Value) (any, error) {
	if v.Kind() != reflect.String {
		return nil, fmt.Errorf("cannot represent %s as %s", v.Type(), def.Name)
	}
	s := v.String()
	if def.EnumValues.ForName(s) == nil {
		return nil, fmt.Errorf("%q is not a valid %s", s, def.Name)
	}
	return s, nil
}

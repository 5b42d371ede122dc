package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/vektah/gqlparser/v2/ast"
)

type member struct {
	name  string
	value any
}

// object is a response object. Members keep selection order.
type object []member

func (o object) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(m.name)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		val, err := json.Marshal(m.value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", m.name, err)
		}
		b.Write(val)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

// isNull reports whether rv is GraphQL null. A nil slice is an empty list
// in list position.
func isNull(rv reflect.Value, typ *ast.Type) bool {
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Map:
		return rv.IsNil()
	case reflect.Slice:
		return typ.Elem == nil && rv.IsNil()
	}
	return false
}

// readField reads fdef from parent when no resolver is registered.
func readField(parent any, fdef *ast.FieldDefinition, args map[string]any) (any, error) {
	rv := indirect(reflect.ValueOf(parent))
	if !rv.IsValid() {
		return nil, fmt.Errorf("no parent value to read %s from", fdef.Name)
	}

	switch rv.Kind() {
	case reflect.Struct:
		if idx, ok := jsonFields(rv.Type())[fdef.Name]; ok {
			return rv.FieldByIndex(idx).Interface(), nil
		}
		for _, name := range goNames(fdef.Name) {
			if f := rv.FieldByName(name); f.IsValid() && f.CanInterface() {
				return f.Interface(), nil
			}
		}
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			v := rv.MapIndex(reflect.ValueOf(fdef.Name).Convert(rv.Type().Key()))
			if !v.IsValid() {
				return nil, nil
			}
			return v.Interface(), nil
		}
	}

	// Methods may have pointer receivers, so call them on an addressable copy.
	ptr := reflect.New(rv.Type())
	ptr.Elem().Set(rv)
	for _, name := range goNames(fdef.Name) {
		if m := ptr.MethodByName(name); m.IsValid() {
			return callMethod(m, fdef, args)
		}
	}
	return nil, fmt.Errorf("%s has no field %s", rv.Type(), fdef.Name)
}

// callMethod passes the field arguments in definition order. Methods return
// the value, optionally followed by an error.
func callMethod(m reflect.Value, fdef *ast.FieldDefinition, args map[string]any) (any, error) {
	mt := m.Type()
	if mt.NumIn() != len(fdef.Arguments) {
		return nil, fmt.Errorf("method for %s takes %d arguments, schema defines %d", fdef.Name, mt.NumIn(), len(fdef.Arguments))
	}

	in := make([]reflect.Value, mt.NumIn())
	for i, a := range fdef.Arguments {
		pt := mt.In(i)
		v, ok := args[a.Name]
		if !ok || v == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		av := reflect.ValueOf(v)
		if !av.Type().ConvertibleTo(pt) {
			return nil, fmt.Errorf("argument %s: cannot use %T as %s", a.Name, v, pt)
		}
		in[i] = av.Convert(pt)
	}

	out := m.Call(in)
	switch len(out) {
	case 1:
		return out[0].Interface(), nil
	case 2:
		if err, _ := out[1].Interface().(error); err != nil {
			return nil, err
		}
		return out[0].Interface(), nil
	default:
		return nil, fmt.Errorf("method for %s returns %d values", fdef.Name, len(out))
	}
}

var fieldCache sync.Map // reflect.Type -> map[string][]int

// jsonFields maps the json names of t's exported fields to their index.
func jsonFields(t reflect.Type) map[string][]int {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.(map[string][]int)
	}
	fields := make(map[string][]int)
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		if _, dup := fields[name]; !dup {
			fields[name] = f.Index
		}
	}
	fieldCache.Store(t, fields)
	return fields
}

var initialisms = []string{"Id", "Url"}

// goNames lists the Go identifiers a field name may map to: lessonId is
// LessonId or LessonID.
func goNames(name string) []string {
	r, size := utf8.DecodeRuneInString(name)
	exported := string(unicode.ToUpper(r)) + name[size:]
	names := []string{exported}
	for _, in := range initialisms {
		if base, ok := strings.CutSuffix(exported, in); ok {
			names = append(names, base+strings.ToUpper(in))
		}
	}
	return names
}

package schema

import (
	"encoding/json"
	"math"
	"reflect"
)

// Kind is the coarse type of a schema or of a runtime value.
type Kind string

// Schema kinds. KindNull is never declared by a schema; KindOf reports it
// for nil values.
const (
	KindString  Kind = "string"
	KindInteger Kind = "integer"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
	KindNull    Kind = "null"
)

// KindOf classifies a runtime value.
//
// Decoded JSON (string, float64, bool, []any, map[string]any, json.Number)
// is handled directly; other Go values fall back to reflection so that
// named map and slice types classify as object and array.
func KindOf(v any) Kind {
	switch x := v.(type) {
	case nil:
		return KindNull
	case string:
		return KindString
	case bool:
		return KindBoolean
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInteger
	case float32, float64:
		return KindNumber
	case json.Number:
		if _, err := x.Int64(); err == nil {
			return KindInteger
		}
		return KindNumber
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return KindNull
		}
		return KindOf(rv.Elem().Interface())
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInteger
	case reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Slice, reflect.Array:
		return KindArray
	default:
		return KindObject
	}
}

// Matches reports whether value v satisfies declared kind k.
// Any number with no fractional part satisfies KindInteger, and any
// integer satisfies KindNumber.
func (k Kind) Matches(v any) bool {
	actual := KindOf(v)
	switch k {
	case KindInteger:
		if actual == KindInteger {
			return true
		}
		if actual == KindNumber {
			f, ok := toFloat64(v)
			return ok && f == math.Trunc(f) && !math.IsInf(f, 0)
		}
		return false
	case KindNumber:
		return actual == KindNumber || actual == KindInteger
	default:
		return actual == k
	}
}

func toFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64 {
		return rv.Float(), true
	}
	return 0, false
}

// AsMap returns v as a string-keyed map when it is an object value.
// Named map types with string keys are copied into a plain map.
func AsMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

// AsSlice returns v as a slice of values when it is an array value.
func AsSlice(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	s := make([]any, rv.Len())
	for i := range s {
		s[i] = rv.Index(i).Interface()
	}
	return s, true
}

package command

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/erraggy/commandable/cmderrors"
	"github.com/erraggy/commandable/schema"
)

// Parameters is the argument bundle passed to a command: a string-keyed map
// of decoded values (scalars, []any, map[string]any).
//
// The typed accessors fail with *cmderrors.TypeMismatchError, the same kind
// vocabulary schema validation reports.
type Parameters map[string]any

// NewParameters builds Parameters from alternating key/value pairs.
// A trailing key without a value is set to nil.
func NewParameters(tuples ...any) Parameters {
	p := make(Parameters, len(tuples)/2)
	for i := 0; i < len(tuples); i += 2 {
		key, ok := tuples[i].(string)
		if !ok {
			continue
		}
		var value any
		if i+1 < len(tuples) {
			value = tuples[i+1]
		}
		p[key] = value
	}
	return p
}

// Get returns the raw value stored under key.
func (p Parameters) Get(key string) (any, bool) {
	v, ok := p[key]
	return v, ok
}

// GetAsString returns the string stored under key.
func (p Parameters) GetAsString(key string) (string, error) {
	v, err := p.lookup(key, schema.KindString)
	if err != nil {
		return "", err
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", mismatch(key, schema.KindString, v)
}

// GetAsStringWithDefault returns the string under key, or def when the value
// is missing or not a string.
func (p Parameters) GetAsStringWithDefault(key, def string) string {
	if s, err := p.GetAsString(key); err == nil {
		return s
	}
	return def
}

// GetAsInteger returns the integer stored under key. Numbers without a
// fractional part, as produced by JSON decoding, are accepted.
func (p Parameters) GetAsInteger(key string) (int64, error) {
	v, err := p.lookup(key, schema.KindInteger)
	if err != nil {
		return 0, err
	}
	if !schema.KindInteger.Matches(v) {
		return 0, mismatch(key, schema.KindInteger, v)
	}
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, mismatch(key, schema.KindInteger, v)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f >= math.MaxInt64 || f < math.MinInt64 {
			return 0, mismatch(key, schema.KindInteger, v)
		}
		return int64(f), nil
	}
	return 0, mismatch(key, schema.KindInteger, v)
}

// GetAsIntegerWithDefault returns the integer under key, or def.
func (p Parameters) GetAsIntegerWithDefault(key string, def int64) int64 {
	if n, err := p.GetAsInteger(key); err == nil {
		return n
	}
	return def
}

// GetAsFloat returns the number stored under key.
func (p Parameters) GetAsFloat(key string) (float64, error) {
	v, err := p.lookup(key, schema.KindNumber)
	if err != nil {
		return 0, err
	}
	if n, ok := v.(json.Number); ok {
		if f, err := n.Float64(); err == nil {
			return f, nil
		}
		return 0, mismatch(key, schema.KindNumber, v)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}
	return 0, mismatch(key, schema.KindNumber, v)
}

// GetAsFloatWithDefault returns the number under key, or def.
func (p Parameters) GetAsFloatWithDefault(key string, def float64) float64 {
	if f, err := p.GetAsFloat(key); err == nil {
		return f
	}
	return def
}

// GetAsBoolean returns the boolean stored under key.
func (p Parameters) GetAsBoolean(key string) (bool, error) {
	v, err := p.lookup(key, schema.KindBoolean)
	if err != nil {
		return false, err
	}
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return false, mismatch(key, schema.KindBoolean, v)
}

// GetAsBooleanWithDefault returns the boolean under key, or def.
func (p Parameters) GetAsBooleanWithDefault(key string, def bool) bool {
	if b, err := p.GetAsBoolean(key); err == nil {
		return b
	}
	return def
}

// GetAsMap returns the object stored under key as Parameters.
func (p Parameters) GetAsMap(key string) (Parameters, error) {
	v, err := p.lookup(key, schema.KindObject)
	if err != nil {
		return nil, err
	}
	if m, ok := schema.AsMap(v); ok {
		return Parameters(m), nil
	}
	return nil, mismatch(key, schema.KindObject, v)
}

// GetAsArray returns the array stored under key.
func (p Parameters) GetAsArray(key string) ([]any, error) {
	v, err := p.lookup(key, schema.KindArray)
	if err != nil {
		return nil, err
	}
	if s, ok := schema.AsSlice(v); ok {
		return s, nil
	}
	return nil, mismatch(key, schema.KindArray, v)
}

// lookup returns the value under key or a missing-value TypeMismatchError.
// Null values count as missing.
func (p Parameters) lookup(key string, want schema.Kind) (any, error) {
	v, ok := p[key]
	if !ok || schema.KindOf(v) == schema.KindNull {
		return nil, &cmderrors.TypeMismatchError{Path: key, Expected: string(want)}
	}
	return v, nil
}

func mismatch(key string, want schema.Kind, v any) error {
	return &cmderrors.TypeMismatchError{
		Path:     key,
		Expected: string(want),
		Actual:   string(schema.KindOf(v)),
	}
}

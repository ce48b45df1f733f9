package command

import (
	"encoding/json"
	"testing"

	"github.com/erraggy/commandable/cmderrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParameters(t *testing.T) {
	p := NewParameters("a", 1, "b", "two", 3, "ignored", "trailing")
	assert.Equal(t, Parameters{"a": 1, "b": "two", "trailing": nil}, p)
}

func TestParametersAccessors(t *testing.T) {
	var p Parameters
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": "1",
		"count": 3,
		"ratio": 0.5,
		"flag": true,
		"dummy": {"key": "k"},
		"tags": ["a", "b"],
		"nothing": null
	}`), &p))

	s, err := p.GetAsString("id")
	require.NoError(t, err)
	assert.Equal(t, "1", s)

	n, err := p.GetAsInteger("count")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	f, err := p.GetAsFloat("ratio")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, f, 1e-9)

	f, err = p.GetAsFloat("count")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, f, 1e-9)

	b, err := p.GetAsBoolean("flag")
	require.NoError(t, err)
	assert.True(t, b)

	m, err := p.GetAsMap("dummy")
	require.NoError(t, err)
	assert.Equal(t, "k", m.GetAsStringWithDefault("key", ""))

	arr, err := p.GetAsArray("tags")
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, arr)

	v, ok := p.Get("nothing")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestParametersTypeMismatch(t *testing.T) {
	p := Parameters{"id": 7, "ratio": 0.5, "nothing": nil, "flag": "true"}

	tests := []struct {
		name     string
		call     func() error
		path     string
		expected string
		actual   string
	}{
		{"string from integer", func() error { _, err := p.GetAsString("id"); return err }, "id", "string", "integer"},
		{"integer from fraction", func() error { _, err := p.GetAsInteger("ratio"); return err }, "ratio", "integer", "number"},
		{"boolean from string", func() error { _, err := p.GetAsBoolean("flag"); return err }, "flag", "boolean", "string"},
		{"map from integer", func() error { _, err := p.GetAsMap("id"); return err }, "id", "object", "integer"},
		{"array from string", func() error { _, err := p.GetAsArray("flag"); return err }, "flag", "array", "string"},
		{"float from string", func() error { _, err := p.GetAsFloat("flag"); return err }, "flag", "number", "string"},
		{"missing", func() error { _, err := p.GetAsString("absent"); return err }, "absent", "string", ""},
		{"null counts as missing", func() error { _, err := p.GetAsInteger("nothing"); return err }, "nothing", "integer", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.ErrorIs(t, err, cmderrors.ErrTypeMismatch)

			var tm *cmderrors.TypeMismatchError
			require.ErrorAs(t, err, &tm)
			assert.Equal(t, tt.path, tm.Path)
			assert.Equal(t, tt.expected, tm.Expected)
			assert.Equal(t, tt.actual, tm.Actual)
		})
	}
}

func TestParametersDefaults(t *testing.T) {
	p := Parameters{"s": 1, "n": "x", "f": false, "b": 2}
	assert.Equal(t, "def", p.GetAsStringWithDefault("s", "def"))
	assert.Equal(t, int64(9), p.GetAsIntegerWithDefault("n", 9))
	assert.InDelta(t, 1.5, p.GetAsFloatWithDefault("f", 1.5), 1e-9)
	assert.True(t, p.GetAsBooleanWithDefault("b", true))
	assert.Equal(t, "def", Parameters(nil).GetAsStringWithDefault("s", "def"))
}

func TestParametersIntegerKinds(t *testing.T) {
	p := Parameters{"i8": int8(-3), "u": uint(7), "n": json.Number("12")}

	n, err := p.GetAsInteger("i8")
	require.NoError(t, err)
	assert.Equal(t, int64(-3), n)

	n, err = p.GetAsInteger("u")
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	n, err = p.GetAsInteger("n")
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
}

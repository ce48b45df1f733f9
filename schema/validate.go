package schema

import (
	"fmt"
	"strconv"

	"github.com/erraggy/commandable/cmderrors"
)

// Violation is a single validation problem. It is an alias of
// cmderrors.Violation so validation results can be carried by
// cmderrors.ValidationError without conversion.
type Violation = cmderrors.Violation

// untypedKind names the expected kind of a property declared without a schema.
const untypedKind = "any"

// Validate checks value against the schema and returns every violation found.
// An empty result is the only success. A nil schema accepts anything.
//
// Object schemas are permissive: properties that are not declared are ignored.
// Optional properties that are absent or null are accepted.
func (s *Schema) Validate(value any) []Violation {
	return s.validate(value, "")
}

func (s *Schema) validate(value any, path string) []Violation {
	if s == nil {
		return nil
	}

	if !s.kind.Matches(value) {
		return []Violation{typeMismatch(path, s.kind, KindOf(value))}
	}

	var violations []Violation
	switch s.kind {
	case KindArray:
		items, _ := AsSlice(value)
		for i, item := range items {
			violations = append(violations, s.items.validate(item, indexPath(path, i))...)
		}
	case KindObject:
		obj, _ := AsMap(value)
		for _, p := range s.props {
			propPath := joinPath(path, p.Name)
			v, ok := obj[p.Name]
			if !ok || KindOf(v) == KindNull {
				if p.Required {
					violations = append(violations, required(propPath, p.Schema, ok))
				}
				continue
			}
			violations = append(violations, p.Schema.validate(v, propPath)...)
		}
	}
	return violations
}

func typeMismatch(path string, expected, actual Kind) Violation {
	return Violation{
		Path:     path,
		Code:     cmderrors.CodeTypeMismatch,
		Expected: string(expected),
		Actual:   string(actual),
		Message:  fmt.Sprintf("expected type %s but got %s", expected, actual),
	}
}

func required(path string, s *Schema, present bool) Violation {
	expected := untypedKind
	if s != nil {
		expected = string(s.kind)
	}
	v := Violation{
		Path:     path,
		Code:     cmderrors.CodeRequired,
		Expected: expected,
		Message:  "required property is missing",
	}
	if present {
		v.Actual = string(KindNull)
		v.Message = "required property is null"
	}
	return v
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

func indexPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}

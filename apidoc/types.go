package apidoc

import "github.com/erraggy/commandable/schema"

// FallbackType is the tag used for untyped or unrecognized schemas.
const FallbackType = "object"

// TypeTable maps schema kinds to the type tags written for request properties.
type TypeTable map[schema.Kind]string

// DefaultTypeTable returns the standard mapping: each kind maps to its own
// name.
func DefaultTypeTable() TypeTable {
	return TypeTable{
		schema.KindString:  "string",
		schema.KindInteger: "integer",
		schema.KindNumber:  "number",
		schema.KindBoolean: "boolean",
		schema.KindArray:   "array",
		schema.KindObject:  "object",
	}
}

// TypeOf returns the tag for s, or FallbackType when s is nil or its kind is
// not in the table.
func (t TypeTable) TypeOf(s *schema.Schema) string {
	if tag, ok := t[s.Kind()]; ok && tag != "" {
		return tag
	}
	return FallbackType
}

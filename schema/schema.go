// Package schema describes the expected shape of command arguments.
//
// A Schema is a closed tagged variant: a primitive kind, an array wrapping one
// element schema, or an object with an ordered list of named properties.
// Schemas are immutable; the With* methods return a new schema.
//
//	s := schema.Object().
//	    WithRequired("dummy_id", schema.String()).
//	    WithOptional("paging", schema.Object().
//	        WithOptional("skip", schema.Integer()).
//	        WithOptional("take", schema.Integer()))
//
//	for _, v := range s.Validate(args) {
//	    fmt.Println(v.Path, v.Message)
//	}
//
// A nil *Schema means "untyped": anything passes validation at that position.
package schema

import "fmt"

// Schema describes one expected value.
type Schema struct {
	kind  Kind
	items *Schema
	props []Property
}

// Property is a named member of an object schema.
type Property struct {
	// Name is unique within its object schema
	Name string
	// Schema is the property's value schema; nil means untyped
	Schema *Schema
	// Required marks properties that must be present and non-null
	Required bool
}

// Required declares a required property for use with Object.
func Required(name string, s *Schema) Property {
	return Property{Name: name, Schema: s, Required: true}
}

// Optional declares an optional property for use with Object.
func Optional(name string, s *Schema) Property {
	return Property{Name: name, Schema: s}
}

// String returns a string schema.
func String() *Schema { return &Schema{kind: KindString} }

// Integer returns an integer schema.
func Integer() *Schema { return &Schema{kind: KindInteger} }

// Number returns a floating point number schema.
func Number() *Schema { return &Schema{kind: KindNumber} }

// Boolean returns a boolean schema.
func Boolean() *Schema { return &Schema{kind: KindBoolean} }

// ArrayOf returns an array schema whose elements must match elem.
// A nil elem leaves elements untyped.
func ArrayOf(elem *Schema) *Schema {
	return &Schema{kind: KindArray, items: elem}
}

// Object returns an object schema with the given properties in order.
// A later property with an already declared name replaces the earlier one
// in its original position.
func Object(props ...Property) *Schema {
	s := &Schema{kind: KindObject}
	for _, p := range props {
		s.props = withProperty(s.props, p)
	}
	return s
}

// WithRequired returns a copy of the object schema with a required property added.
// It panics when called on a non-object schema.
func (s *Schema) WithRequired(name string, prop *Schema) *Schema {
	return s.with(Required(name, prop))
}

// WithOptional returns a copy of the object schema with an optional property added.
// It panics when called on a non-object schema.
func (s *Schema) WithOptional(name string, prop *Schema) *Schema {
	return s.with(Optional(name, prop))
}

func (s *Schema) with(p Property) *Schema {
	if s == nil || s.kind != KindObject {
		panic(fmt.Sprintf("schema: cannot add property %q to a non-object schema", p.Name))
	}
	props := make([]Property, len(s.props), len(s.props)+1)
	copy(props, s.props)
	return &Schema{kind: KindObject, props: withProperty(props, p)}
}

func withProperty(props []Property, p Property) []Property {
	for i := range props {
		if props[i].Name == p.Name {
			props[i] = p
			return props
		}
	}
	return append(props, p)
}

// Kind returns the declared kind, or "" for a nil (untyped) schema.
func (s *Schema) Kind() Kind {
	if s == nil {
		return ""
	}
	return s.kind
}

// Items returns the element schema of an array schema, nil otherwise.
func (s *Schema) Items() *Schema {
	if s == nil {
		return nil
	}
	return s.items
}

// Properties returns a copy of an object schema's properties in declaration order.
func (s *Schema) Properties() []Property {
	if s == nil || len(s.props) == 0 {
		return nil
	}
	out := make([]Property, len(s.props))
	copy(out, s.props)
	return out
}

// Property looks up an object property by name.
func (s *Schema) Property(name string) (Property, bool) {
	if s == nil {
		return Property{}, false
	}
	for _, p := range s.props {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// RequiredNames returns the names of required properties in declaration order.
func (s *Schema) RequiredNames() []string {
	if s == nil {
		return nil
	}
	var names []string
	for _, p := range s.props {
		if p.Required {
			names = append(names, p.Name)
		}
	}
	return names
}

package mcpserver

import (
	"github.com/erraggy/commandable/schema"
	"github.com/google/jsonschema-go/jsonschema"
)

// InputSchema converts a command schema to a tool input schema.
// Tool inputs must be objects, so nil and non-object schemas become an
// unconstrained object.
func InputSchema(s *schema.Schema) *jsonschema.Schema {
	if s.Kind() != schema.KindObject {
		return &jsonschema.Schema{Type: "object"}
	}
	return toJSONSchema(s)
}

func toJSONSchema(s *schema.Schema) *jsonschema.Schema {
	if s == nil {
		return &jsonschema.Schema{}
	}

	js := &jsonschema.Schema{Type: string(s.Kind())}
	switch s.Kind() {
	case schema.KindArray:
		js.Items = toJSONSchema(s.Items())
	case schema.KindObject:
		props := s.Properties()
		js.Properties = make(map[string]*jsonschema.Schema, len(props))
		for _, p := range props {
			js.Properties[p.Name] = toJSONSchema(p.Schema)
		}
		js.Required = s.RequiredNames()
	}
	return js
}

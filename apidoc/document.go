package apidoc

import (
	"strings"

	"github.com/erraggy/commandable/command"
	"github.com/erraggy/commandable/schema"
)

// DefaultOpenAPIVersion is the value of the root "openapi" key.
const DefaultOpenAPIVersion = "3.0.2"

// Document describes a command set as an OpenAPI-style document.
// It holds no rendered state; every call to Model or String rebuilds the
// document from the commands.
type Document struct {
	baseRoute string
	info      Info
	commands  []*command.Command
	version   string
	types     TypeTable
}

// Option configures a Document.
type Option func(*Document)

// WithOpenAPIVersion overrides the root "openapi" value.
func WithOpenAPIVersion(version string) Option {
	return func(d *Document) {
		d.version = version
	}
}

// WithTypeTable replaces the kind-to-tag table used for request properties.
func WithTypeTable(types TypeTable) Option {
	return func(d *Document) {
		if types != nil {
			d.types = types
		}
	}
}

// New creates a Document for commands served under baseRoute.
// The commands slice is copied.
func New(baseRoute string, info Info, commands []*command.Command, opts ...Option) *Document {
	d := &Document{
		baseRoute: strings.Trim(baseRoute, "/"),
		info:      info,
		commands:  append([]*command.Command(nil), commands...),
		version:   DefaultOpenAPIVersion,
		types:     DefaultTypeTable(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Render is a shorthand for New(baseRoute, info, commands).String().
func Render(baseRoute string, info Info, commands []*command.Command) string {
	return New(baseRoute, info, commands).String()
}

// String renders the document as text.
func (d *Document) String() string {
	var w TextWriter
	d.WriteTo(&w)
	return w.String()
}

// WriteTo writes the document through w.
func (d *Document) WriteTo(w Writer) {
	d.Model().WriteTo(w, 0)
}

// Route returns the path served for a command name, always with a single
// leading slash.
func (d *Document) Route(name string) string {
	if d.baseRoute == "" {
		return "/" + name
	}
	return "/" + d.baseRoute + "/" + name
}

// Model builds the document tree.
func (d *Document) Model() Mapping {
	return Mapping{
		{"openapi", d.version},
		{"info", d.info.mapping()},
		{"paths", d.paths()},
	}
}

func (d *Document) paths() Mapping {
	paths := make(Mapping, 0, len(d.commands))
	for _, c := range d.commands {
		if c == nil {
			continue
		}
		paths = append(paths, Entry{d.Route(c.Name()), Mapping{
			{"post", Mapping{
				{"tags", d.tags()},
				{"operationId", c.Name()},
				{"requestBody", d.requestBody(c.Schema())},
				{"responses", responses()},
			}},
		}})
	}
	return paths
}

func (d *Document) tags() []string {
	if d.baseRoute == "" {
		return nil
	}
	return []string{d.baseRoute}
}

// requestBody returns nil for commands without an object schema.
func (d *Document) requestBody(s *schema.Schema) any {
	if s.Kind() != schema.KindObject {
		return nil
	}

	props := s.Properties()
	properties := make(Mapping, 0, len(props))
	var required []string
	for _, p := range props {
		properties = append(properties, Entry{p.Name, Mapping{{"type", d.types.TypeOf(p.Schema)}}})
		if p.Required {
			required = append(required, p.Name)
		}
	}

	return Mapping{
		{"content", Mapping{
			{"application/json", Mapping{
				{"schema", Mapping{
					{"properties", properties},
					{"required", required},
				}},
			}},
		}},
	}
}

func responses() Mapping {
	return Mapping{
		{"200", Mapping{
			{"description", "Successful response"},
			{"content", Mapping{
				{"application/json", Mapping{
					{"schema", Mapping{{"type", "object"}}},
				}},
			}},
		}},
	}
}

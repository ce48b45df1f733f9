// Package apidoc synthesizes an OpenAPI-style YAML document from a command set.
//
// Every command becomes one POST operation at "/{baseRoute}/{name}". Commands
// with an object schema get a request body listing the schema's properties with
// a coarse type tag and the names of the required ones. Responses are always a
// generic 200 with an untyped object body.
//
// Rendering is deterministic: the same commands always produce byte-identical
// text, ordered by registration order and a fixed key order.
//
//	text := apidoc.Render("dummy", apidoc.DefaultInfo(), set.Commands())
//
// For more control, build a [Document] with options:
//
//	doc := apidoc.New("dummy", info, set.Commands(),
//	    apidoc.WithOpenAPIVersion("3.0.3"),
//	)
//	text := doc.String()
//
// Serialization goes through the [Writer] interface. [TextWriter] is the
// implementation used by [Document]; it knows the indentation and quoting
// rules and nothing about OpenAPI.
package apidoc

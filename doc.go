// Package commandable provides named, schema-validated commands that can be
// grouped into command sets and served over HTTP and MCP.
//
// # Overview
//
// The library consists of these packages:
//
//   - schema: Describe the expected shape of command arguments and validate them
//   - command: Define commands, group them into sets and dispatch by name
//   - interceptor: Logging, timing and tracing wrappers for command dispatch
//   - apidoc: Synthesize an OpenAPI 3 YAML document from a list of commands
//   - httpservice: Expose a command set as POST routes with an API document route
//   - cmderrors: Sentinel and structured errors shared by all packages
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/commandable
//
// # Quick Start
//
// Define a command and put it in a set:
//
//	import (
//		"github.com/erraggy/commandable/command"
//		"github.com/erraggy/commandable/schema"
//	)
//
//	set := command.NewSet()
//	err := set.AddCommand(command.New("get_item",
//		schema.Object().WithRequired("id", schema.String()),
//		command.HandlerFunc(func(ctx context.Context, correlationID string, args command.Parameters) (any, error) {
//			id, err := args.GetAsString("id")
//			if err != nil {
//				return nil, err
//			}
//			return lookup(ctx, id)
//		}),
//	))
//
// Dispatch by name:
//
//	result, err := set.Execute(ctx, "get_item", "corr-1", command.Parameters{"id": "42"})
//	if errors.Is(err, cmderrors.ErrValidation) {
//		// arguments did not match the schema
//	}
//
// Render the API document for the set:
//
//	import "github.com/erraggy/commandable/apidoc"
//
//	doc := apidoc.New("items", apidoc.DefaultInfo(), set.Commands())
//	fmt.Print(doc.String())
//
// Serve it over HTTP:
//
//	import "github.com/erraggy/commandable/httpservice"
//
//	svc := httpservice.New("items", set, httpservice.WithDocument(true))
//	err := svc.ListenAndServe(ctx, ":8080")
//
// # Command Line
//
// The commandable binary serves the bundled dummy command set:
//
//	commandable serve -config commandable.yaml
//	commandable mcp
//	commandable openapi -o openapi.yaml
package commandable

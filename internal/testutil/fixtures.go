// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/commandable/command"
	"github.com/erraggy/commandable/schema"
)

// EchoHandler returns a handler whose result is its own arguments.
func EchoHandler() command.Handler {
	return command.HandlerFunc(func(_ context.Context, _ string, args command.Parameters) (any, error) {
		return args, nil
	})
}

// ItemSchema describes a small item argument object: a required string id
// and an optional integer count.
func ItemSchema() *schema.Schema {
	return schema.Object().
		WithRequired("id", schema.String()).
		WithOptional("count", schema.Integer())
}

// NewItemSet creates a command set with one echoing command per name, each
// validated by ItemSchema. Registration failures fail the test.
func NewItemSet(t *testing.T, names ...string) *command.Set {
	t.Helper()

	set := command.NewSet()
	for _, name := range names {
		if err := set.AddCommand(command.New(name, ItemSchema(), EchoHandler())); err != nil {
			t.Fatalf("Failed to add command %q: %v", name, err)
		}
	}
	return set
}

// WriteTempFile writes content to a file named name in a temporary directory.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}

	return tmpFile
}

// WriteTempYAML marshals a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}

	return WriteTempFile(t, "test.yaml", string(data))
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}

	return WriteTempFile(t, "test.json", string(data))
}

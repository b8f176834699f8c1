// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"go.yaml.in/yaml/v4"
)

// Fixture names under the repository testdata directory.
const (
	PetstoreJSON = "petstore.oas2.json"
	ExampleYAML  = "example.oas2.yaml"
)

// FixturePath returns the absolute path of a file in the repository's
// testdata directory.
func FixturePath(t testing.TB, name string) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to locate the testutil package")
	}
	return filepath.Join(filepath.Dir(file), "..", "..", "testdata", name)
}

// LoadFixture reads a file from the repository's testdata directory.
func LoadFixture(t testing.TB, name string) []byte {
	t.Helper()

	data, err := os.ReadFile(FixturePath(t, name))
	if err != nil {
		t.Fatalf("Failed to read fixture %s: %v", name, err)
	}
	return data
}

// NewMinimalOAS2Document returns the smallest document that converts: a
// swagger version and an info object. Callers add paths and definitions.
func NewMinimalOAS2Document() map[string]any {
	return map[string]any{
		"swagger": "2.0",
		"info": map[string]any{
			"title":   "Test API",
			"version": "1.0.0",
		},
	}
}

// WriteTemp writes data to a file named name in a temporary directory.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTemp(t testing.TB, name string, data []byte) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return tmpFile
}

// WriteTempYAML marshals a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
func WriteTempYAML(t testing.TB, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}
	return WriteTemp(t, "test.yaml", data)
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
func WriteTempJSON(t testing.TB, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}
	return WriteTemp(t, "test.json", data)
}

// MustJSON marshals doc to JSON or fails the test.
func MustJSON(t testing.TB, doc any) []byte {
	t.Helper()

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}
	return data
}

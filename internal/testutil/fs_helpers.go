// Package testutil provides test utilities and helpers for lfenv tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleConfig is a small config exercising icons, both color schemes,
// decorations and an unsupported LS_COLORS key.
const SampleConfig = `{
  "data": [
    {
      "patterns": ["di"],
      "icon": "D",
      "fg": "#FF0000",
      "decoration": "bold"
    },
    {
      "patterns": ["*.go", "*.mod"],
      "icon": "G",
      "fg": "#00ADD8",
      "lf_fg": "#00ADD8",
      "lf_decoration": "underscore"
    },
    {
      "patterns": ["zz"],
      "bg": "#000000",
      "lf_bg": "#FFFFFF"
    }
  ]
}`

// WriteConfig writes content to dir/config.json and returns its path.
func WriteConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config.json: %v", err)
	}
	return path
}

// ReadFile returns the content of path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// Ptr returns a pointer to v, for optional config fields.
func Ptr[T any](v T) *T {
	return &v
}

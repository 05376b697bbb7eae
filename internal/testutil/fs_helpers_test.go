package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := WriteConfig(t, dir, SampleConfig)

	assert.Equal(t, filepath.Join(dir, "config.json"), path)
	assert.Equal(t, SampleConfig, ReadFile(t, path))
}

func TestPtr(t *testing.T) {
	t.Parallel()

	p := Ptr("bold")
	assert.Equal(t, "bold", *p)
	assert.NotSame(t, p, Ptr("bold"))
}

package cli

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/lfenv/lfenv/internal/build"
	"github.com/stretchr/testify/assert"
)

func TestPrintPlainVersion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printPlainVersion(&buf)

	out := buf.String()
	assert.Contains(t, out, "lfenv "+build.Version+"\n")
	assert.Contains(t, out, "commit: "+build.Commit+"\n")
	assert.Contains(t, out, "go: "+runtime.Version()+"\n")
	assert.Contains(t, out, "platform: "+runtime.GOOS+"/"+runtime.GOARCH+"\n")
}

func TestPrintPrettyVersion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printPrettyVersion(&buf)

	out := buf.String()
	for _, label := range []string{"Version", "Commit", "Built", "Go", "Platform"} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, build.ShortCommit())
}

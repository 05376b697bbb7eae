package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/lfenv/lfenv/internal/ansi"
	"github.com/lfenv/lfenv/internal/config"
	"github.com/lfenv/lfenv/internal/emit"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want int
	}{
		"nil": {
			err:  nil,
			want: ExitSuccess,
		},
		"plain error": {
			err:  errors.New("boom"),
			want: ExitFailure,
		},
		"validation error": {
			err:  &config.ValidationError{FilePath: "config.json", Message: "config file not found"},
			want: ExitInvalidConfig,
		},
		"wrapped format error": {
			err:  fmt.Errorf("data[0]: fg: %w", &ansi.FormatError{Value: "#FFF"}),
			want: ExitInvalidColor,
		},
		"output error": {
			err:  &emit.OutputError{Path: "/nope", Err: errors.New("denied")},
			want: ExitOutputFailed,
		},
		"explicit exit error": {
			err:  NewExitError(ExitUnsupportedKeys, errors.New("strict")),
			want: ExitUnsupportedKeys,
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}

func TestExitError_Message(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "strict", NewExitError(ExitUnsupportedKeys, errors.New("strict")).Error())
	assert.Equal(t, "exit code 5", NewExitError(ExitUnsupportedKeys, nil).Error())
}

func TestPrintError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	PrintError(&buf, errors.New("config.json: config file not found"))
	assert.Contains(t, buf.String(), "Error:")
	assert.Contains(t, buf.String(), "config.json: config file not found\n")
}

package emit

import (
	"fmt"
	"io"
	"os"
)

// OutputFileMode is the permission of a newly created output file.
const OutputFileMode = 0o644

// OutputError reports a failure to write the emitted text.
type OutputError struct {
	Path   string
	Stdout bool
	Err    error
}

func (e *OutputError) Error() string {
	if e.Stdout {
		return fmt.Sprintf("writing to stdout: %v", e.Err)
	}
	return fmt.Sprintf("writing %q: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

// Write writes text to *path, replacing any existing file. A nil path
// writes text to stdout unchanged. An empty path is not stdout: the write
// is attempted and fails.
func Write(path *string, text string, stdout io.Writer) error {
	if path == nil {
		if _, err := io.WriteString(stdout, text); err != nil {
			return &OutputError{Stdout: true, Err: err}
		}
		return nil
	}

	if err := os.WriteFile(*path, []byte(text), OutputFileMode); err != nil {
		return &OutputError{Path: *path, Err: err}
	}
	return nil
}

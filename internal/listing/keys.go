// Package listing knows which keys GNU ls accepts in LS_COLORS.
package listing

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// supportedKey matches the two-letter file type codes and "*.ext" globs
// understood by GNU ls. Only the start of the key has to match.
var supportedKey = regexp.MustCompile(`^(?:no|fi|di|ln|pi|do|bd|cd|or|so|su|sg|tw|ow|st|ex|mi|lc|rc|ec|\*\.\w+)`)

// IsSupportedKey reports whether key starts with a key GNU ls recognizes.
func IsSupportedKey(key string) bool {
	return supportedKey.MatchString(key)
}

// Validator checks pattern keys and reports unsupported ones on a
// diagnostic writer. The zero value discards warnings.
type Validator struct {
	out         io.Writer
	colored     bool
	unsupported []string
}

// NewValidator returns a Validator writing warnings to out.
// The "warn:" prefix is colored only when out is a terminal.
func NewValidator(out io.Writer) *Validator {
	return &Validator{out: out, colored: isTerminal(out)}
}

// Check reports whether key is supported, warning on the diagnostic writer
// when it is not.
func (v *Validator) Check(key string) bool {
	if IsSupportedKey(key) {
		return true
	}
	v.unsupported = append(v.unsupported, key)
	if v.out != nil {
		fmt.Fprintf(v.out, "%s %s is not supported in GNU ls\n", v.prefix(), key)
	}
	return false
}

// Unsupported returns the rejected keys in the order they were checked.
func (v *Validator) Unsupported() []string {
	return append([]string(nil), v.unsupported...)
}

func (v *Validator) prefix() string {
	if !v.colored {
		return "warn:"
	}
	c := color.New(color.FgYellow)
	c.EnableColor()
	return c.Sprint("warn:")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

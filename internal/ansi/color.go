// Package ansi builds the SGR color fragments used as LS_COLORS and
// LF_COLORS values: truecolor foreground/background plus an optional
// decoration code.
package ansi

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lucasb-eyer/go-colorful"
)

// SGR selectors for 24-bit colors.
const (
	foregroundPrefix = "38;2;"
	backgroundPrefix = "48;2;"
)

// FormatError reports a malformed hex color or an unknown decoration.
type FormatError struct {
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid format %q: %s", e.Value, e.Reason)
}

var validate = validator.New()

// HexToTriplet converts "#RRGGBB" into a decimal "R;G;B" triplet.
func HexToTriplet(hex string) (string, error) {
	if err := validate.Var(hex, "len=7,hexcolor"); err != nil {
		return "", &FormatError{Value: hex, Reason: "expected #RRGGBB"}
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return "", &FormatError{Value: hex, Reason: err.Error()}
	}

	r, g, b := c.RGB255()
	return fmt.Sprintf("%d;%d;%d", r, g, b), nil
}

// BuildEscape combines optional background and foreground triplets with an
// optional decoration. The decoration code is appended to each fragment, so
// with both colors set it appears twice. Returns "" when neither color is set.
func BuildEscape(bg, fg, decoration *string) (string, error) {
	suffix := ""
	if decoration != nil && *decoration != "" {
		code, ok := DecorationCode(*decoration)
		if !ok {
			return "", &FormatError{
				Value:  *decoration,
				Reason: "unknown decoration, must be one of: " + strings.Join(Decorations(), ", "),
			}
		}
		suffix = ";" + code
	}

	parts := make([]string, 0, 2)
	if fg != nil && *fg != "" {
		parts = append(parts, foregroundPrefix+*fg+suffix)
	}
	if bg != nil && *bg != "" {
		parts = append(parts, backgroundPrefix+*bg+suffix)
	}
	return strings.Join(parts, ";"), nil
}

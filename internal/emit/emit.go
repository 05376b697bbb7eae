// Package emit renders encoded strings as shell export statements and
// writes them to their destination.
package emit

import (
	"fmt"
	"strings"

	"github.com/lfenv/lfenv/internal/translate"
)

// Variable names, in emission order.
const (
	VarLFIcons  = "LF_ICONS"
	VarLSColors = "LS_COLORS"
	VarLFColors = "LF_COLORS"
)

// EnvVars returns one export line per non-empty string, in the order
// LF_ICONS, LS_COLORS, LF_COLORS. Returns "" when all are empty.
func EnvVars(enc *translate.Encoded) string {
	var b strings.Builder
	for _, v := range []struct {
		name  string
		value string
	}{
		{VarLFIcons, enc.LFIcons},
		{VarLSColors, enc.LSColors},
		{VarLFColors, enc.LFColors},
	} {
		if v.value == "" {
			continue
		}
		fmt.Fprintf(&b, "export %s='%s';\n", v.name, v.value)
	}
	return b.String()
}

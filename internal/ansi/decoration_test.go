package ansi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecorationCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		code string
		ok   bool
	}{
		"none":       {code: "09", ok: true},
		"bold":       {code: "01", ok: true},
		"underscore": {code: "04", ok: true},
		"blink":      {code: "05", ok: true},
		"reverse":    {code: "07", ok: true},
		"concealed":  {code: "08", ok: true},
		"italic":     {},
		"Bold":       {},
		"":           {},
	}

	for name, tc := range tests {
		name := name
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			code, ok := DecorationCode(name)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.code, code)
		})
	}
}

func TestDecorations(t *testing.T) {
	t.Parallel()

	names := Decorations()
	assert.Equal(t, []string{"none", "bold", "underscore", "blink", "reverse", "concealed"}, names)

	// Callers may not mutate the table.
	names[0] = "changed"
	assert.Equal(t, "none", Decorations()[0])
}

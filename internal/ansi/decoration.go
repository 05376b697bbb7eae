package ansi

// decorations maps decoration names to SGR codes, in documentation order.
// "none" is 09 rather than 00; existing LS_COLORS files depend on it.
var decorations = []struct {
	name string
	code string
}{
	{"none", "09"},
	{"bold", "01"},
	{"underscore", "04"},
	{"blink", "05"},
	{"reverse", "07"},
	{"concealed", "08"},
}

// DecorationCode returns the SGR code for a decoration name.
func DecorationCode(name string) (string, bool) {
	for _, d := range decorations {
		if d.name == name {
			return d.code, true
		}
	}
	return "", false
}

// Decorations returns the recognized decoration names.
func Decorations() []string {
	names := make([]string, len(decorations))
	for i, d := range decorations {
		names[i] = d.name
	}
	return names
}

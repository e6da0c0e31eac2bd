// Package fonts resolves user-facing font family names to PDF font
// families. The built-in families are the PDF core fonts, which need no
// font files; external TrueType families can be registered with the
// rendering backend through a Variant set.
package fonts

import "strings"

// Core PDF font families.
const (
	Helvetica = "Helvetica"
	Times     = "Times"
	Courier   = "Courier"
)

// DefaultFamily is used for unknown or empty family names. Resolution
// never fails: a name that matches nothing falls back here.
const DefaultFamily = Helvetica

// aliases maps lowercase user-facing names to core families.
var aliases = map[string]string{
	"helvetica": Helvetica,
	"arial":     Helvetica,
	"sans":      Helvetica,
	"roboto":    Helvetica,
	"times":     Times,
	"serif":     Times,
	"georgia":   Times,
	"courier":   Courier,
	"mono":      Courier,
	"monospace": Courier,
}

// Variant holds TrueType file paths for the four conventional variants of
// an external family. Empty paths mean the variant is unavailable and the
// regular face is substituted.
type Variant struct {
	Regular    string
	Bold       string
	Italic     string
	BoldItalic string
}

// Resolve maps a family name to a known PDF family, defaulting when the
// name is empty or unrecognized. Matching is case-insensitive.
func Resolve(name string) string {
	if family, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return family
	}
	return DefaultFamily
}

// Known reports whether name resolves to something other than the
// fallback because it was actually recognized.
func Known(name string) bool {
	_, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

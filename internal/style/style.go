// Package style defines the visual style table for rendered documents and
// the resolver that merges user overrides into the built-in defaults.
package style

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Alignment is horizontal paragraph alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// Descriptor is the complete visual style for one element kind. Nil
// pointer fields mean "unset": the renderer falls back to its own default
// (black text, no background, flow-left alignment).
type Descriptor struct {
	Size            uint8
	TextColor       *RGB
	BackgroundColor *RGB
	BeforeSpacing   float64
	AfterSpacing    float64
	Alignment       *Alignment
	FontFamily      string
	Bold            bool
	Italic          bool
	Underline       bool
	Strikethrough   bool
}

// Margins are page margins in millimeters.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// Sheet is the fully resolved style table: one Descriptor per element kind
// plus page margins. A Sheet is built once per conversion and read-only
// thereafter.
type Sheet struct {
	Margins Margins

	Heading1       Descriptor
	Heading2       Descriptor
	Heading3       Descriptor
	Text           Descriptor
	Emphasis       Descriptor
	StrongEmphasis Descriptor
	Code           Descriptor
	BlockQuote     Descriptor
	ListItem       Descriptor
	Link           Descriptor
	Image          Descriptor
	HorizontalRule Descriptor
}

// Default returns the built-in style table. Callers treat the result as a
// value; it is never shared mutable state.
func Default() Sheet {
	gray := RGB{R: 102, G: 102, B: 102}
	blue := RGB{R: 0, G: 102, B: 204}

	return Sheet{
		Margins: Margins{Top: 10, Right: 10, Bottom: 10, Left: 10},

		Heading1: Descriptor{Size: 18, Bold: true, BeforeSpacing: 2, AfterSpacing: 4},
		Heading2: Descriptor{Size: 15, Bold: true, BeforeSpacing: 2, AfterSpacing: 3},
		Heading3: Descriptor{Size: 13, Bold: true, BeforeSpacing: 1, AfterSpacing: 2},

		Text: Descriptor{Size: 11, AfterSpacing: 1},

		Emphasis:       Descriptor{Size: 11, Italic: true},
		StrongEmphasis: Descriptor{Size: 11, Bold: true},

		Code: Descriptor{
			Size:         10,
			TextColor:    &RGB{R: 51, G: 51, B: 51},
			FontFamily:   "courier",
			AfterSpacing: 2,
		},

		BlockQuote: Descriptor{Size: 11, Italic: true, TextColor: &gray, AfterSpacing: 2},
		ListItem:   Descriptor{Size: 11, AfterSpacing: 1},
		Link:       Descriptor{Size: 11, TextColor: &blue, Underline: true},
		Image:      Descriptor{Size: 11},

		HorizontalRule: Descriptor{Size: 11, TextColor: &gray, BeforeSpacing: 2, AfterSpacing: 2},
	}
}

// Package pdf turns the block sequence into rendering calls against a
// Backend and provides the gofpdf-based backend implementation. The
// builder owns style selection and inline composition; the backend owns
// page layout, text shaping, and byte emission.
package pdf

import (
	"errors"

	"github.com/mdpress/mdpress/internal/fonts"
	"github.com/mdpress/mdpress/internal/style"
)

// Sentinel errors for rendering operations.
var (
	ErrRender       = errors.New("PDF rendering failed")
	ErrFontRegister = errors.New("font registration failed")
)

// TextRun is one styled span inside a paragraph. A non-empty URL makes the
// run a hyperlink. Font is an already resolved PDF font family.
type TextRun struct {
	Text          string
	Font          string
	Size          uint8
	Color         *style.RGB
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	URL           string
}

// Paragraph is a flow of runs with block-level spacing. Spacing values are
// in millimeters.
type Paragraph struct {
	Runs          []TextRun
	Alignment     style.Alignment
	SpacingBefore float64
	SpacingAfter  float64
}

// ListEntry is one rendered list item. Depth is the nesting level starting
// at zero; Number is meaningful only when Ordered is true.
type ListEntry struct {
	Runs    []TextRun
	Depth   int
	Ordered bool
	Number  int
}

// Backend is the external rendering collaborator. Implementations must
// treat every call as fallible and surface descriptive errors; the builder
// aborts on the first failure with no retry or skip.
type Backend interface {
	// SetMargins configures the page margins before any content is
	// written.
	SetMargins(m style.Margins)

	// RegisterFontFamily registers an external TrueType family under the
	// given reference name.
	RegisterFontFamily(name string, v fonts.Variant) error

	// WriteParagraph emits a styled paragraph, hyperlink runs included.
	WriteParagraph(p Paragraph) error

	// WriteList emits list entries in order, indenting by entry depth.
	WriteList(entries []ListEntry, spacingBefore, spacingAfter float64) error

	// WriteRule emits a horizontal rule in the given color.
	WriteRule(spacingBefore, spacingAfter float64, color *style.RGB) error

	// WriteSpacer advances the cursor by height millimeters.
	WriteSpacer(height float64) error

	// Render writes the document to the target path.
	Render(path string) error
}

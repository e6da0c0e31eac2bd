package pdf

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/mdpress/mdpress/internal/fonts"
	"github.com/mdpress/mdpress/internal/style"
)

// listIndentStep is the left indent added per list nesting level, in
// millimeters.
const listIndentStep = 6.0

// FpdfBackend renders through gofpdf onto A4 portrait pages. Core font
// text is passed through a CP1252 translator; families registered with
// RegisterFontFamily render as UTF-8.
type FpdfBackend struct {
	doc       *gofpdf.Fpdf
	translate func(string) string
	utf8      map[string]bool
	started   bool
}

// NewFpdfBackend creates a backend with an empty A4 document.
func NewFpdfBackend() *FpdfBackend {
	doc := gofpdf.New("P", "mm", "A4", "")
	return &FpdfBackend{
		doc:       doc,
		translate: doc.UnicodeTranslatorFromDescriptor(""),
		utf8:      make(map[string]bool),
	}
}

// SetMargins applies page margins and reserves the bottom margin for the
// automatic page break.
func (f *FpdfBackend) SetMargins(m style.Margins) {
	f.doc.SetMargins(m.Left, m.Top, m.Right)
	f.doc.SetAutoPageBreak(true, m.Bottom)
}

// RegisterFontFamily registers the TrueType variants of an external
// family. Missing variant files fall back to the regular face.
func (f *FpdfBackend) RegisterFontFamily(name string, v fonts.Variant) error {
	if v.Regular == "" {
		return fmt.Errorf("%w: family %q has no regular variant", ErrFontRegister, name)
	}
	for styleStr, path := range variantPaths(v) {
		f.doc.AddUTF8Font(name, styleStr, path)
	}
	if f.doc.Err() {
		return fmt.Errorf("%w: family %q: %v", ErrFontRegister, name, f.doc.Error())
	}
	f.utf8[name] = true
	return nil
}

func (f *FpdfBackend) WriteParagraph(p Paragraph) error {
	f.ensurePage()
	lh := f.paragraphLineHeight(p.Runs)
	f.advance(p.SpacingBefore)

	// Aligned output needs the whole paragraph in one call, so alignment
	// other than left applies only to single-run paragraphs; mixed-style
	// paragraphs flow left.
	if len(p.Runs) == 1 && p.Alignment != style.AlignLeft && p.Runs[0].URL == "" {
		run := p.Runs[0]
		f.applyRun(run)
		switch p.Alignment {
		case style.AlignCenter:
			f.doc.WriteAligned(0, lh, f.text(run), "C")
			f.doc.Ln(lh)
		case style.AlignRight:
			f.doc.WriteAligned(0, lh, f.text(run), "R")
			f.doc.Ln(lh)
		case style.AlignJustify:
			f.doc.MultiCell(0, lh, f.text(run), "", "J", false)
		}
	} else {
		for _, run := range p.Runs {
			f.applyRun(run)
			if run.URL != "" {
				f.doc.WriteLinkString(lh, f.text(run), run.URL)
			} else {
				f.doc.Write(lh, f.text(run))
			}
		}
		f.doc.Ln(lh)
	}

	f.advance(p.SpacingAfter)
	return f.err()
}

func (f *FpdfBackend) WriteList(entries []ListEntry, spacingBefore, spacingAfter float64) error {
	f.ensurePage()
	f.advance(spacingBefore)

	baseLeft, _, _, _ := f.doc.GetMargins()
	for _, e := range entries {
		lh := f.paragraphLineHeight(e.Runs)
		indent := baseLeft + float64(e.Depth)*listIndentStep
		// Indent via the left margin so wrapped lines stay aligned.
		f.doc.SetLeftMargin(indent)
		f.doc.SetX(indent)

		marker := "• "
		if e.Ordered {
			marker = fmt.Sprintf("%d. ", e.Number)
		}
		if len(e.Runs) > 0 {
			markerRun := e.Runs[0]
			markerRun.URL = ""
			f.applyRun(markerRun)
		}
		f.doc.Write(lh, f.translate(marker))

		for _, run := range e.Runs {
			f.applyRun(run)
			if run.URL != "" {
				f.doc.WriteLinkString(lh, f.text(run), run.URL)
			} else {
				f.doc.Write(lh, f.text(run))
			}
		}
		f.doc.Ln(lh)
	}
	f.doc.SetLeftMargin(baseLeft)
	f.doc.SetX(baseLeft)

	f.advance(spacingAfter)
	return f.err()
}

func (f *FpdfBackend) WriteRule(spacingBefore, spacingAfter float64, color *style.RGB) error {
	f.ensurePage()
	f.advance(spacingBefore)

	left, _, right, _ := f.doc.GetMargins()
	width, _ := f.doc.GetPageSize()
	y := f.doc.GetY()
	if color != nil {
		f.doc.SetDrawColor(int(color.R), int(color.G), int(color.B))
	} else {
		f.doc.SetDrawColor(0, 0, 0)
	}
	f.doc.Line(left, y, width-right, y)

	f.advance(spacingAfter)
	return f.err()
}

func (f *FpdfBackend) WriteSpacer(height float64) error {
	f.ensurePage()
	f.advance(height)
	return f.err()
}

func (f *FpdfBackend) Render(path string) error {
	f.ensurePage()
	if err := f.doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	return nil
}

// variantPaths maps gofpdf style strings to font file paths, substituting
// the regular face for any missing variant.
func variantPaths(v fonts.Variant) map[string]string {
	paths := map[string]string{
		"":   v.Regular,
		"B":  v.Bold,
		"I":  v.Italic,
		"BI": v.BoldItalic,
	}
	for styleStr, path := range paths {
		if path == "" {
			paths[styleStr] = v.Regular
		}
	}
	return paths
}

// ensurePage adds the first page lazily so margins set before any write
// take effect from the start.
func (f *FpdfBackend) ensurePage() {
	if !f.started {
		f.doc.AddPage()
		f.started = true
	}
}

func (f *FpdfBackend) advance(mm float64) {
	if mm > 0 {
		f.doc.Ln(mm)
	}
}

func (f *FpdfBackend) applyRun(run TextRun) {
	styleStr := ""
	if run.Bold {
		styleStr += "B"
	}
	if run.Italic {
		styleStr += "I"
	}
	if run.Underline {
		styleStr += "U"
	}
	if run.Strikethrough {
		styleStr += "S"
	}
	f.doc.SetFont(run.Font, styleStr, float64(run.Size))
	if run.Color != nil {
		f.doc.SetTextColor(int(run.Color.R), int(run.Color.G), int(run.Color.B))
	} else {
		f.doc.SetTextColor(0, 0, 0)
	}
}

// text translates run text for core fonts; UTF-8 registered families take
// the string as-is.
func (f *FpdfBackend) text(run TextRun) string {
	if f.utf8[run.Font] {
		return run.Text
	}
	return f.translate(run.Text)
}

// paragraphLineHeight derives the line height from the largest run.
func (f *FpdfBackend) paragraphLineHeight(runs []TextRun) float64 {
	var max uint8
	for _, run := range runs {
		if run.Size > max {
			max = run.Size
		}
	}
	if max == 0 {
		max = 11
	}
	return lineHeightMM(max)
}

func (f *FpdfBackend) err() error {
	if f.doc.Err() {
		return fmt.Errorf("%w: %v", ErrRender, f.doc.Error())
	}
	return nil
}

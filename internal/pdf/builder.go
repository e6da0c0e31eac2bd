package pdf

import (
	"fmt"

	"github.com/mdpress/mdpress/internal/document"
	"github.com/mdpress/mdpress/internal/fonts"
	"github.com/mdpress/mdpress/internal/markdown"
	"github.com/mdpress/mdpress/internal/style"
)

// ptToMM converts a font size in points to millimeters.
const ptToMM = 0.3528

// lineSpread is the leading applied on top of the font size.
const lineSpread = 1.4

// lineHeightMM is the line height for a font size, in millimeters.
func lineHeightMM(size uint8) float64 {
	return float64(size) * ptToMM * lineSpread
}

// Builder converts blocks into backend calls using a resolved style sheet.
// The sheet is read-only for the builder's lifetime.
type Builder struct {
	backend Backend
	styles  style.Sheet
}

// NewBuilder creates a Builder writing to backend with the given styles.
func NewBuilder(backend Backend, styles style.Sheet) *Builder {
	return &Builder{backend: backend, styles: styles}
}

// Build emits every block in order. The first backend failure aborts the
// whole build.
func (b *Builder) Build(blocks []document.Block) error {
	b.backend.SetMargins(b.styles.Margins)
	for _, blk := range blocks {
		if err := b.build(blk); err != nil {
			return fmt.Errorf("rendering block: %w", err)
		}
	}
	return nil
}

func (b *Builder) build(blk document.Block) error {
	switch blk := blk.(type) {
	case *document.Heading:
		return b.backend.WriteParagraph(b.paragraph(blk.Children, b.headingStyle(blk.Level)))

	case *document.Paragraph:
		return b.backend.WriteParagraph(b.paragraph(blk.Children, b.styles.Text))

	case *document.List:
		desc := b.styles.ListItem
		return b.backend.WriteList(
			b.listEntries(blk.Items, 0),
			b.spacing(desc.BeforeSpacing, desc.Size),
			b.spacing(desc.AfterSpacing, desc.Size),
		)

	case *document.BlockQuote:
		return b.backend.WriteParagraph(b.paragraph(blk.Children, b.styles.BlockQuote))

	case *document.CodeBlock:
		desc := b.styles.Code
		return b.backend.WriteParagraph(Paragraph{
			Runs:          highlightRuns(blk.Language, blk.Content, b.baseRun(desc)),
			Alignment:     alignmentOf(desc),
			SpacingBefore: b.spacing(desc.BeforeSpacing, desc.Size),
			SpacingAfter:  b.spacing(desc.AfterSpacing, desc.Size),
		})

	case *document.HorizontalRule:
		desc := b.styles.HorizontalRule
		return b.backend.WriteRule(
			b.spacing(desc.BeforeSpacing, desc.Size),
			b.spacing(desc.AfterSpacing, desc.Size),
			desc.TextColor,
		)

	case *document.EmptyLine:
		return b.backend.WriteSpacer(lineHeightMM(b.styles.Text.Size))
	}
	return nil
}

// headingStyle maps a heading level to its descriptor. Levels beyond 3
// fall back to the base text style.
func (b *Builder) headingStyle(level int) style.Descriptor {
	switch level {
	case 1:
		return b.styles.Heading1
	case 2:
		return b.styles.Heading2
	case 3:
		return b.styles.Heading3
	}
	return b.styles.Text
}

func (b *Builder) paragraph(tokens []markdown.Token, desc style.Descriptor) Paragraph {
	return Paragraph{
		Runs:          b.runs(tokens, b.baseRun(desc)),
		Alignment:     alignmentOf(desc),
		SpacingBefore: b.spacing(desc.BeforeSpacing, desc.Size),
		SpacingAfter:  b.spacing(desc.AfterSpacing, desc.Size),
	}
}

// runs flattens a token tree into styled runs. Styles compose: nested
// tokens add to the inherited run rather than replacing it.
func (b *Builder) runs(tokens []markdown.Token, inherited TextRun) []TextRun {
	var out []TextRun
	for _, tok := range tokens {
		switch tok := tok.(type) {
		case *markdown.Text:
			run := inherited
			run.Text = tok.Content
			out = append(out, run)

		case *markdown.Emphasis:
			nested := inherited
			switch tok.Level {
			case 1:
				nested.Italic = true
			case 2:
				nested.Bold = true
			default:
				nested.Bold = true
				nested.Italic = true
			}
			out = append(out, b.runs(tok.Children, nested)...)

		case *markdown.StrongEmphasis:
			nested := inherited
			nested.Bold = true
			out = append(out, b.runs(tok.Children, nested)...)

		case *markdown.Link:
			run := inherited
			run.Text = tok.Text
			run.URL = tok.URL
			if c := b.styles.Link.TextColor; c != nil {
				run.Color = c
			}
			run.Underline = run.Underline || b.styles.Link.Underline
			out = append(out, run)

		case *markdown.Code:
			run := inherited
			run.Text = tok.Content
			run.Font = fonts.Resolve(b.styles.Code.FontFamily)
			if c := b.styles.Code.TextColor; c != nil {
				run.Color = c
			}
			out = append(out, run)

		case *markdown.Newline:
			// Soft break: line flow is the backend's concern.

		default:
			// Images and comments have no inline rendering.
		}
	}
	return out
}

// listEntries flattens items depth-first. Each item's inline content
// becomes one entry; nested items follow it at the next depth.
func (b *Builder) listEntries(items []*markdown.ListItem, depth int) []ListEntry {
	base := b.baseRun(b.styles.ListItem)
	var entries []ListEntry
	for _, item := range items {
		var inline []markdown.Token
		var nested []*markdown.ListItem
		for _, child := range item.Children {
			if li, ok := child.(*markdown.ListItem); ok {
				nested = append(nested, li)
				continue
			}
			inline = append(inline, child)
		}
		entries = append(entries, ListEntry{
			Runs:    b.runs(inline, base),
			Depth:   depth,
			Ordered: item.Ordered,
			Number:  item.Number,
		})
		entries = append(entries, b.listEntries(nested, depth+1)...)
	}
	return entries
}

func (b *Builder) baseRun(desc style.Descriptor) TextRun {
	return TextRun{
		Font:          fonts.Resolve(desc.FontFamily),
		Size:          desc.Size,
		Color:         desc.TextColor,
		Bold:          desc.Bold,
		Italic:        desc.Italic,
		Underline:     desc.Underline,
		Strikethrough: desc.Strikethrough,
	}
}

func (b *Builder) spacing(lines float64, size uint8) float64 {
	return lines * lineHeightMM(size)
}

func alignmentOf(desc style.Descriptor) style.Alignment {
	if desc.Alignment == nil {
		return style.AlignLeft
	}
	return *desc.Alignment
}

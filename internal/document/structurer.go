package document

import (
	"strings"

	"github.com/mdpress/mdpress/internal/markdown"
)

// Structure groups a flat token sequence into blocks. It keeps one
// accumulator of pending inline tokens and a newline counter:
//
//   - inline tokens (text, emphasis, links, single-line code) append to the
//     accumulator and reset the counter
//   - a single newline becomes a soft break inside the pending paragraph;
//     two in a row flush the paragraph and mark an empty line
//   - block-level tokens flush the pending paragraph first, then emit
//     their own block
//
// Grouping cannot fail; all structural errors surface during tokenizing.
func Structure(tokens []markdown.Token) []Block {
	g := grouper{}
	for i := 0; i < len(tokens); {
		switch tok := tokens[i].(type) {
		case *markdown.Heading:
			g.flush()
			g.emit(&Heading{Children: tok.Children, Level: tok.Level})
			i++

		case *markdown.ListItem:
			g.flush()
			items := []*markdown.ListItem{tok}
			i++
			for i < len(tokens) {
				if next, ok := tokens[i].(*markdown.ListItem); ok {
					items = append(items, next)
					i++
					continue
				}
				// A single newline between markers separates sibling
				// items, not blocks; a blank line ends the list.
				if _, ok := tokens[i].(*markdown.Newline); ok && i+1 < len(tokens) {
					if next, ok := tokens[i+1].(*markdown.ListItem); ok {
						items = append(items, next)
						i += 2
						continue
					}
				}
				break
			}
			g.emit(&List{Items: items})

		case *markdown.BlockQuote:
			g.flush()
			g.emit(&BlockQuote{Children: []markdown.Token{&markdown.Text{Content: tok.Text}}})
			i++

		case *markdown.Code:
			if strings.Contains(tok.Content, "\n") || tok.Language != "" {
				g.flush()
				g.emit(&CodeBlock{Language: tok.Language, Content: tok.Content})
			} else {
				g.inline(tok)
			}
			i++

		case *markdown.HorizontalRule:
			g.flush()
			g.emit(&HorizontalRule{})
			i++

		case *markdown.Newline:
			g.newline()
			i++

		case *markdown.Text, *markdown.Emphasis, *markdown.StrongEmphasis, *markdown.Link:
			g.inline(tokens[i])
			i++

		default:
			// Images, comments, and unknown literals have no block-level
			// representation; they reset the newline counter like the
			// original inline tokens do.
			g.newlines = 0
			i++
		}
	}
	g.flush()
	return g.blocks
}

type grouper struct {
	blocks   []Block
	pending  []markdown.Token
	newlines int
}

// inline appends an inline token, materializing a pending soft break first.
func (g *grouper) inline(tok markdown.Token) {
	if g.newlines == 1 && len(g.pending) > 0 {
		g.pending = append(g.pending, &markdown.Newline{})
	}
	g.newlines = 0
	g.pending = append(g.pending, tok)
}

// newline counts a line break. The second consecutive one closes the
// pending paragraph; the empty-line block is emitted only when a paragraph
// was actually flushed, so runs of blank lines collapse.
func (g *grouper) newline() {
	g.newlines++
	if g.newlines < 2 {
		return
	}
	if len(g.pending) > 0 {
		g.flush()
		g.emit(&EmptyLine{})
	}
	g.newlines = 0
}

func (g *grouper) flush() {
	if len(g.pending) > 0 {
		g.blocks = append(g.blocks, &Paragraph{Children: g.pending})
		g.pending = nil
	}
	g.newlines = 0
}

func (g *grouper) emit(b Block) {
	g.blocks = append(g.blocks, b)
}

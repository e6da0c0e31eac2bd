// Package document regroups the tokenizer's flat top-level token sequence
// into block-level document units. Blocks are transient: they are built and
// consumed within a single conversion.
package document

import "github.com/mdpress/mdpress/internal/markdown"

// Block is a top-level document unit derived from grouping tokens.
type Block interface {
	block()
}

// Heading is a heading block with its inline children and level 1-6.
type Heading struct {
	Children []markdown.Token
	Level    int
}

// Paragraph is a run of inline tokens, possibly containing Newline tokens
// as soft line breaks.
type Paragraph struct {
	Children []markdown.Token
}

// List is a run of consecutive list items. Each item keeps its own
// children, including any nested ListItems, unmodified.
type List struct {
	Items []*markdown.ListItem
}

// BlockQuote is a quoted block. Children hold the quoted text.
type BlockQuote struct {
	Children []markdown.Token
}

// CodeBlock is a fenced (or otherwise multi-line) code block.
type CodeBlock struct {
	Language string
	Content  string
}

// HorizontalRule is a thematic break.
type HorizontalRule struct{}

// EmptyLine separates paragraphs produced by a blank source line.
type EmptyLine struct{}

func (*Heading) block()        {}
func (*Paragraph) block()      {}
func (*List) block()           {}
func (*BlockQuote) block()     {}
func (*CodeBlock) block()      {}
func (*HorizontalRule) block() {}
func (*EmptyLine) block()      {}

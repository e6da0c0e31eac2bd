package markdown

// Token is a single parsed unit of Markdown. Composite variants own their
// children outright; the tree has no sharing and no back-references, so a
// token sequence can be walked and discarded without bookkeeping.
type Token interface {
	token()
}

// Heading is an ATX heading with its inline content parsed to children.
// Level is 1 through 6.
type Heading struct {
	Children []Token
	Level    int
}

// Emphasis is a delimiter-run emphasis span. Level is derived from the run
// length of the opening delimiter, capped at 3:
// 1 = italic, 2 = bold, 3 = bold italic.
type Emphasis struct {
	Level    int
	Children []Token
}

// StrongEmphasis is a bold-only span. The tokenizer emits leveled Emphasis
// for delimiter runs; this variant is kept for callers that build token
// trees programmatically.
type StrongEmphasis struct {
	Children []Token
}

// Code is inline code or a fenced code block. Language is empty for inline
// code; fenced blocks carry the optional language tag from the opening line.
type Code struct {
	Language string
	Content  string
}

// BlockQuote is a quoted line. The quoted text is not inline-parsed.
type BlockQuote struct {
	Text string
}

// ListItem is one list entry. Number is meaningful only when Ordered is
// true. Children may themselves contain nested ListItems, produced by the
// tokenizer's indentation comparison.
type ListItem struct {
	Children []Token
	Ordered  bool
	Number   int
}

// Link is an inline link. URL may be empty when the source carried no
// (url) part.
type Link struct {
	Text string
	URL  string
}

// Image is an inline image reference.
type Image struct {
	Alt string
	URL string
}

// Text is a run of plain characters.
type Text struct {
	Content string
}

// HtmlComment is the body of a <!-- --> comment, markers stripped.
type HtmlComment struct {
	Content string
}

// Newline is a single line break in the source.
type Newline struct{}

// HorizontalRule is a thematic break (three or more hyphens).
type HorizontalRule struct{}

// Unknown is an unclassified literal. The tokenizer never produces it; it
// exists so downstream consumers have a catch-all variant to switch on.
type Unknown struct {
	Literal string
}

func (*Heading) token()        {}
func (*Emphasis) token()       {}
func (*StrongEmphasis) token() {}
func (*Code) token()           {}
func (*BlockQuote) token()     {}
func (*ListItem) token()       {}
func (*Link) token()           {}
func (*Image) token()          {}
func (*Text) token()           {}
func (*HtmlComment) token()    {}
func (*Newline) token()        {}
func (*HorizontalRule) token() {}
func (*Unknown) token()        {}

// Package markdown implements a recursive-descent tokenizer for a Markdown
// dialect. The tokenizer turns a source string into an ordered tree of
// Token values; it performs no block grouping and no rendering. Parsing is
// fail-fast: any error aborts the whole parse with a ParseError and no
// partial token stream.
package markdown

import (
	"strconv"
	"strings"
)

// tabWidth is the column width a tab expands to when comparing line
// indentation for list nesting.
const tabWidth = 4

// Lexer walks the input as a random-accessible rune sequence with a
// forward-moving cursor. Lookahead is bounded: horizontal rules, ordered
// list markers, and delimiter runs are tested by peeking, never by
// backtracking over consumed tokens.
type Lexer struct {
	input []rune
	pos   int

	// keepSpace marks that the previous token ended at a closing
	// delimiter, so a single space that follows belongs to the next text
	// run instead of being skipped. Stripping it would merge words.
	keepSpace    bool
	pendingSpace bool
}

// New creates a Lexer over source. Line endings are normalized to \n.
func New(source string) *Lexer {
	source = strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(source)
	return &Lexer{input: []rune(source)}
}

// Tokenize parses source into a token sequence.
func Tokenize(source string) ([]Token, error) {
	return New(source).Tokenize()
}

// Tokenize consumes the whole input and returns the top-level tokens.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// next returns the next token, or nil at end of input.
func (l *Lexer) next() (Token, error) {
	keep := l.keepSpace
	l.keepSpace = false
	l.pendingSpace = keep && !l.eof() && l.cur() == ' '
	l.skipSpaces()

	if l.eof() {
		return nil, nil
	}

	ch := l.cur()
	lineStart := l.atLineStart()

	// A preserved boundary space normally rides into the next text run,
	// but when another delimited token follows directly it must surface
	// on its own or adjacent spans would join.
	if l.pendingSpace && (ch == '\n' || l.specialAhead()) {
		l.pendingSpace = false
		return &Text{Content: " "}, nil
	}

	switch {
	case ch == '#' && lineStart:
		return l.heading()
	case ch == '*' || ch == '_':
		return l.emphasis()
	case ch == '`':
		return l.code()
	case ch == '>' && lineStart:
		return l.blockQuote()
	case (ch == '-' || ch == '+') && lineStart:
		return l.listItemOrRule()
	case isDigit(ch) && lineStart && l.orderedMarkerAhead():
		return l.orderedListItem()
	case ch == '[':
		return l.link()
	case ch == '!' && l.peek() == '[':
		return l.image()
	case ch == '<' && l.hasPrefix("<!--"):
		return l.htmlComment()
	case ch == '\n':
		l.advance()
		return &Newline{}, nil
	default:
		return l.text()
	}
}

// nested parses tokens until isDelim reports the current rune closes the
// enclosing construct, or the input ends. The caller is responsible for
// consuming the delimiter itself and for failing if it is required.
func (l *Lexer) nested(isDelim func(rune) bool) ([]Token, error) {
	var children []Token
	for !l.eof() && !isDelim(l.cur()) {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			break
		}
		children = append(children, tok)
	}
	return children, nil
}

func (l *Lexer) heading() (Token, error) {
	level := 0
	for !l.eof() && l.cur() == '#' {
		level++
		l.advance()
	}
	if level > 6 {
		level = 6
	}
	l.skipSpaces()
	children, err := l.nested(func(r rune) bool { return r == '\n' })
	if err != nil {
		return nil, err
	}
	return &Heading{Children: children, Level: level}, nil
}

func (l *Lexer) emphasis() (Token, error) {
	start := l.pos
	delim := l.cur()
	run := 0
	for !l.eof() && l.cur() == delim {
		run++
		l.advance()
	}

	children, err := l.nested(func(r rune) bool { return r == delim })
	if err != nil {
		return nil, err
	}

	// The closing run must match the opening run exactly.
	for i := 0; i < run; i++ {
		if l.eof() || l.cur() != delim {
			return nil, &ParseError{Kind: ErrUnmatchedDelimiter, Pos: start}
		}
		l.advance()
	}

	level := run
	if level > 3 {
		level = 3
	}
	l.keepSpace = true
	return &Emphasis{Level: level, Children: children}, nil
}

func (l *Lexer) code() (Token, error) {
	start := l.pos
	run := 0
	for !l.eof() && l.cur() == '`' {
		run++
		l.advance()
	}

	if run == 1 {
		content, ok := l.readUntilRune('`')
		if !ok {
			return nil, &ParseError{Kind: ErrUnmatchedDelimiter, Pos: start}
		}
		l.advance() // closing backtick
		l.keepSpace = true
		return &Code{Content: content}, nil
	}

	// Fenced block: the rest of the opening line is an optional language
	// tag, then everything up to a backtick run of the same length.
	lang := strings.TrimSpace(l.readLine())
	if !l.eof() {
		l.advance() // newline after the opening fence
	}
	content, ok := l.fencedClose(run)
	if !ok {
		return nil, &ParseError{Kind: ErrUnmatchedDelimiter, Pos: start}
	}
	return &Code{Language: lang, Content: strings.Trim(content, "\n")}, nil
}

// fencedClose scans forward for a backtick run of exactly runLen and
// returns the content before it. Runs of a different length are part of
// the content.
func (l *Lexer) fencedClose(runLen int) (string, bool) {
	start := l.pos
	i := l.pos
	for i < len(l.input) {
		if l.input[i] != '`' {
			i++
			continue
		}
		j := i
		for j < len(l.input) && l.input[j] == '`' {
			j++
		}
		if j-i == runLen {
			l.pos = j
			return string(l.input[start:i]), true
		}
		i = j
	}
	return "", false
}

func (l *Lexer) blockQuote() (Token, error) {
	l.advance() // '>'
	l.skipSpaces()
	return &BlockQuote{Text: l.readLine()}, nil
}

func (l *Lexer) listItemOrRule() (Token, error) {
	if l.cur() == '-' && l.peek() == '-' && l.peekAt(2) == '-' {
		for !l.eof() && l.cur() == '-' {
			l.advance()
		}
		return &HorizontalRule{}, nil
	}

	indent := l.lineIndent()
	l.advance() // marker
	l.skipSpaces()
	return l.listItem(indent, false, 0)
}

func (l *Lexer) orderedListItem() (Token, error) {
	indent := l.lineIndent()
	digits := ""
	for !l.eof() && isDigit(l.cur()) {
		digits += string(l.cur())
		l.advance()
	}
	number, _ := strconv.Atoi(digits)
	l.advance() // '.'
	l.skipSpaces()
	return l.listItem(indent, true, number)
}

// listItem parses the item's own line, then consumes nested items from
// following lines. Indentation (tabs count as 4 columns) is the sole
// nesting mechanism: a deeper-indented list marker becomes a child;
// anything else ends the item with the newline left in place, so every
// enclosing level gets to re-test the marker's indentation against its
// own. A partial dedent therefore attaches to the nearest enclosing item
// whose indentation it still exceeds.
func (l *Lexer) listItem(indent int, ordered bool, number int) (Token, error) {
	children, err := l.nested(func(r rune) bool { return r == '\n' })
	if err != nil {
		return nil, err
	}

	for {
		if l.eof() || l.cur() != '\n' {
			break
		}
		save := l.pos
		l.advance() // newline
		childIndent, ok := l.peekListMarker()
		if !ok || childIndent <= indent {
			l.pos = save
			break
		}
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		children = append(children, tok)
	}

	return &ListItem{Children: children, Ordered: ordered, Number: number}, nil
}

// peekListMarker reports whether the line starting at the cursor begins
// with a list marker, and that line's indentation in columns. A run of
// three or more hyphens is a horizontal rule, not a marker. The cursor
// does not move.
func (l *Lexer) peekListMarker() (int, bool) {
	cols := 0
	i := l.pos
	for i < len(l.input) {
		switch l.input[i] {
		case ' ':
			cols++
		case '\t':
			cols += tabWidth
		default:
			goto scan
		}
		i++
	}
scan:
	if i >= len(l.input) {
		return 0, false
	}
	switch ch := l.input[i]; {
	case ch == '-':
		if i+2 < len(l.input) && l.input[i+1] == '-' && l.input[i+2] == '-' {
			return 0, false
		}
		return cols, true
	case ch == '+':
		return cols, true
	case isDigit(ch):
		for i < len(l.input) && isDigit(l.input[i]) {
			i++
		}
		return cols, i < len(l.input) && l.input[i] == '.'
	}
	return 0, false
}

func (l *Lexer) link() (Token, error) {
	start := l.pos
	l.advance() // '['
	text, ok := l.readUntilRune(']')
	if !ok {
		return nil, &ParseError{Kind: ErrMalformedLinkOrImage, Pos: start}
	}
	l.advance() // ']'

	if l.eof() || l.cur() != '(' {
		// Bare [text] keeps an empty URL.
		l.keepSpace = true
		return &Link{Text: text}, nil
	}
	l.advance() // '('
	url, ok := l.readUntilRune(')')
	if !ok {
		return nil, &ParseError{Kind: ErrMalformedLinkOrImage, Pos: start}
	}
	l.advance() // ')'
	l.keepSpace = true
	return &Link{Text: text, URL: url}, nil
}

func (l *Lexer) image() (Token, error) {
	start := l.pos
	l.advance() // '!'
	l.advance() // '['
	alt, ok := l.readUntilRune(']')
	if !ok {
		return nil, &ParseError{Kind: ErrMalformedLinkOrImage, Pos: start}
	}
	l.advance() // ']'

	if l.eof() || l.cur() != '(' {
		return nil, &ParseError{Kind: ErrMalformedLinkOrImage, Pos: start}
	}
	l.advance() // '('
	url, ok := l.readUntilRune(')')
	if !ok {
		return nil, &ParseError{Kind: ErrMalformedLinkOrImage, Pos: start}
	}
	l.advance() // ')'
	l.keepSpace = true
	return &Image{Alt: alt, URL: url}, nil
}

func (l *Lexer) htmlComment() (Token, error) {
	start := l.pos
	l.pos += 4 // "<!--"
	contentStart := l.pos
	for l.pos+2 < len(l.input) {
		if l.input[l.pos] == '-' && l.input[l.pos+1] == '-' && l.input[l.pos+2] == '>' {
			content := string(l.input[contentStart:l.pos])
			l.pos += 3 // "-->"
			return &HtmlComment{Content: content}, nil
		}
		l.advance()
	}
	return nil, &ParseError{Kind: ErrUnterminatedComment, Pos: start}
}

func (l *Lexer) text() (Token, error) {
	start := l.pos
	var b strings.Builder
	if l.pendingSpace {
		b.WriteRune(' ')
		l.pendingSpace = false
	}
	for !l.eof() {
		ch := l.cur()
		if ch == '\n' || l.specialAhead() {
			break
		}
		b.WriteRune(ch)
		l.advance()
	}
	if b.Len() == 0 {
		return nil, &ParseError{Kind: ErrEmptyTextRun, Pos: start}
	}
	return &Text{Content: b.String()}, nil
}

// specialAhead reports whether the cursor sits at the start of a form that
// dispatches mid-line. Line-start-only forms (headings, blockquotes, list
// markers, rules) do not break a running text span.
func (l *Lexer) specialAhead() bool {
	switch l.cur() {
	case '*', '_', '`', '[':
		return true
	case '!':
		return l.peek() == '['
	case '<':
		return l.hasPrefix("<!--")
	}
	return false
}

func (l *Lexer) eof() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) cur() rune {
	return l.input[l.pos]
}

func (l *Lexer) peek() rune {
	return l.peekAt(1)
}

func (l *Lexer) peekAt(n int) rune {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() {
	l.pos++
}

func (l *Lexer) hasPrefix(s string) bool {
	for i, r := range s {
		if l.peekAt(i) != r {
			return false
		}
	}
	return true
}

// skipSpaces moves past spaces and tabs, never newlines.
func (l *Lexer) skipSpaces() {
	for !l.eof() && (l.cur() == ' ' || l.cur() == '\t') {
		l.advance()
	}
}

// atLineStart reports whether only indentation precedes the cursor on the
// current line.
func (l *Lexer) atLineStart() bool {
	for i := l.pos - 1; i >= 0; i-- {
		switch l.input[i] {
		case ' ', '\t':
		case '\n':
			return true
		default:
			return false
		}
	}
	return true
}

// lineIndent returns the indentation of the current line in columns, with
// tabs expanded to tabWidth.
func (l *Lexer) lineIndent() int {
	start := l.pos
	for start > 0 && l.input[start-1] != '\n' {
		start--
	}
	cols := 0
	for i := start; i < len(l.input); i++ {
		switch l.input[i] {
		case ' ':
			cols++
		case '\t':
			cols += tabWidth
		default:
			return cols
		}
	}
	return cols
}

// readLine consumes up to, but not including, the next newline.
func (l *Lexer) readLine() string {
	start := l.pos
	for !l.eof() && l.cur() != '\n' {
		l.advance()
	}
	return string(l.input[start:l.pos])
}

// readUntilRune consumes up to, but not including, delim. It reports
// failure if the input ends first, leaving the cursor at end of input.
func (l *Lexer) readUntilRune(delim rune) (string, bool) {
	start := l.pos
	for !l.eof() {
		if l.cur() == delim {
			return string(l.input[start:l.pos]), true
		}
		l.advance()
	}
	return "", false
}

// orderedMarkerAhead reports whether the cursor sits at a digit run
// followed by a period.
func (l *Lexer) orderedMarkerAhead() bool {
	i := 0
	for isDigit(l.peekAt(i)) {
		i++
	}
	return i > 0 && l.peekAt(i) == '.'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

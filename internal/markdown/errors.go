package markdown

import "fmt"

// ErrorKind classifies tokenizer failures.
type ErrorKind int

const (
	// ErrUnmatchedDelimiter means an emphasis run, inline code span, or
	// code fence was opened and never closed with a matching run.
	ErrUnmatchedDelimiter ErrorKind = iota

	// ErrMalformedLinkOrImage means a link or image was missing its
	// closing bracket or parenthesis.
	ErrMalformedLinkOrImage

	// ErrUnterminatedComment means an HTML comment was opened with <!--
	// and the input ended before the matching -->.
	ErrUnterminatedComment

	// ErrEmptyTextRun means the text scanner made no progress. This
	// guards against infinite loops and indicates a dispatch bug rather
	// than bad input.
	ErrEmptyTextRun

	// ErrUnexpectedEndOfInput means a construct required more input than
	// was available.
	ErrUnexpectedEndOfInput
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnmatchedDelimiter:
		return "unmatched delimiter"
	case ErrMalformedLinkOrImage:
		return "malformed link or image"
	case ErrUnterminatedComment:
		return "unterminated HTML comment"
	case ErrEmptyTextRun:
		return "empty text run"
	case ErrUnexpectedEndOfInput:
		return "unexpected end of input"
	}
	return "unknown error"
}

// ParseError is a terminal tokenizer failure. Pos is the rune offset of the
// construct that failed, counted from the start of the input. The whole
// parse is fail-fast: no tokens are returned alongside a ParseError.
type ParseError struct {
	Kind ErrorKind
	Pos  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("markdown: %s at position %d", e.Kind, e.Pos)
}

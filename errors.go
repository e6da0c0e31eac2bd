package mdpress

import "errors"

// Sentinel errors for library operations. Tokenizer failures carry their
// own type (markdown.ParseError) and are wrapped rather than duplicated
// here; callers unwrap with errors.As.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrNoOutputPath  = errors.New("output path cannot be empty")
)

package pdf

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/mdpress/mdpress/internal/style"
)

// highlightStyle is the chroma style used for fenced code blocks.
const highlightStyle = "github"

// highlightRuns tokenizes source with the lexer for language and colors
// each chroma token on top of the base run. Unknown languages use the
// fallback lexer; a tokenizing failure degrades to a single unhighlighted
// run, never an error, since highlighting is cosmetic.
func highlightRuns(language, source string, base TextRun) []TextRun {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		plain := base
		plain.Text = source
		return []TextRun{plain}
	}

	highlight := styles.Get(highlightStyle)
	var runs []TextRun
	for _, tok := range iterator.Tokens() {
		entry := highlight.Get(tok.Type)
		run := base
		run.Text = tok.Value
		if entry.Colour.IsSet() {
			run.Color = &style.RGB{
				R: entry.Colour.Red(),
				G: entry.Colour.Green(),
				B: entry.Colour.Blue(),
			}
		}
		if entry.Bold == chroma.Yes {
			run.Bold = true
		}
		if entry.Italic == chroma.Yes {
			run.Italic = true
		}
		runs = append(runs, run)
	}
	if len(runs) == 0 {
		plain := base
		plain.Text = source
		runs = []TextRun{plain}
	}
	return runs
}

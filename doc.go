// Package mdpress converts Markdown documents into styled, paginated PDFs.
//
// # Quick Start
//
// Create a service and convert:
//
//	svc := mdpress.New()
//	err := svc.Convert(ctx, mdpress.Input{
//	    Markdown:   "# Hello\n\nWorld",
//	    OutputPath: "output.pdf",
//	})
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Tokenizing: a recursive-descent tokenizer turns the source into a
//     nested token tree (internal/markdown). Nesting follows Markdown's
//     context: indentation for lists, delimiter-run length for emphasis,
//     fence length for code blocks.
//  2. Block structuring: the flat top-level token sequence is regrouped
//     into block-level units such as paragraphs, headings, and lists
//     (internal/document).
//  3. Style resolution: user overrides merge field-by-field into the
//     built-in style table (internal/style).
//  4. Building and rendering: blocks become styled text runs emitted
//     against a rendering backend; the default backend writes the PDF
//     through gofpdf (internal/pdf). Fenced code blocks are syntax
//     highlighted with chroma.
//
// # Styling
//
// Styles can be customized through an override file in TOML or YAML,
// keyed by element name:
//
//	[heading.1]
//	size = 20
//	textcolor = { r = 30, g = 30, b = 30 }
//	bold = true
//
//	[link]
//	textcolor = { r = 0, g = 102, b = 204 }
//	underline = true
//
// Unrecognized keys and wrong-typed values are ignored; the built-in
// defaults fill every gap. Pass the file via Input.StylePath, or supply a
// decoded map via Input.Overrides.
//
// # Failure Model
//
// Parsing is fail-fast: any tokenizer error aborts the conversion before
// block structuring, carrying the failing position. Rendering errors abort
// after the document model is built. There is no partial output.
package mdpress

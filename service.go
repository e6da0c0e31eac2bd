package mdpress

import (
	"context"
	"fmt"

	"github.com/mdpress/mdpress/internal/document"
	"github.com/mdpress/mdpress/internal/markdown"
	"github.com/mdpress/mdpress/internal/pdf"
	"github.com/mdpress/mdpress/internal/style"
)

// Service orchestrates the markdown-to-PDF pipeline: tokenize, group into
// blocks, resolve styles, build, render. One Convert call processes one
// document start to finish; nothing is shared between calls.
type Service struct {
	cfg serviceConfig
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			defaults: style.Default(),
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cfg.newBackend == nil {
		s.cfg.newBackend = func() pdf.Backend { return pdf.NewFpdfBackend() }
	}
	return s
}

// Convert runs the full pipeline and writes the PDF to input.OutputPath.
// The context is checked between stages; the stages themselves are
// synchronous and run to completion or fail.
func (s *Service) Convert(ctx context.Context, input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if input.OutputPath == "" {
		return ErrNoOutputPath
	}

	tokens, err := markdown.Tokenize(input.Markdown)
	if err != nil {
		return fmt.Errorf("tokenizing markdown: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	blocks := document.Structure(tokens)

	overrides := input.Overrides
	if overrides == nil && input.StylePath != "" {
		overrides, err = style.Load(input.StylePath)
		if err != nil {
			return fmt.Errorf("loading style overrides: %w", err)
		}
	}
	sheet := style.Resolve(s.cfg.defaults, overrides)
	if ctx.Err() != nil {
		return ctx.Err()
	}

	backend := s.cfg.newBackend()
	builder := pdf.NewBuilder(backend, sheet)
	if err := builder.Build(blocks); err != nil {
		return fmt.Errorf("building document: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := backend.Render(input.OutputPath); err != nil {
		return fmt.Errorf("rendering document: %w", err)
	}
	return nil
}

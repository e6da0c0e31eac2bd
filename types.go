package mdpress

import (
	"github.com/mdpress/mdpress/internal/pdf"
	"github.com/mdpress/mdpress/internal/style"
)

// Input contains conversion parameters.
type Input struct {
	Markdown   string         // Markdown content (required)
	OutputPath string         // Target path for the rendered PDF (required)
	StylePath  string         // Style override file (optional)
	Overrides  map[string]any // Decoded overrides; takes precedence over StylePath
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	defaults   style.Sheet
	newBackend func() pdf.Backend
}

// WithDefaultStyles replaces the built-in default style table. Overrides
// still merge on top of it.
func WithDefaultStyles(s style.Sheet) Option {
	return func(svc *Service) {
		svc.cfg.defaults = s
	}
}

// WithBackendFactory replaces the rendering backend constructor. Tests use
// this to inject a recording fake.
func WithBackendFactory(factory func() pdf.Backend) Option {
	if factory == nil {
		panic("mdpress: WithBackendFactory requires a non-nil factory")
	}
	return func(svc *Service) {
		svc.cfg.newBackend = factory
	}
}

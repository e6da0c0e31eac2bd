package mdpress

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mdpress/mdpress/internal/fonts"
	"github.com/mdpress/mdpress/internal/markdown"
	"github.com/mdpress/mdpress/internal/pdf"
	"github.com/mdpress/mdpress/internal/style"
)

// recordingBackend captures builder output for assertions.
type recordingBackend struct {
	margins    style.Margins
	paragraphs []pdf.Paragraph
	lists      [][]pdf.ListEntry
	spacers    int
	rendered   string

	renderErr error
}

func (r *recordingBackend) SetMargins(m style.Margins) { r.margins = m }

func (r *recordingBackend) RegisterFontFamily(string, fonts.Variant) error { return nil }

func (r *recordingBackend) WriteParagraph(p pdf.Paragraph) error {
	r.paragraphs = append(r.paragraphs, p)
	return nil
}

func (r *recordingBackend) WriteList(entries []pdf.ListEntry, _, _ float64) error {
	r.lists = append(r.lists, entries)
	return nil
}

func (r *recordingBackend) WriteRule(_, _ float64, _ *style.RGB) error { return nil }

func (r *recordingBackend) WriteSpacer(float64) error {
	r.spacers++
	return nil
}

func (r *recordingBackend) Render(path string) error {
	if r.renderErr != nil {
		return r.renderErr
	}
	r.rendered = path
	return nil
}

func newRecordedService(backend *recordingBackend, opts ...Option) *Service {
	opts = append(opts, WithBackendFactory(func() pdf.Backend { return backend }))
	return New(opts...)
}

func TestConvertValidatesInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input Input
		want  error
	}{
		{
			name:  "empty markdown",
			input: Input{OutputPath: "out.pdf"},
			want:  ErrEmptyMarkdown,
		},
		{
			name:  "empty output path",
			input: Input{Markdown: "# Hi"},
			want:  ErrNoOutputPath,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newRecordedService(&recordingBackend{})
			err := svc.Convert(context.Background(), tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("Convert error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestConvertEndToEnd(t *testing.T) {
	t.Parallel()

	backend := &recordingBackend{}
	svc := newRecordedService(backend)

	err := svc.Convert(context.Background(), Input{
		Markdown:   "# Title\n\nSome *text*.",
		OutputPath: "out.pdf",
	})
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}

	if backend.rendered != "out.pdf" {
		t.Errorf("rendered path = %q, want out.pdf", backend.rendered)
	}
	if len(backend.paragraphs) != 2 {
		t.Fatalf("got %d paragraphs, want heading and body", len(backend.paragraphs))
	}

	heading := backend.paragraphs[0].Runs
	if len(heading) != 1 || heading[0].Text != "Title" || !heading[0].Bold {
		t.Errorf("heading runs = %+v, want one bold Title run", heading)
	}

	body := backend.paragraphs[1].Runs
	if len(body) != 3 {
		t.Fatalf("body has %d runs, want 3: %+v", len(body), body)
	}
	if body[0].Text != "Some " || body[1].Text != "text" || body[2].Text != "." {
		t.Errorf("body texts = %q %q %q", body[0].Text, body[1].Text, body[2].Text)
	}
	if !body[1].Italic {
		t.Error("emphasized run not italic")
	}
	if body[0].Italic || body[2].Italic {
		t.Error("plain runs picked up emphasis")
	}
}

func TestConvertPropagatesParseErrors(t *testing.T) {
	t.Parallel()

	svc := newRecordedService(&recordingBackend{})
	err := svc.Convert(context.Background(), Input{
		Markdown:   "*never closed",
		OutputPath: "out.pdf",
	})

	var perr *markdown.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Convert error = %v, want wrapped *markdown.ParseError", err)
	}
	if perr.Kind != markdown.ErrUnmatchedDelimiter {
		t.Errorf("Kind = %v, want %v", perr.Kind, markdown.ErrUnmatchedDelimiter)
	}
}

func TestConvertAppliesStyleOverrides(t *testing.T) {
	t.Parallel()

	backend := &recordingBackend{}
	svc := newRecordedService(backend)

	err := svc.Convert(context.Background(), Input{
		Markdown:   "# Big",
		OutputPath: "out.pdf",
		Overrides: map[string]any{
			"heading": map[string]any{
				"1": map[string]any{"size": int64(30)},
			},
			"margin": map[string]any{"top": 20.0},
		},
	})
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}

	if backend.margins.Top != 20 {
		t.Errorf("margin top = %v, want 20", backend.margins.Top)
	}
	if got := backend.paragraphs[0].Runs[0].Size; got != 30 {
		t.Errorf("heading size = %d, want 30", got)
	}
}

func TestConvertLoadsStyleFile(t *testing.T) {
	t.Parallel()

	stylePath := filepath.Join(t.TempDir(), "styles.toml")
	if err := os.WriteFile(stylePath, []byte("[text]\nsize = 14\n"), 0o600); err != nil {
		t.Fatalf("writing style file: %v", err)
	}

	backend := &recordingBackend{}
	svc := newRecordedService(backend)

	err := svc.Convert(context.Background(), Input{
		Markdown:   "plain text",
		OutputPath: "out.pdf",
		StylePath:  stylePath,
	})
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	if got := backend.paragraphs[0].Runs[0].Size; got != 14 {
		t.Errorf("text size = %d, want 14", got)
	}
}

func TestConvertMissingStyleFile(t *testing.T) {
	t.Parallel()

	svc := newRecordedService(&recordingBackend{})
	err := svc.Convert(context.Background(), Input{
		Markdown:   "plain",
		OutputPath: "out.pdf",
		StylePath:  filepath.Join(t.TempDir(), "absent.toml"),
	})
	if !errors.Is(err, style.ErrOverridesNotFound) {
		t.Errorf("Convert error = %v, want ErrOverridesNotFound", err)
	}
}

func TestConvertCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := newRecordedService(&recordingBackend{})
	err := svc.Convert(ctx, Input{Markdown: "plain", OutputPath: "out.pdf"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Convert error = %v, want context.Canceled", err)
	}
}

func TestConvertRenderFailure(t *testing.T) {
	t.Parallel()

	backend := &recordingBackend{renderErr: pdf.ErrRender}
	svc := newRecordedService(backend)

	err := svc.Convert(context.Background(), Input{Markdown: "plain", OutputPath: "out.pdf"})
	if !errors.Is(err, pdf.ErrRender) {
		t.Errorf("Convert error = %v, want ErrRender", err)
	}
	if !strings.Contains(err.Error(), "rendering document") {
		t.Errorf("error %q missing stage context", err)
	}
}

func TestConvertListDocument(t *testing.T) {
	t.Parallel()

	backend := &recordingBackend{}
	svc := newRecordedService(backend)

	err := svc.Convert(context.Background(), Input{
		Markdown:   "- one\n- two\n  - nested",
		OutputPath: "out.pdf",
	})
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	if len(backend.lists) != 1 {
		t.Fatalf("got %d lists, want 1", len(backend.lists))
	}
	entries := backend.lists[0]
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3: %+v", len(entries), entries)
	}
	if entries[2].Depth != 1 {
		t.Errorf("nested entry depth = %d, want 1", entries[2].Depth)
	}
}

package style

import (
	"reflect"
	"testing"
)

func TestResolveNilOverridesReturnsDefaults(t *testing.T) {
	t.Parallel()

	got := Resolve(Default(), nil)
	if !reflect.DeepEqual(got, Default()) {
		t.Errorf("Resolve(defaults, nil) = %#v, want defaults", got)
	}
}

func TestResolveSparseOverrideTouchesOnlyNamedFields(t *testing.T) {
	t.Parallel()

	overrides := map[string]any{
		"heading": map[string]any{
			"1": map[string]any{"size": int64(20)},
		},
	}
	got := Resolve(Default(), overrides)
	want := Default()

	if got.Heading1.Size != 20 {
		t.Errorf("Heading1.Size = %d, want 20", got.Heading1.Size)
	}
	if !got.Heading1.Bold {
		t.Error("Heading1.Bold lost its default")
	}
	if got.Heading1.TextColor != want.Heading1.TextColor {
		t.Errorf("Heading1.TextColor = %v, want %v", got.Heading1.TextColor, want.Heading1.TextColor)
	}
	if !reflect.DeepEqual(got.Heading2, want.Heading2) {
		t.Errorf("Heading2 changed: %#v", got.Heading2)
	}
	if !reflect.DeepEqual(got.Text, want.Text) {
		t.Errorf("Text changed: %#v", got.Text)
	}
}

func TestResolveIgnoresMalformedValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		overrides map[string]any
	}{
		{
			name:      "size with wrong type",
			overrides: map[string]any{"text": map[string]any{"size": "big"}},
		},
		{
			name:      "fractional size",
			overrides: map[string]any{"text": map[string]any{"size": 11.5}},
		},
		{
			name:      "zero size",
			overrides: map[string]any{"text": map[string]any{"size": int64(0)}},
		},
		{
			name:      "color component out of range",
			overrides: map[string]any{"text": map[string]any{"textcolor": map[string]any{"r": int64(300), "g": int64(0), "b": int64(0)}}},
		},
		{
			name:      "color missing component",
			overrides: map[string]any{"text": map[string]any{"textcolor": map[string]any{"r": int64(10), "g": int64(10)}}},
		},
		{
			name:      "unknown alignment name",
			overrides: map[string]any{"text": map[string]any{"alignment": "diagonal"}},
		},
		{
			name:      "bold as string",
			overrides: map[string]any{"text": map[string]any{"bold": "yes"}},
		},
		{
			name:      "unknown element table",
			overrides: map[string]any{"footnote": map[string]any{"size": int64(8)}},
		},
		{
			name:      "element table with wrong shape",
			overrides: map[string]any{"text": "compact"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Resolve(Default(), tt.overrides)
			if !reflect.DeepEqual(got, Default()) {
				t.Errorf("Resolve() = %#v, want defaults unchanged", got)
			}
		})
	}
}

func TestResolveWellTypedValues(t *testing.T) {
	t.Parallel()

	overrides := map[string]any{
		"margin": map[string]any{"top": 20.0, "left": int64(15)},
		"text": map[string]any{
			"size":          int64(12),
			"textcolor":     map[string]any{"r": int64(10), "g": int64(20), "b": int64(30)},
			"alignment":     "justify",
			"fontfamily":    "times",
			"bold":          true,
			"afterspacing":  2.5,
			"beforespacing": int64(1),
		},
		"link": map[string]any{"underline": false},
	}
	got := Resolve(Default(), overrides)

	if got.Margins.Top != 20 || got.Margins.Left != 15 {
		t.Errorf("Margins = %+v, want Top 20 Left 15", got.Margins)
	}
	if got.Margins.Right != 10 || got.Margins.Bottom != 10 {
		t.Errorf("untouched margins changed: %+v", got.Margins)
	}
	if got.Text.Size != 12 {
		t.Errorf("Text.Size = %d, want 12", got.Text.Size)
	}
	if want := (RGB{R: 10, G: 20, B: 30}); got.Text.TextColor == nil || *got.Text.TextColor != want {
		t.Errorf("Text.TextColor = %v, want %v", got.Text.TextColor, want)
	}
	if got.Text.Alignment == nil || *got.Text.Alignment != AlignJustify {
		t.Errorf("Text.Alignment = %v, want justify", got.Text.Alignment)
	}
	if got.Text.FontFamily != "times" {
		t.Errorf("Text.FontFamily = %q, want times", got.Text.FontFamily)
	}
	if !got.Text.Bold {
		t.Error("Text.Bold not applied")
	}
	if got.Text.AfterSpacing != 2.5 || got.Text.BeforeSpacing != 1 {
		t.Errorf("spacing = %v/%v, want 1/2.5", got.Text.BeforeSpacing, got.Text.AfterSpacing)
	}
	if got.Link.Underline {
		t.Error("Link.Underline override to false not applied")
	}
}

func TestResolveUint64Values(t *testing.T) {
	t.Parallel()

	// YAML decoding surfaces non-negative integers as uint64.
	overrides := map[string]any{
		"code": map[string]any{"size": uint64(9)},
	}
	got := Resolve(Default(), overrides)
	if got.Code.Size != 9 {
		t.Errorf("Code.Size = %d, want 9", got.Code.Size)
	}
}

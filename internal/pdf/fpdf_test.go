package pdf

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/mdpress/mdpress/internal/fonts"
)

func TestRegisterFontFamilyRequiresRegular(t *testing.T) {
	t.Parallel()

	backend := NewFpdfBackend()
	err := backend.RegisterFontFamily("custom", fonts.Variant{Bold: "bold.ttf"})
	if !errors.Is(err, ErrFontRegister) {
		t.Errorf("RegisterFontFamily error = %v, want ErrFontRegister", err)
	}
}

func TestRegisterFontFamilyUnreadableFile(t *testing.T) {
	t.Parallel()

	backend := NewFpdfBackend()
	err := backend.RegisterFontFamily("custom", fonts.Variant{
		Regular: filepath.Join(t.TempDir(), "absent.ttf"),
	})
	if !errors.Is(err, ErrFontRegister) {
		t.Errorf("RegisterFontFamily error = %v, want ErrFontRegister", err)
	}
}

func TestVariantPathsSubstituteRegular(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		variant fonts.Variant
		want    map[string]string
	}{
		{
			name:    "regular only fills every style",
			variant: fonts.Variant{Regular: "r.ttf"},
			want:    map[string]string{"": "r.ttf", "B": "r.ttf", "I": "r.ttf", "BI": "r.ttf"},
		},
		{
			name:    "present variants are kept",
			variant: fonts.Variant{Regular: "r.ttf", Bold: "b.ttf", Italic: "i.ttf"},
			want:    map[string]string{"": "r.ttf", "B": "b.ttf", "I": "i.ttf", "BI": "r.ttf"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := variantPaths(tt.variant)
			if len(got) != len(tt.want) {
				t.Fatalf("variantPaths() = %v, want %v", got, tt.want)
			}
			for styleStr, path := range tt.want {
				if got[styleStr] != path {
					t.Errorf("variantPaths()[%q] = %q, want %q", styleStr, got[styleStr], path)
				}
			}
		})
	}
}

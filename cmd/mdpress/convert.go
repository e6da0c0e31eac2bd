package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	mdpress "github.com/mdpress/mdpress"
	"github.com/mdpress/mdpress/internal/style"
)

// Sentinel errors for CLI operations.
var (
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
	ErrCreateOutputDir  = errors.New("failed to create output directory")
)

// dirPermissions is used when creating missing output directories.
const dirPermissions = 0o750

// run executes one conversion from parsed flags. Progress goes to stderr
// when verbose; the final output path goes to out on success.
func run(flags *cliFlags, out io.Writer) error {
	if flags.version {
		fmt.Fprintf(out, "mdpress %s\n", Version)
		return nil
	}

	source, err := readSource(flags)
	if err != nil {
		return err
	}

	overrides, err := loadOverrides(flags)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(flags.output); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrCreateOutputDir, err)
		}
	}

	ctx, stop := notifyContext()
	defer stop()

	start := time.Now()
	if flags.verbose {
		fmt.Fprintln(os.Stderr, "Starting conversion...")
	}

	svc := mdpress.New()
	err = svc.Convert(ctx, mdpress.Input{
		Markdown:   source,
		OutputPath: flags.output,
		Overrides:  overrides,
	})
	if err != nil {
		return err
	}

	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Converted in %v\n", time.Since(start).Round(time.Millisecond))
	}
	fmt.Fprintln(out, flags.output)
	return nil
}

// readSource returns the markdown content from either --path or --string.
func readSource(flags *cliFlags) (string, error) {
	if flags.text != "" {
		return flags.text, nil
	}
	ext := strings.ToLower(filepath.Ext(flags.path))
	if ext != ".md" && ext != ".markdown" {
		return "", fmt.Errorf("%w: %s", ErrInvalidExtension, flags.path)
	}
	data, err := os.ReadFile(flags.path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	return string(data), nil
}

// loadOverrides reads the style file named by --style, or falls back to the
// conventional locations when the flag is empty. Only an explicit flag makes
// a missing file an error.
func loadOverrides(flags *cliFlags) (map[string]any, error) {
	if flags.style != "" {
		return style.Load(flags.style)
	}
	return style.LoadDefault()
}

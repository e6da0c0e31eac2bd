package main

import (
	"errors"
	"os"

	mdpress "github.com/mdpress/mdpress"
	"github.com/mdpress/mdpress/internal/pdf"
	"github.com/mdpress/mdpress/internal/style"
)

// Exit codes for the mdpress CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, input, or style overrides
	ExitIO      = 3 // File not found, permission denied
	ExitRender  = 4 // PDF backend errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Rendering errors (exit 4)
	if errors.Is(err, pdf.ErrRender) || errors.Is(err, pdf.ErrFontRegister) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrCreateOutputDir) {
		return ExitIO
	}

	// Usage/input/style errors (exit 2). Markdown parse errors are
	// content problems, not usage problems, and fall through to the
	// general code with their position in the message.
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrConflictInput) ||
		errors.Is(err, ErrUnexpectedArgs) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, mdpress.ErrEmptyMarkdown) ||
		errors.Is(err, mdpress.ErrNoOutputPath) ||
		errors.Is(err, style.ErrOverridesNotFound) ||
		errors.Is(err, style.ErrOverridesTooLarge) ||
		errors.Is(err, style.ErrOverridesParse) {
		return ExitUsage
	}

	return ExitGeneral
}

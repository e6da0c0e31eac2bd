package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// defaultOutput is where the PDF lands when -o is not given.
const defaultOutput = "./output.pdf"

// Sentinel errors for flag validation.
var (
	ErrNoInput        = errors.New("no input: provide --path or --string")
	ErrConflictInput  = errors.New("--path and --string are mutually exclusive")
	ErrUnexpectedArgs = errors.New("unexpected positional arguments")
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	path    string
	text    string
	output  string
	style   string
	verbose bool
	version bool
}

// parseFlags parses argv into cliFlags. It validates that exactly one input
// source is given unless --version is requested.
func parseFlags(argv []string) (*cliFlags, error) {
	fs := flag.NewFlagSet(argv[0], flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.path, "path", "p", "", "markdown file to convert")
	fs.StringVarP(&f.text, "string", "s", "", "markdown content passed inline")
	fs.StringVarP(&f.output, "output", "o", defaultOutput, "output PDF path")
	fs.StringVar(&f.style, "style", "", "style override file (TOML or YAML)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(argv[1:]); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedArgs, fs.Args())
	}
	if f.version {
		return f, nil
	}
	if f.path == "" && f.text == "" {
		return nil, ErrNoInput
	}
	if f.path != "" && f.text != "" {
		return nil, ErrConflictInput
	}
	return f, nil
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "Usage: mdpress [flags]\n\nConvert Markdown to a styled PDF.\n\nFlags:\n%s", fs.FlagUsages())
}

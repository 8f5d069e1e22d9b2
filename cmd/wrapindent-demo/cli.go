package main

import (
	"bytes"
	"flag"
	"fmt"
	"strings"

	"github.com/iw2rmb/wrapindent/indent"
)

type cliOptions struct {
	Path string

	InitialIndent     int
	InitialIndentType indent.IndentType
	TabCorrectionPx   int

	// Zero means: take it from .editorconfig, then the editor default.
	TabWidth   int
	IndentUnit int

	LineNumbers bool
	Watch       bool
	Version     bool
}

func parseCLIArgs(args []string) (cliOptions, error) {
	opts := cliOptions{}
	fs := flag.NewFlagSet("wrapindent-demo", flag.ContinueOnError)
	var out bytes.Buffer
	fs.SetOutput(&out)

	var indentType string
	fs.IntVar(&opts.InitialIndent, "indent", 0, "Initial indent added to every wrapped line.")
	fs.StringVar(&indentType, "type", string(indent.IndentSpace), "Unit of -indent: space, tab or indentUnit.")
	fs.IntVar(&opts.TabCorrectionPx, "tab-correction", indent.DefaultTabCorrectionPx, "Pixel correction for lines indented with tabs.")
	fs.IntVar(&opts.TabWidth, "tab-width", 0, "Tab width in cells (default: .editorconfig or 4).")
	fs.IntVar(&opts.IndentUnit, "indent-unit", 0, "Indent unit in cells (default: .editorconfig or 2).")
	fs.BoolVar(&opts.LineNumbers, "n", false, "Show line numbers.")
	fs.BoolVar(&opts.Watch, "watch", true, "Reload the file when it changes on disk.")
	fs.BoolVar(&opts.Version, "version", false, "Print the version and exit.")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, fmt.Errorf("%w\n%s", err, out.String())
	}
	if fs.NArg() > 1 {
		return cliOptions{}, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	if fs.NArg() == 1 {
		opts.Path = fs.Arg(0)
	}
	if opts.InitialIndent < 0 {
		return cliOptions{}, fmt.Errorf("-indent must not be negative, got %d", opts.InitialIndent)
	}
	// Unknown types are passed through: the decorator reports them.
	opts.InitialIndentType = indent.IndentType(strings.TrimSpace(indentType))
	return opts, nil
}

func (o cliOptions) indentOptions() []indent.Option {
	return []indent.Option{
		indent.WithInitialIndent(o.InitialIndent),
		indent.WithInitialIndentType(o.InitialIndentType),
		indent.WithTabCorrection(o.TabCorrectionPx),
	}
}

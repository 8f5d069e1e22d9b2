package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/wrapindent"
	"github.com/iw2rmb/wrapindent/editor"
	"github.com/iw2rmb/wrapindent/indent"
	"github.com/iw2rmb/wrapindent/internal/settings"
)

const sampleDoc = `{
	"testing": "more testing",
	"wrapped testing": "a value long enough to soft-wrap in most terminals, so every continuation row lines up under the first character after the tab instead of starting at the left edge",
	"nested": {
		"deeper": "continuation rows of this line hang two tab stops in, below the opening quote of the value, however narrow the window gets"
	}
}`

func main() {
	if err := run(os.Args[1:]); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseCLIArgs(args)
	if err != nil {
		return err
	}
	if opts.Version {
		fmt.Println(wrapindent.VersionTag())
		return nil
	}

	if os.Getenv("WRAPINDENT_DEBUG") != "" {
		f, err := tea.LogToFile("wrapindent-debug.log", "wrapindent")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		// The program owns the terminal.
		log.SetOutput(io.Discard)
	}

	text, title := sampleDoc, "sample"
	ind := settings.Indentation{TabWidth: opts.TabWidth, IndentUnit: opts.IndentUnit}
	if opts.Path != "" {
		data, err := os.ReadFile(opts.Path)
		if err != nil {
			return err
		}
		text, title = string(data), opts.Path

		resolved, err := settings.Resolve(opts.Path, ind)
		if err != nil {
			log.Printf("%v", err)
		} else {
			ind = resolved
		}
		// Explicit flags win over .editorconfig.
		if opts.TabWidth > 0 {
			ind.TabWidth = opts.TabWidth
		}
		if opts.IndentUnit > 0 {
			ind.IndentUnit = opts.IndentUnit
		}
	}

	m := model{
		title: title,
		editor: editor.New(editor.Config{
			Text:         text,
			TabWidth:     ind.TabWidth,
			IndentUnit:   ind.IndentUnit,
			ShowLineNums: opts.LineNumbers,
			Style:        editor.DefaultStyle(),
			Extensions:   []indent.Extension{indent.IndentWrappedLines(opts.indentOptions()...)},
		}),
	}
	if err := m.editor.Err(); err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if opts.Path != "" && opts.Watch {
		w, err := watchFile(opts.Path, p.Send)
		if err != nil {
			log.Printf("watch %s: %v", opts.Path, err)
		} else {
			defer w.Close()
		}
	}

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

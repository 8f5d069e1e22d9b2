// Package settings resolves per-file indentation settings from .editorconfig.
package settings

import (
	"fmt"
	"strconv"

	"github.com/editorconfig/editorconfig-core-go/v2"
)

// Indentation is the tab width and indent unit in effect for a file.
type Indentation struct {
	TabWidth   int
	IndentUnit int
	// UseTabs is true when indent_style = tab.
	UseTabs bool
}

// Resolve reads the .editorconfig files governing path. Fields not set by
// any matching section keep the values from fallback.
func Resolve(path string, fallback Indentation) (Indentation, error) {
	def, err := editorconfig.GetDefinitionForFilename(path)
	if err != nil {
		return fallback, fmt.Errorf("editorconfig for %s: %w", path, err)
	}
	return fromDefinition(def, fallback), nil
}

func fromDefinition(def *editorconfig.Definition, fallback Indentation) Indentation {
	out := fallback
	if def == nil {
		return out
	}

	if def.IndentStyle == editorconfig.IndentStyleTab {
		out.UseTabs = true
	} else if def.IndentStyle == editorconfig.IndentStyleSpaces {
		out.UseTabs = false
	}
	if def.TabWidth > 0 {
		out.TabWidth = def.TabWidth
	}

	switch def.IndentSize {
	case "":
	case "tab":
		// One level of indentation is one tab stop.
		out.IndentUnit = out.TabWidth
	default:
		if n, err := strconv.Atoi(def.IndentSize); err == nil && n > 0 {
			out.IndentUnit = n
			if def.TabWidth <= 0 && out.UseTabs {
				out.TabWidth = n
			}
		}
	}
	return out
}

package editor

import "github.com/iw2rmb/wrapindent/indent"

const (
	defaultTabWidth   = 4
	defaultIndentUnit = 2
)

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// TabWidth is the tab stop interval in cells. Default: 4.
	TabWidth int
	// IndentUnit is the width of one indentation level in cells. Default: 2.
	IndentUnit int

	// WrapMode is upgraded to WrapWord when an installed extension asks for
	// line wrapping.
	WrapMode WrapMode

	// Extensions are flattened and installed in order.
	Extensions []indent.Extension

	// Rendering options.
	ShowLineNums bool
	Style        Style

	KeyMap KeyMap
}

func normalizeConfig(cfg Config) Config {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = defaultTabWidth
	}
	if cfg.IndentUnit <= 0 {
		cfg.IndentUnit = defaultIndentUnit
	}
	if keyMapIsZero(cfg.KeyMap) {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.WrapMode == WrapNone && indent.WrapsLines(cfg.Extensions...) {
		cfg.WrapMode = WrapWord
	}
	return cfg
}

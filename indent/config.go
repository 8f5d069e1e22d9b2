package indent

import (
	"errors"
	"fmt"
)

// IndentType selects the unit InitialIndent is counted in.
type IndentType string

const (
	IndentSpace    IndentType = "space"
	IndentTab      IndentType = "tab"
	IndentUnitType IndentType = "indentUnit"
)

// DefaultTabCorrectionPx is subtracted from the text-indent of lines that
// contain a tab. Some rendering engines draw tabs inside a negative
// text-indent one device pixel wider than the ch arithmetic predicts.
const DefaultTabCorrectionPx = 1

// ErrUnknownIndentType is returned by generation when Config.InitialIndentType
// is not one of the known IndentType values.
var ErrUnknownIndentType = errors.New("indent: unknown initial indent type")

// Config configures a Decorator. Build it with NewConfig.
type Config struct {
	// InitialIndent is added to every line's measured indent, counted in
	// InitialIndentType units.
	InitialIndent int
	// InitialIndentType is validated lazily, on the first generation pass.
	InitialIndentType IndentType
	// TabCorrectionPx is the pixel correction applied to lines containing a tab.
	TabCorrectionPx int
}

// Option overrides one Config field.
type Option func(*Config)

// WithInitialIndent sets the extra indent, in InitialIndentType units.
func WithInitialIndent(n int) Option {
	return func(c *Config) { c.InitialIndent = n }
}

// WithInitialIndentType sets the unit of the initial indent.
func WithInitialIndentType(t IndentType) Option {
	return func(c *Config) { c.InitialIndentType = t }
}

// WithTabCorrection sets the tab correction in pixels. Zero disables it.
func WithTabCorrection(px int) Option {
	return func(c *Config) { c.TabCorrectionPx = px }
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		InitialIndent:     0,
		InitialIndentType: IndentSpace,
		TabCorrectionPx:   DefaultTabCorrectionPx,
	}
}

// NewConfig merges opts over DefaultConfig.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.InitialIndent < 0 {
		cfg.InitialIndent = 0
	}
	if cfg.TabCorrectionPx < 0 {
		cfg.TabCorrectionPx = 0
	}
	return cfg
}

// InitialIndentValue converts InitialIndent into columns.
func (c Config) InitialIndentValue(tabSize, indentUnit int) (int, error) {
	switch c.InitialIndentType {
	case IndentSpace:
		return c.InitialIndent, nil
	case IndentTab:
		return c.InitialIndent * tabSize, nil
	case IndentUnitType:
		return c.InitialIndent * indentUnit, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownIndentType, string(c.InitialIndentType))
	}
}

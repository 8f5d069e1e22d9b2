package indent

// Extension is anything a host can install: a view plugin, a marker such as
// LineWrapping, or a Bundle of extensions.
type Extension interface {
	extension()
}

// ViewPlugin creates one Plugin per host view.
type ViewPlugin struct {
	Create func() Plugin
}

func (ViewPlugin) extension() {}

type lineWrapping struct{}

func (lineWrapping) extension() {}

// LineWrapping asks the host to soft-wrap long lines.
var LineWrapping Extension = lineWrapping{}

// Bundle groups extensions that are installed together.
type Bundle []Extension

func (Bundle) extension() {}

// Flatten expands nested bundles depth-first and drops nil entries.
func Flatten(exts ...Extension) []Extension {
	var out []Extension
	for _, ext := range exts {
		switch e := ext.(type) {
		case nil:
		case Bundle:
			out = append(out, Flatten(e...)...)
		default:
			out = append(out, e)
		}
	}
	return out
}

// WrapsLines reports whether exts enable soft line wrapping.
func WrapsLines(exts ...Extension) bool {
	for _, ext := range Flatten(exts...) {
		if _, ok := ext.(lineWrapping); ok {
			return true
		}
	}
	return false
}

// IndentWrappedLines returns the decorator view plugin bundled with
// LineWrapping.
func IndentWrappedLines(opts ...Option) Extension {
	cfg := NewConfig(opts...)
	return Bundle{
		ViewPlugin{Create: func() Plugin { return NewDecorator(cfg) }},
		LineWrapping,
	}
}

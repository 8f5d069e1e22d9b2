package editor

// WrapMode controls how long logical lines are displayed.
//
// WrapNone renders one logical line per visual row and clips it at the
// content width. WrapWord and WrapGrapheme use soft wrapping.
type WrapMode int

const (
	WrapNone WrapMode = iota
	WrapWord
	WrapGrapheme
)

func (w WrapMode) String() string {
	switch w {
	case WrapNone:
		return "none"
	case WrapWord:
		return "word"
	case WrapGrapheme:
		return "grapheme"
	default:
		return "unknown"
	}
}

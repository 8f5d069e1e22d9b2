package editor

import (
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// pxPerCell converts pixel lengths in decoration styles to terminal cells.
const pxPerCell = 8

// hangingIndent is the row prefix, in cells, of a logical line's first row
// and of its continuation rows.
type hangingIndent struct {
	first int
	rest  int
}

type styleToken struct {
	tt   css.TokenType
	text string
}

// parseInlineStyle returns the declarations of an inline style attribute,
// keyed by lower-cased property name.
func parseInlineStyle(style string) map[string][]styleToken {
	decls := make(map[string][]styleToken)
	p := css.NewParser(parse.NewInputString(style), true)
	for {
		gt, _, data := p.Next()
		if gt == css.ErrorGrammar {
			break
		}
		if gt != css.DeclarationGrammar {
			continue
		}
		vals := p.Values()
		toks := make([]styleToken, 0, len(vals))
		for _, v := range vals {
			toks = append(toks, styleToken{tt: v.TokenType, text: string(v.Data)})
		}
		decls[strings.ToLower(string(data))] = toks
	}
	return decls
}

// evalCells evaluates a length or a flat calc() sum of lengths into cells.
// Supported units are ch (one cell) and px.
func evalCells(toks []styleToken) (float64, bool) {
	total := 0.0
	sign := 1.0
	terms := 0
	for _, tok := range toks {
		switch tok.tt {
		case css.WhitespaceToken, css.RightParenthesisToken:
		case css.FunctionToken:
			if !strings.EqualFold(tok.text, "calc(") {
				return 0, false
			}
		case css.DelimToken:
			switch tok.text {
			case "+":
				sign = 1
			case "-":
				sign = -1
			default:
				return 0, false
			}
		case css.DimensionToken, css.NumberToken:
			v, ok := lengthCells(tok.text)
			if !ok {
				return 0, false
			}
			total += sign * v
			sign = 1
			terms++
		default:
			return 0, false
		}
	}
	return total, terms > 0
}

func lengthCells(dim string) (float64, bool) {
	i := len(dim)
	for i > 0 {
		c := dim[i-1]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '%' {
			i--
			continue
		}
		break
	}
	num, unit := dim[:i], strings.ToLower(dim[i:])
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	switch unit {
	case "ch":
		return v, true
	case "px":
		return v / pxPerCell, true
	case "":
		return v, v == 0
	default:
		return 0, false
	}
}

// hangingIndentFromStyle reads padding-left and text-indent from a line
// decoration style. base is used for anything missing or unparsable.
func hangingIndentFromStyle(style string, base int) hangingIndent {
	hi := hangingIndent{first: base, rest: base}
	if style == "" {
		return hi
	}

	decls := parseInlineStyle(style)
	padding := base
	if toks, ok := decls["padding-left"]; ok {
		if v, ok := evalCells(toks); ok {
			padding = maxInt(int(math.Trunc(v)), 0)
		}
	}
	textIndent := 0
	if toks, ok := decls["text-indent"]; ok {
		if v, ok := evalCells(toks); ok {
			textIndent = int(math.Trunc(v))
		}
	}

	hi.rest = padding
	hi.first = maxInt(padding+textIndent, 0)
	return hi
}

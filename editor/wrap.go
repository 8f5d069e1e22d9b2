package editor

type wrappedSegment struct {
	// StartCol/EndCol are rune columns in the raw line.
	StartCol int
	EndCol   int
	Cells    int

	startTok int
	endTok   int
}

// wrapSegmentsForVisualLine splits vl into rows. The first row is firstWidth
// cells wide and every continuation row restWidth cells wide.
func wrapSegmentsForVisualLine(vl visualLine, mode WrapMode, firstWidth, restWidth int) []wrappedSegment {
	toks := vl.Tokens
	if mode == WrapNone || len(toks) == 0 || (firstWidth <= 0 && restWidth <= 0) {
		return []wrappedSegment{{
			StartCol: 0,
			EndCol:   vl.RuneLen,
			Cells:    vl.VisualLen(),
			startTok: 0,
			endTok:   len(toks),
		}}
	}

	segments := make([]wrappedSegment, 0, 1+vl.VisualLen()/maxInt(restWidth, 1))
	for start := 0; start < len(toks); {
		width := restWidth
		if len(segments) == 0 {
			width = firstWidth
		}
		width = maxInt(width, 1)

		used := 0
		overflow := start
		for overflow < len(toks) {
			w := maxInt(toks[overflow].CellWidth, 1)
			if used > 0 && used+w > width {
				break
			}
			used += w
			overflow++
		}

		end := overflow
		if mode == WrapWord && overflow < len(toks) {
			if br, ok := findWordWrapBreak(toks, start, overflow); ok {
				end = br
			}
		}
		if end <= start {
			end = minInt(start+1, len(toks))
		}

		segments = append(segments, segmentFromTokens(vl, start, end))
		start = end
	}

	// Dropped carriage returns still belong to the outer rows.
	segments[0].StartCol = 0
	segments[len(segments)-1].EndCol = vl.RuneLen
	return segments
}

// findWordWrapBreak returns the token index after the last whitespace token
// in [start, overflow], so the row ends on a word boundary.
func findWordWrapBreak(toks []visualToken, start, overflow int) (int, bool) {
	if toks[overflow].isSpace {
		// Trailing whitespace hangs on the row it follows.
		end := overflow
		for end < len(toks) && toks[end].isSpace {
			end++
		}
		return end, true
	}
	for i := overflow - 1; i > start; i-- {
		if toks[i].isSpace {
			return i + 1, true
		}
	}
	return 0, false
}

func segmentFromTokens(vl visualLine, start, end int) wrappedSegment {
	first := vl.Tokens[start]
	last := vl.Tokens[end-1]
	return wrappedSegment{
		StartCol: first.StartCol,
		EndCol:   last.EndCol,
		Cells:    last.StartCell + last.CellWidth - first.StartCell,
		startTok: start,
		endTok:   end,
	}
}

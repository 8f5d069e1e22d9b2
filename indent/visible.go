package indent

// VisibleLines returns the logical lines touched by ranges, in discovery order.
//
// Adjacent ranges may share a boundary line; lines are keyed by their start
// offset so each appears once.
//
// The walk steps from the end of each line (line.To+1), not by the line
// length from the current position. The two agree for ranges that start on
// a line boundary; for a range starting mid-line, the line after the first
// one is never skipped.
func VisibleLines(doc Document, ranges []Range) []Line {
	if doc == nil || len(ranges) == 0 {
		return nil
	}

	var (
		lines []Line
		seen  = make(map[int]struct{})
		last  = -1
	)
	for _, r := range ranges {
		to := minInt(r.To, doc.Length())
		for pos := maxInt(r.From, 0); pos < to; {
			line := doc.LineAt(pos)
			if line.From != last {
				if _, dup := seen[line.From]; !dup {
					seen[line.From] = struct{}{}
					lines = append(lines, line)
				}
				last = line.From
			}
			next := line.To + 1
			if next <= pos {
				next = pos + 1
			}
			pos = next
		}
	}
	return lines
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

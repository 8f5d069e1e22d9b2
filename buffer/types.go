package buffer

// Line is one logical line.
//
// From and To are document offsets; To excludes the line break.
type Line struct {
	Number int
	From   int
	To     int
	Text   string
}

func (l Line) Length() int { return l.To - l.From }

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

package linebreak

// Text Position Queries
//
// Pure lookups over a chosen breakpoint sequence or a positioned layout:
// which line an item landed on, and which item sits under a given x-offset.
// Screen/page coordinates and cursor blink state are a renderer's concern,
// not this package's (spec.md's Non-goals).

// LineOf returns the 0-based line that itemIndex was placed on, given the
// breakpoints BreakLines chose. breakpoints[0] is the synthetic start index
// 0, so line L spans items (breakpoints[L], breakpoints[L+1]] (line 0 also
// includes item breakpoints[0]); itemIndex
// belongs to the first line whose ending breakpoint is >= itemIndex.
// itemIndex past the last breakpoint clamps to the last line.
//
// Example:
//
//	breakpoints, _ := linebreak.BreakLines(items, width, nil)
//	line := linebreak.LineOf(breakpoints, 7) // which line item 7 landed on
func LineOf(breakpoints []int, itemIndex int) int {
	if len(breakpoints) < 2 {
		return 0
	}
	for line := 0; line < len(breakpoints)-1; line++ {
		if itemIndex <= breakpoints[line+1] {
			return line
		}
	}
	return len(breakpoints) - 2
}

// ItemAtOffset finds the item on the given line whose horizontal extent
// contains xOffset, returning its index into the original items slice and
// true. xOffset before the first item on the line returns that item; after
// the last, returns the last item on the line. ok is false if no positioned
// item exists on that line at all.
func ItemAtOffset(positioned []PositionedItem, line int, xOffset float64) (itemIndex int, ok bool) {
	var last *PositionedItem
	for i := range positioned {
		p := &positioned[i]
		if p.Line != line {
			continue
		}
		last = p
		if xOffset < p.XOffset {
			return p.Item, true
		}
		if xOffset <= p.XOffset+p.Width {
			return p.Item, true
		}
	}
	if last != nil {
		return last.Item, true
	}
	return 0, false
}

package linebreak

// AdjustmentRatios reports, for each line implied by breakpoints, how much
// that line's glue had to stretch or shrink to fill lineWidths.At(line)
// exactly. This is the same formula BreakLines uses internally (spec.md
// §4.3), exposed directly so callers can inspect or re-score a breakpoint
// sequence they already have without re-running the optimizer.
//
// breakpoints is BreakLines' output: a strictly increasing sequence
// starting at the synthetic index 0, so line i spans items
// (breakpoints[i], breakpoints[i+1]] (line 0 also includes item
// breakpoints[0]) — there are len(breakpoints)-1 lines.
// A breakpoints slice shorter than 2 entries describes zero lines.
func AdjustmentRatios(items []Item, lineWidths LineWidths, breakpoints []int) ([]float64, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}
	if len(breakpoints) < 2 {
		return []float64{}, nil
	}

	numLines := len(breakpoints) - 1
	ratios := make([]float64, numLines)
	for line := 0; line < numLines; line++ {
		start, end := lineRange(breakpoints, line)
		width, stretch, shrink := sumLine(items, start, end)
		ideal := lineWidths.At(line)
		diff := ideal - width
		if diff >= 0 {
			ratios[line] = ratioOf(diff, stretch)
		} else {
			ratios[line] = ratioOf(diff, shrink)
		}
	}
	return ratios, nil
}

// lineRange returns the inclusive [start, end] item-index range for line,
// per spec.md §4.3: start is breakpoints[0] for the first line (the
// synthetic index 0), or the previous breakpoint + 1 otherwise, since the
// break item itself belongs to the line that ends there, not the next one.
func lineRange(breakpoints []int, line int) (start, end int) {
	if line == 0 {
		start = breakpoints[0]
	} else {
		start = breakpoints[line] + 1
	}
	end = breakpoints[line+1]
	return
}

// sumLine totals a line's box widths, interior glue (glue strictly between
// start and end — glue sitting at either endpoint is discardable, not
// typeset), and the ending penalty's width if the line ends at one.
func sumLine(items []Item, start, end int) (width, stretch, shrink float64) {
	for i := start; i <= end && i < len(items); i++ {
		it := items[i]
		switch it.Kind {
		case KindBox:
			width += it.Width
		case KindGlue:
			if i != start && i != end {
				width += it.Width
				stretch += it.Stretch
				shrink += it.Shrink
			}
		case KindPenalty:
			if i == end {
				width += it.Width
			}
		}
	}
	return
}

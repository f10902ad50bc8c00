package linebreak

// IntrinsicWidths computes the min-content and max-content widths of items,
// the Box Sizing Module notion of intrinsic size applied to an Item
// sequence rather than a raw string (spec.md §4 extends naturally here):
//
//   - minContent is the width of the widest run of boxes between two legal
//     breakpoints — the narrowest a layout could be without overflowing a
//     single unbreakable run.
//   - maxContent is the natural width of the whole sequence laid out on one
//     line, every glue at its preferred width, no stretch or shrink applied.
func IntrinsicWidths(items []Item) (minContent, maxContent float64) {
	var runWidth float64
	for i, it := range items {
		switch it.Kind {
		case KindBox:
			runWidth += it.Width
			maxContent += it.Width
		case KindGlue:
			maxContent += it.Width
			if isLegalBreak(items, i) {
				if runWidth > minContent {
					minContent = runWidth
				}
				runWidth = 0
			} else {
				runWidth += it.Width
			}
		case KindPenalty:
			if isLegalBreak(items, i) {
				if runWidth > minContent {
					minContent = runWidth
				}
				runWidth = 0
			}
		}
	}
	if runWidth > minContent {
		minContent = runWidth
	}
	return
}

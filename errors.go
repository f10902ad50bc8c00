package linebreak

import (
	"errors"
	"fmt"
)

// ErrMaxAdjustmentExceeded is returned by BreakLines when the caller set a
// hard Options.MaxAdjustmentRatio and no breakpoint sequence satisfies it,
// even after the relax-threshold retry (spec.md §4.2 step 6, §7). It is a
// recoverable signal: callers typically retry with hyphenation enabled or a
// larger MaxAdjustmentRatio.
var ErrMaxAdjustmentExceeded = errors.New("linebreak: no breakpoint sequence satisfies the maximum adjustment ratio")

// ErrInvalidItem is returned by BreakLines, PositionItems, and
// AdjustmentRatios when an item has a negative width, or a glue item has
// negative stretch or shrink. This is a programmer error in the caller's
// item sequence and is never retried internally.
var ErrInvalidItem = errors.New("linebreak: invalid item")

// invalidItemError wraps ErrInvalidItem with the offending index so
// errors.Is(err, ErrInvalidItem) still matches while the message stays
// actionable.
func invalidItemError(index int, reason string) error {
	return fmt.Errorf("%w: item %d %s", ErrInvalidItem, index, reason)
}

// validateItems checks the negative-width/negative-stretch/negative-shrink
// invariant (spec.md §4.1) over the whole sequence before the optimizer (or
// the ratio computer, or the positioner) touches it.
func validateItems(items []Item) error {
	for i, it := range items {
		if it.Width < 0 {
			return invalidItemError(i, "has negative width")
		}
		if it.Kind == KindGlue {
			if it.Stretch < 0 {
				return invalidItemError(i, "has negative stretch")
			}
			if it.Shrink < 0 {
				return invalidItemError(i, "has negative shrink")
			}
		}
	}
	return nil
}

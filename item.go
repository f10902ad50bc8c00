// Package linebreak implements the Knuth–Plass optimal paragraph
// line-breaking algorithm: given a sequence of boxes, glues, and penalties
// and one or more target line widths, it chooses the breakpoints that
// minimize total demerits across the whole paragraph, then computes
// pixel-accurate per-item placements.
//
// Unlike greedy line breaking (fill each line as much as possible),
// Knuth–Plass considers the whole paragraph at once and finds the globally
// optimal set of breakpoints.
//
// References:
//   - Knuth & Plass (1981), "Breaking Paragraphs into Lines":
//     https://www.eprg.org/G53DOC/pdfs/knuth-plass-breaking.pdf
//
// # Scope
//
// This package is the breaking/positioning engine only. Text tokenization,
// width measurement, hyphenation dictionaries, and rendering to any surface
// are callers' responsibility: BreakLines, PositionItems, and
// AdjustmentRatios are pure functions over an already-built []Item. The
// string subpackages ([hyphen], [segment]) and LayoutItemsFromString are
// convenience helpers for the common case of laying out plain text.
//
// # Quick start
//
//	items := linebreak.LayoutItemsFromString(
//	    "The quick brown fox jumps over the lazy dog",
//	    func(r rune) float64 { return 5 }, // fixed-width measure
//	    nil,                               // no hyphenation
//	)
//	breakpoints, err := linebreak.BreakLines(items, linebreak.Constant(40), nil)
//	if err != nil {
//	    // handle linebreak.ErrMaxAdjustmentExceeded / linebreak.ErrInvalidItem
//	}
//	placed, _ := linebreak.PositionItems(items, linebreak.Constant(40), breakpoints, nil)
package linebreak

// Sentinel cost values from spec: a penalty with Cost <= MinCost forces a
// break, one with Cost >= MaxCost forbids it.
const (
	MinCost            = -1000.0
	MaxCost            = 1000.0
	MinAdjustmentRatio = -1.0
)

// Kind discriminates the three Item variants.
type Kind int

const (
	// KindBox is an opaque typeset unit (typically a word). Never a
	// breakpoint.
	KindBox Kind = iota
	// KindGlue is elastic space. A legal breakpoint iff it immediately
	// follows a box.
	KindGlue
	// KindPenalty is an explicit break candidate with an associated cost.
	KindPenalty
)

// Item is a tagged union of Box, Glue, and Penalty, the three primitives of
// the Knuth–Plass model (spec.md §3).
//
//   - Box: Width only. Width may be negative only as a caller-supplied
//     cumulative-width correction; this package rejects negative widths
//     outright (see ErrInvalidItem), which is the conservative reading of
//     the open question in spec.md §9.
//   - Glue: Width (preferred), Stretch, Shrink (both >= 0).
//   - Penalty: Width (typeset width if the break is taken, e.g. a visible
//     hyphen), Cost, and Flagged (used for the double-hyphen demerit).
type Item struct {
	Kind    Kind
	Width   float64
	Stretch float64
	Shrink  float64
	Cost    float64
	Flagged bool
}

// Box constructs a box item of the given width.
func Box(width float64) Item {
	return Item{Kind: KindBox, Width: width}
}

// Glue constructs a glue item with preferred width, stretch, and shrink.
func Glue(width, stretch, shrink float64) Item {
	return Item{Kind: KindGlue, Width: width, Stretch: stretch, Shrink: shrink}
}

// Penalty constructs a penalty item of the given width and cost. flagged
// marks the penalty for the double-hyphen demerit (spec.md §4.2 step 4).
func Penalty(width, cost float64, flagged bool) Item {
	return Item{Kind: KindPenalty, Width: width, Cost: cost, Flagged: flagged}
}

// ForcedBreak constructs the penalty that terminates a well-formed
// paragraph: zero width, cost MinCost (always taken), not flagged.
func ForcedBreak() Item {
	return Item{Kind: KindPenalty, Width: 0, Cost: MinCost, Flagged: false}
}

// isForced reports whether this item is a penalty that forces a break.
func (it Item) isForced() bool {
	return it.Kind == KindPenalty && it.Cost <= MinCost
}

// isLegalBreak reports whether item i of items could possibly be a
// breakpoint, independent of the active set (spec.md §4.2 step 1).
func isLegalBreak(items []Item, i int) bool {
	it := items[i]
	switch it.Kind {
	case KindBox:
		return false
	case KindGlue:
		return i > 0 && items[i-1].Kind == KindBox
	case KindPenalty:
		return it.Cost < MaxCost
	default:
		return false
	}
}

// LineWidths supplies the target width for each line, queried by 0-based
// line index. This is the Go rendering of spec.md's "scalar or sequence"
// lineWidths input.
type LineWidths interface {
	At(line int) float64
}

// Constant is a LineWidths that returns the same width for every line.
type Constant float64

// At implements LineWidths.
func (c Constant) At(int) float64 { return float64(c) }

// Varying is a LineWidths backed by a per-line slice. Lines beyond the end
// of the slice repeat the last entry; an empty Varying yields zero for
// every line.
type Varying []float64

// At implements LineWidths.
func (v Varying) At(line int) float64 {
	if len(v) == 0 {
		return 0
	}
	if line < 0 {
		line = 0
	}
	if line >= len(v) {
		line = len(v) - 1
	}
	return v[line]
}

package linebreak

// Options configures BreakLines. The zero value is not directly usable;
// call DefaultOptions and override fields, mirroring the donor package's
// KnuthPlassOptions/DefaultKnuthPlassOptions pattern.
type Options struct {
	// MaxAdjustmentRatio is the caller's hard cap on the adjustment ratio.
	// Nil means unbounded: the optimizer keeps relaxing
	// InitialMaxAdjustmentRatio until some layout is found or the fallback
	// mechanism (spec.md §4.2 step 6) takes over.
	MaxAdjustmentRatio *float64

	// InitialMaxAdjustmentRatio is the starting threshold for feasible
	// transitions (spec.md §4.2 step 4). Default 1, matching TeX's
	// \tolerance before hyphenation is considered.
	InitialMaxAdjustmentRatio float64

	// DoubleHyphenPenalty is added to demerits when a line ends at a
	// flagged penalty and the previous line also ended at one (spec.md
	// §4.2 step 4).
	DoubleHyphenPenalty float64

	// AdjacentLooseTightPenalty is added when two consecutive lines' fitness
	// classes differ by more than one bucket (spec.md §4.2 step 4).
	AdjacentLooseTightPenalty float64
}

// DefaultOptions returns the donor's defaults: InitialMaxAdjustmentRatio 1,
// no hard cap, no double-hyphen or adjacent-fitness penalties.
func DefaultOptions() *Options {
	return &Options{
		MaxAdjustmentRatio:        nil,
		InitialMaxAdjustmentRatio: 1,
		DoubleHyphenPenalty:       0,
		AdjacentLooseTightPenalty: 0,
	}
}

// orDefault returns a copy of o if non-nil, else DefaultOptions(), and fills
// in a zero InitialMaxAdjustmentRatio with the default of 1 (so a caller-built
// &Options{} without that field set still behaves sensibly).
func (o *Options) orDefault() *Options {
	if o == nil {
		return DefaultOptions()
	}
	out := *o
	if out.InitialMaxAdjustmentRatio == 0 {
		out.InitialMaxAdjustmentRatio = 1
	}
	return &out
}

// PositionOptions configures PositionItems.
type PositionOptions struct {
	// IncludeGlue, if true, emits a PositionedItem for glue items (not at a
	// line endpoint) in addition to boxes and ending penalties. Default
	// false: glue only contributes to xOffset advancement.
	IncludeGlue bool
}

package linebreak

import "math"

// node is an active-set candidate breakpoint. Nodes are allocated from a
// slice-backed arena and linked by integer index rather than pointer, per
// the Design Notes' recommendation (spec.md §9): a dense contiguous buffer
// allocated fresh for each pass is friendlier to iterate-and-mutate than
// a hashed set of pointer-linked objects, and avoids cycles since the DAG is
// walked backward exactly once at the end.
type node struct {
	index                                  int
	line                                   int
	fitness                                int
	totalWidth, totalStretch, totalShrink  float64
	totalDemerits                          float64
	prev                                   int // arena index, -1 for none
}

const noPrev = -1

// ratioOf divides diff by denom, treating the spec's "division by zero
// yields +/-Inf" rule, but special-casing an exact fit (diff == 0) to a
// ratio of 0 regardless of denom, which avoids an IEEE 0/0 NaN.
func ratioOf(diff, denom float64) float64 {
	if diff == 0 {
		return 0
	}
	return diff / denom
}

// fitnessClassOf buckets an adjustment ratio into one of spec.md's four
// fitness classes.
func fitnessClassOf(r float64) int {
	switch {
	case r < -0.5:
		return 0
	case r < 0.5:
		return 1
	case r < 1:
		return 2
	default:
		return 3
	}
}

// lookahead sums the width/stretch/shrink of the glue at b itself (when b is
// a glue) and of the glue and breakable penalties after item b, up to (not
// including) the next box or forbidden-break penalty. This is the amount of
// material that belongs to neither the line ending at b nor the line
// starting after b (spec.md §4.2 step 4's "sum-lookahead to next box").
func lookahead(items []Item, b int) (width, stretch, shrink float64) {
	start := b + 1
	if items[b].Kind == KindGlue {
		start = b
	}
	for pos := start; pos < len(items); pos++ {
		it := items[pos]
		if it.Kind == KindBox {
			break
		}
		if it.Kind == KindPenalty && it.Cost >= MaxCost {
			break
		}
		width += it.Width
		if it.Kind == KindGlue {
			stretch += it.Stretch
			shrink += it.Shrink
		}
	}
	return
}

// breakAttempt is the result of one full left-to-right pass over items at a
// fixed adjustment-ratio ceiling.
type breakAttempt struct {
	breakpoints []int   // non-nil on success
	relaxTo     float64 // valid when breakpoints == nil; always finite
}

// BreakLines chooses the breakpoint indices that minimize total demerits
// across the paragraph, implementing the Knuth–Plass active-set dynamic
// program of spec.md §4.2.
//
// An empty item sequence yields an empty, non-nil result. A sequence with
// no legal breakpoint (e.g. a single box) yields []int{0}. BreakLines
// returns ErrInvalidItem for a negative-width item or a glue with negative
// stretch/shrink, and ErrMaxAdjustmentExceeded if opts.MaxAdjustmentRatio is
// set and no layout satisfies it even after relaxing the threshold as far
// as that cap allows.
func BreakLines(items []Item, lineWidths LineWidths, opts *Options) ([]int, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []int{}, nil
	}

	o := opts.orDefault()
	currentMax := o.InitialMaxAdjustmentRatio

	for {
		attempt := tryBreak(items, lineWidths, o, currentMax)
		if attempt.breakpoints != nil {
			return attempt.breakpoints, nil
		}

		if o.MaxAdjustmentRatio != nil && currentMax >= *o.MaxAdjustmentRatio {
			return nil, ErrMaxAdjustmentExceeded
		}

		next := attempt.relaxTo
		if o.MaxAdjustmentRatio != nil && next > *o.MaxAdjustmentRatio {
			next = *o.MaxAdjustmentRatio
		}
		if !(next > currentMax) {
			// No progress possible: relaxing further wouldn't change the
			// outcome. Guards against looping forever (spec.md §8 property 3).
			return nil, ErrMaxAdjustmentExceeded
		}
		currentMax = next
	}
}

// tryBreak runs one full pass of the active-set DP at a fixed
// currentMaxAdjustmentRatio ceiling. On success, breakAttempt.breakpoints is
// the chosen path. On failure it reports the smallest ratio above
// currentMax that, if the ceiling were raised to it, would have produced a
// feasible transition. When no amount of relaxation would help, the
// fallback breakpoint injection path handles the case internally, so a
// failed pass always reports a finite value.
func tryBreak(items []Item, lineWidths LineWidths, o *Options, currentMax float64) breakAttempt {
	arena := make([]node, 1, len(items)+1)
	arena[0] = node{index: 0, line: 0, fitness: 0, prev: noPrev}
	active := []int{0}

	var sumWidth, sumStretch, sumShrink float64

	for b := 0; b < len(items); b++ {
		it := items[b]

		switch it.Kind {
		case KindBox:
			sumWidth += it.Width
			continue
		case KindGlue:
			if !(b > 0 && items[b-1].Kind == KindBox) {
				sumWidth += it.Width
				sumStretch += it.Stretch
				sumShrink += it.Shrink
				continue
			}
		case KindPenalty:
			if it.Cost >= MaxCost {
				continue
			}
		}

		// b is a legal breakpoint candidate (glue following a box, or a
		// non-forbidding penalty).
		forced := it.isForced()
		penaltyWidth := 0.0
		if it.Kind == KindPenalty {
			penaltyWidth = it.Width
		}

		type bestKey struct{ line, fitness int }
		best := make(map[bestKey]int) // -> arena index of best candidate so far

		var keep []int
		var lastActive = noPrev
		minAboveThreshold := math.Inf(1)

		for _, aIdx := range active {
			a := arena[aIdx]

			actualLen := sumWidth - a.totalWidth + penaltyWidth
			ideal := lineWidths.At(a.line)
			diff := ideal - actualLen

			var r float64
			if actualLen < ideal {
				r = ratioOf(diff, sumStretch-a.totalStretch)
			} else {
				r = ratioOf(diff, sumShrink-a.totalShrink)
			}

			prune := r < MinAdjustmentRatio || forced
			feasible := r >= MinAdjustmentRatio && r <= currentMax

			if r > currentMax && r < minAboveThreshold {
				minAboveThreshold = r
			}

			if prune {
				lastActive = aIdx
			} else {
				keep = append(keep, aIdx)
			}

			if feasible {
				badness := 100 * math.Pow(math.Abs(r), 3)
				var penaltyCost float64
				if it.Kind == KindPenalty {
					penaltyCost = it.Cost
				}

				var d float64
				switch {
				case penaltyCost >= 0:
					d = math.Pow(1+badness+penaltyCost, 2)
				case penaltyCost > MinCost:
					d = math.Pow(1+badness, 2) - penaltyCost*penaltyCost
				default:
					d = math.Pow(1+badness, 2)
				}

				if it.Flagged && items[a.index].Kind == KindPenalty && items[a.index].Flagged {
					d += o.DoubleHyphenPenalty
				}

				fitness := fitnessClassOf(r)
				if a.index > 0 && absInt(fitness-a.fitness) > 1 {
					d += o.AdjacentLooseTightPenalty
				}

				lw, ls, lsh := lookahead(items, b)
				candidate := node{
					index:         b,
					line:          a.line + 1,
					fitness:       fitness,
					totalWidth:    sumWidth + lw,
					totalStretch:  sumStretch + ls,
					totalShrink:   sumShrink + lsh,
					totalDemerits: a.totalDemerits + d,
					prev:          aIdx,
				}

				key := bestKey{candidate.line, candidate.fitness}
				if cur, ok := best[key]; !ok || candidate.totalDemerits < arena[cur].totalDemerits {
					if ok {
						arena[cur] = candidate
						best[key] = cur
					} else {
						arena = append(arena, candidate)
						best[key] = len(arena) - 1
					}
				}
			}
		}

		newActive := keep
		for _, idx := range best {
			newActive = append(newActive, idx)
		}

		if len(newActive) == 0 {
			if !math.IsInf(minAboveThreshold, 1) {
				return breakAttempt{relaxTo: minAboveThreshold}
			}
			// No amount of relaxation would help (oversize box, zero
			// stretch/shrink glue): inject a forced breakpoint and keep
			// going (spec.md §4.2 step 6).
			lw, ls, lsh := lookahead(items, b)
			fallbackFitness := 1
			fallbackDemerits := 1000.0
			if lastActive != noPrev {
				fallbackFitness = arena[lastActive].fitness
				fallbackDemerits = arena[lastActive].totalDemerits + 1000
			}
			arena = append(arena, node{
				index:         b,
				line:          lineOf(arena, lastActive) + 1,
				fitness:       fallbackFitness,
				totalWidth:    sumWidth + lw,
				totalStretch:  sumStretch + ls,
				totalShrink:   sumShrink + lsh,
				totalDemerits: fallbackDemerits,
				prev:          lastActive,
			})
			newActive = []int{len(arena) - 1}
		}

		active = newActive

		if it.Kind == KindGlue {
			sumWidth += it.Width
			sumStretch += it.Stretch
			sumShrink += it.Shrink
		}
	}

	best := active[0]
	for _, idx := range active[1:] {
		if arena[idx].totalDemerits < arena[best].totalDemerits {
			best = idx
		}
	}

	var path []int
	for idx := best; idx != noPrev; idx = arena[idx].prev {
		path = append(path, arena[idx].index)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return breakAttempt{breakpoints: path}
}

// lineOf returns the line number of the node at idx, or 0 if idx is noPrev
// (meaning there is no predecessor at all — used only by the fallback path
// when even the sentinel root has no nodes to fall back to, which cannot
// actually happen since the root is never pruned before some item is
// scanned, but is handled defensively).
func lineOf(arena []node, idx int) int {
	if idx == noPrev {
		return 0
	}
	return arena[idx].line
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

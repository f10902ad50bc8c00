package linebreak

import "github.com/SCKelemen/linebreak/segment"

// Cost of the flagged penalty placed between hyphenation fragments
// (spec.md §4.1).
const hyphenPenaltyCost = 10.0

// LayoutItemsFromString tokenizes text into words with segment.Words and
// turns it into an Item sequence: one Box per word (or, when hyphenate is
// non-nil, one Box per hyphenation fragment joined by a flagged Penalty),
// separated by a space Glue sized from measure(' '), terminated by a
// zero-width glue with effectively infinite stretch and a ForcedBreak so
// the last line is never starved of stretch.
//
// measure gives the width of a single rune; hyphenate, if non-nil, splits a
// word into fragments at its permitted hyphenation points (see the hyphen
// subpackage's Dictionary.Fragments).
func LayoutItemsFromString(text string, measure func(rune) float64, hyphenate func(string) []string) []Item {
	words := segment.Words(text)
	if len(words) == 0 {
		return []Item{}
	}

	spaceWidth := measure(' ')
	spaceShrink := spaceWidth - 2
	if spaceShrink < 0 {
		spaceShrink = 0
	}
	spaceGlue := Glue(spaceWidth, 1.5*spaceWidth, spaceShrink)

	var items []Item
	for i, word := range words {
		if i > 0 {
			items = append(items, spaceGlue)
		}
		items = append(items, wordItems(word, measure, hyphenate)...)
	}
	items = append(items, Glue(0, MaxCost, 0), ForcedBreak())
	return items
}

// wordItems renders one word as a run of boxes, split at hyphenation
// fragment boundaries (if hyphenate is given and finds any) joined by
// flagged penalties.
func wordItems(word string, measure func(rune) float64, hyphenate func(string) []string) []Item {
	var fragments []string
	if hyphenate != nil {
		fragments = hyphenate(word)
	}
	if len(fragments) <= 1 {
		return []Item{Box(measureString(word, measure))}
	}

	items := make([]Item, 0, len(fragments)*2-1)
	for i, frag := range fragments {
		if i > 0 {
			items = append(items, Penalty(measure('-'), hyphenPenaltyCost, true))
		}
		items = append(items, Box(measureString(frag, measure)))
	}
	return items
}

func measureString(s string, measure func(rune) float64) float64 {
	var w float64
	for _, r := range s {
		w += measure(r)
	}
	return w
}

// Package hyphen implements Frank Liang's hyphenation algorithm (1983), the
// pattern-matching scheme used by TeX, and adapts it to the
// hyphenate func(string) []string callback shape that
// linebreak.LayoutItemsFromString expects.
//
// Reference: "Word Hy-phen-a-tion by Com-put-er" by Franklin Mark Liang,
// https://tug.org/docs/liang/
package hyphen

import "strings"

// Dictionary holds hyphenation patterns for one language.
type Dictionary struct {
	patterns map[string]string
	minLeft  int
	minRight int
}

// English returns a Dictionary loaded with a small subset of TeX's English
// hyphenation patterns, sufficient for common prefixes, suffixes, and
// syllable boundaries. Dictionary has no exported way to add or load other
// patterns; this built-in subset is the only pattern set available.
func English() *Dictionary {
	return &Dictionary{
		patterns: englishPatterns(),
		minLeft:  2,
		minRight: 3,
	}
}

func englishPatterns() map[string]string {
	return map[string]string{
		".anti5": ".anti5", ".co4me": ".co4me", ".co4op": ".co4op",
		".dis3": ".dis3", ".ex1": ".ex1", ".inter3": ".inter3",
		".multi3": ".multi3", ".non1": ".non1", ".post3": ".post3",
		".pre3": ".pre3", ".pro3": ".pro3", ".re3": ".re3",
		".semi3": ".semi3", ".sub3": ".sub3", ".super5": ".super5",
		".trans3": ".trans3", ".un1": ".un1", ".under3": ".under3",

		"5able.": "5able.", "5ible.": "5ible.", "5ing.": "5ing.",
		"5tion.": "5tion.", "5sion.": "5sion.", "5ness.": "5ness.",
		"5ment.": "5ment.", "5ful.": "5ful.", "5less.": "5less.",
		"5ous.": "5ous.", "5ive.": "5ive.", "3ence.": "3ence.",
		"3ance.": "3ance.", "3ity.": "3ity.", "3ency.": "3ency.",
		"3ancy.": "3ancy.", "5er.": "5er.", "5est.": "5est.", "5ed.": "5ed.",

		"1ba": "1ba", "1be": "1be", "1bi": "1bi", "1bo": "1bo", "1bu": "1bu",
		"1ca": "1ca", "1ce": "1ce", "1ci": "1ci", "1co": "1co", "1cu": "1cu",
		"1da": "1da", "1de": "1de", "1di": "1di", "1do": "1do", "1du": "1du",
		"1ga": "1ga", "1ge": "1ge", "1gi": "1gi", "1go": "1go", "1gu": "1gu",
		"1la": "1la", "1le": "1le", "1li": "1li", "1lo": "1lo", "1lu": "1lu",
		"1ma": "1ma", "1me": "1me", "1mi": "1mi", "1mo": "1mo", "1mu": "1mu",
		"1na": "1na", "1ne": "1ne", "1ni": "1ni", "1no": "1no", "1nu": "1nu",
		"1pa": "1pa", "1pe": "1pe", "1pi": "1pi", "1po": "1po", "1pu": "1pu",
		"1ra": "1ra", "1re": "1re", "1ri": "1ri", "1ro": "1ro", "1ru": "1ru",
		"1sa": "1sa", "1se": "1se", "1si": "1si", "1so": "1so", "1su": "1su",
		"1ta": "1ta", "1te": "1te", "1ti": "1ti", "1to": "1to", "1tu": "1tu",
		"1va": "1va", "1ve": "1ve", "1vi": "1vi", "1vo": "1vo", "1vu": "1vu",

		"2bb": "2bb", "2cc": "2cc", "2dd": "2dd", "2ff": "2ff", "2gg": "2gg",
		"2ll": "2ll", "2mm": "2mm", "2nn": "2nn", "2pp": "2pp", "2rr": "2rr",
		"2ss": "2ss", "2tt": "2tt",

		"ta1ble": "ta1ble", "rec1ord": "rec1ord", "pre1sent": "pre1sent",
		"ex1am": "ex1am", "exam1ple": "exam1ple", "con1test": "con1test",
		"pro1ject": "pro1ject", "in1for": "in1for", "com1put": "com1put",
		"al1go": "al1go", "hyph1en": "hyph1en", "pat1tern": "pat1tern",
	}
}

// Points returns the byte offsets within word where a hyphen may be
// inserted, using Liang's pattern-priority algorithm: every matching
// pattern votes a priority number on each gap between letters, and a gap
// with an odd maximum priority permits a break there.
func (d *Dictionary) Points(word string) []int {
	if len(word) < d.minLeft+d.minRight {
		return nil
	}

	normalized := "." + strings.ToLower(word) + "."
	priorities := make([]int, len(normalized)+1)

	for pattern := range d.patterns {
		d.applyPattern(normalized, pattern, priorities)
	}

	var points []int
	for i := d.minLeft; i < len(word)-d.minRight; i++ {
		if priorities[i+1]%2 == 1 {
			points = append(points, i)
		}
	}
	return points
}

func (d *Dictionary) applyPattern(word, pattern string, priorities []int) {
	letters := make([]byte, 0, len(pattern))
	numbers := make([]int, len(pattern)+1)
	pos := 0

	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]
		if ch >= '0' && ch <= '9' {
			numbers[pos] = int(ch - '0')
		} else {
			letters = append(letters, ch)
			pos++
		}
	}

	for i := 0; i <= len(word)-len(letters); i++ {
		if string(word[i:i+len(letters)]) == string(letters) {
			for j := 0; j <= len(letters); j++ {
				if numbers[j] > priorities[i+j] {
					priorities[i+j] = numbers[j]
				}
			}
		}
	}
}

// Fragments splits word at every permitted hyphenation point, returning the
// pieces in order (len(result) == len(Points(word))+1). This is the shape
// linebreak.LayoutItemsFromString's hyphenate callback expects: one Box per
// fragment joined by a flagged Penalty.
func (d *Dictionary) Fragments(word string) []string {
	points := d.Points(word)
	if len(points) == 0 {
		return []string{word}
	}
	fragments := make([]string, 0, len(points)+1)
	last := 0
	for _, p := range points {
		fragments = append(fragments, word[last:p])
		last = p
	}
	fragments = append(fragments, word[last:])
	return fragments
}

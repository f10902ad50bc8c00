// Package segment tokenizes plain text into whitespace-delimited words using
// Unicode grapheme clusters (UAX #29) rather than naive byte or rune
// splitting, so a multi-rune grapheme cluster (an emoji with modifiers, a
// combining-mark sequence) never gets torn in half by a token boundary.
package segment

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Words splits text into its non-whitespace tokens, each token a maximal run
// of consecutive non-whitespace grapheme clusters. Punctuation attached to a
// word with no intervening whitespace (a trailing comma, a closing
// parenthesis) stays part of that word's token, matching plain
// whitespace-delimited tokenization rather than UAX #29 word-boundary rules.
func Words(text string) []string {
	var words []string
	var sb strings.Builder
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		if isWhitespace(cluster) {
			if sb.Len() > 0 {
				words = append(words, sb.String())
				sb.Reset()
			}
			continue
		}
		sb.WriteString(cluster)
	}
	if sb.Len() > 0 {
		words = append(words, sb.String())
	}
	return words
}

func isWhitespace(cluster string) bool {
	for _, r := range cluster {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
		default:
			return false
		}
	}
	return true
}

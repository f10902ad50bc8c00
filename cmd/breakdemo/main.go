// Command breakdemo wraps plain text at a fixed column width using the
// Knuth-Plass optimizer, printing one wrapped line per output line.
//
// Usage:
//
//	breakdemo -width 40 -hyphenate input.txt
//	echo "some paragraph" | breakdemo -width 40
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SCKelemen/linebreak"
	"github.com/SCKelemen/linebreak/hyphen"
	"github.com/SCKelemen/linebreak/segment"
)

func main() {
	width := flag.Int("width", 40, "target line width, in monospace character cells")
	useHyphenation := flag.Bool("hyphenate", false, "allow hyphenation at Liang pattern breakpoints")
	maxRatio := flag.Float64("max-ratio", 0, "hard cap on adjustment ratio (0 means unbounded)")
	flag.Parse()

	if err := run(*width, *useHyphenation, *maxRatio, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(width int, useHyphenation bool, maxRatio float64, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	var dict *hyphen.Dictionary
	if useHyphenation {
		dict = hyphen.English()
	}

	items, boxText := buildItems(text, dict)

	opts := linebreak.DefaultOptions()
	if maxRatio > 0 {
		opts.MaxAdjustmentRatio = &maxRatio
	}

	lineWidth := linebreak.Constant(float64(width))
	breakpoints, err := linebreak.BreakLines(items, lineWidth, opts)
	if err != nil {
		if errors.Is(err, linebreak.ErrMaxAdjustmentExceeded) {
			return fmt.Errorf("no layout fits width %d within the given max-ratio: %w", width, err)
		}
		return err
	}

	printLines(items, boxText, breakpoints)
	return nil
}

// buildItems mirrors linebreak.LayoutItemsFromString but keeps the source
// text of each box alongside it, so the demo can print the words it wrapped
// instead of just their abstract widths.
func buildItems(text string, dict *hyphen.Dictionary) ([]linebreak.Item, []string) {
	words := segment.Words(text)
	var items []linebreak.Item
	var boxText []string

	for i, word := range words {
		if i > 0 {
			items = append(items, linebreak.Glue(1, 1.5, 0))
			boxText = append(boxText, "")
		}
		var fragments []string
		if dict != nil {
			fragments = dict.Fragments(word)
		}
		if len(fragments) <= 1 {
			items = append(items, linebreak.Box(float64(len([]rune(word)))))
			boxText = append(boxText, word)
			continue
		}
		for j, frag := range fragments {
			if j > 0 {
				items = append(items, linebreak.Penalty(1, 10, true))
				boxText = append(boxText, "-")
			}
			items = append(items, linebreak.Box(float64(len([]rune(frag)))))
			boxText = append(boxText, frag)
		}
	}
	items = append(items, linebreak.Glue(0, linebreak.MaxCost, 0), linebreak.ForcedBreak())
	boxText = append(boxText, "", "")
	return items, boxText
}

func readInput(args []string) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func printLines(items []linebreak.Item, boxText []string, breakpoints []int) {
	var b strings.Builder
	start := 0
	for _, bp := range breakpoints[1:] {
		b.Reset()
		for i := start; i <= bp && i < len(boxText); i++ {
			switch {
			case items[i].Kind == linebreak.KindGlue && i != start && i != bp:
				b.WriteString(" ")
			case items[i].Kind == linebreak.KindPenalty && i != bp:
			default:
				b.WriteString(boxText[i])
			}
		}
		fmt.Println(strings.TrimRight(b.String(), " "))
		start = bp + 1
	}
}

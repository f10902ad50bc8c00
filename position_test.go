package linebreak

import "testing"

func TestPositionItemsNoBreakpoints(t *testing.T) {
	got, err := PositionItems(nil, Constant(10), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("PositionItems(no breakpoints) = %v, want empty", got)
	}
}

func TestPositionItemsSingleLine(t *testing.T) {
	items := []Item{Box(10), Glue(5, 5, 5), Box(10), ForcedBreak()}
	placed, err := PositionItems(items, Constant(30), []int{0, 3}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// ratio = 1 (diff 5 over stretch 5): the glue's 5-unit preferred width
	// grows to 5+1*5=10, so the second box starts at 20. The forced break
	// (zero width) is not emitted.
	want := []PositionedItem{
		{Item: 0, Line: 0, XOffset: 0, Width: 10},
		{Item: 2, Line: 0, XOffset: 20, Width: 10},
	}
	if len(placed) != len(want) {
		t.Fatalf("PositionItems = %+v, want %+v", placed, want)
	}
	for i := range want {
		if placed[i] != want[i] {
			t.Errorf("placed[%d] = %+v, want %+v", i, placed[i], want[i])
		}
	}
}

func TestPositionItemsIncludeGlue(t *testing.T) {
	items := []Item{Box(10), Glue(5, 0, 0), Box(10), Glue(5, 0, 0), Box(10), ForcedBreak()}
	placed, err := PositionItems(items, Constant(100), []int{0, 5}, &PositionOptions{IncludeGlue: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var glueCount int
	for _, p := range placed {
		if items[p.Item].Kind == KindGlue {
			glueCount++
		}
	}
	// The line spans items 0..5 and ends at the forced break (index 5), so
	// the glues at indices 1 and 3 are both interior and both emitted.
	if glueCount != 2 {
		t.Errorf("glueCount = %d, want 2 (both interior glues emitted)", glueCount)
	}
}

func TestPositionItemsHyphenVisible(t *testing.T) {
	items := []Item{Box(10), Penalty(2, 10, true), Box(10), ForcedBreak()}
	placed, err := PositionItems(items, Constant(100), []int{0, 1}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(placed) != 2 {
		t.Fatalf("PositionItems = %+v, want 2 records (box + hyphen penalty)", placed)
	}
	if placed[1].Item != 1 || placed[1].Width != 2 {
		t.Errorf("hyphen penalty record = %+v, want {Item:1 Width:2 ...}", placed[1])
	}
}

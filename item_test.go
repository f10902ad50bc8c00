package linebreak

import "testing"

func TestIsLegalBreak(t *testing.T) {
	items := []Item{
		Box(10),
		Glue(5, 2, 1),
		Box(10),
		Penalty(0, 0, false),
		Penalty(0, MaxCost, false),
	}

	cases := []struct {
		index int
		want   bool
	}{
		{0, false}, // box
		{1, true},  // glue after box
		{2, false}, // box
		{3, true},  // penalty below MaxCost
		{4, false}, // forbidden penalty
	}

	for _, c := range cases {
		if got := isLegalBreak(items, c.index); got != c.want {
			t.Errorf("isLegalBreak(items, %d) = %v, want %v", c.index, got, c.want)
		}
	}
}

func TestGlueNotLegalBreakAtStart(t *testing.T) {
	items := []Item{Glue(5, 2, 1), Box(10)}
	if isLegalBreak(items, 0) {
		t.Error("leading glue should not be a legal break")
	}
}

func TestForcedBreak(t *testing.T) {
	fb := ForcedBreak()
	if !fb.isForced() {
		t.Error("ForcedBreak() should report isForced() true")
	}
	if fb.Cost != MinCost {
		t.Errorf("ForcedBreak().Cost = %v, want %v", fb.Cost, MinCost)
	}
}

func TestConstantLineWidths(t *testing.T) {
	c := Constant(72)
	for _, line := range []int{0, 1, 100} {
		if got := c.At(line); got != 72 {
			t.Errorf("Constant(72).At(%d) = %v, want 72", line, got)
		}
	}
}

func TestVaryingLineWidths(t *testing.T) {
	v := Varying{10, 20, 30}
	cases := map[int]float64{-1: 10, 0: 10, 1: 20, 2: 30, 3: 30, 100: 30}
	for line, want := range cases {
		if got := v.At(line); got != want {
			t.Errorf("Varying.At(%d) = %v, want %v", line, got, want)
		}
	}

	var empty Varying
	if got := empty.At(0); got != 0 {
		t.Errorf("empty Varying.At(0) = %v, want 0", got)
	}
}

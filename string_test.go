package linebreak

import "testing"

func unitMeasure(r rune) float64 { return 1 }

func TestLayoutItemsFromStringEmpty(t *testing.T) {
	items := LayoutItemsFromString("   ", unitMeasure, nil)
	if len(items) != 0 {
		t.Errorf("LayoutItemsFromString(whitespace only) = %v, want empty", items)
	}
}

func TestLayoutItemsFromStringShape(t *testing.T) {
	items := LayoutItemsFromString("one two", unitMeasure, nil)
	// box("one"), glue, box("two"), glue(finishing), forcedBreak
	if len(items) != 5 {
		t.Fatalf("len(items) = %d, want 5: %+v", len(items), items)
	}
	if items[0].Kind != KindBox || items[0].Width != 3 {
		t.Errorf("items[0] = %+v, want Box(3)", items[0])
	}
	if items[1].Kind != KindGlue {
		t.Errorf("items[1] = %+v, want Glue", items[1])
	}
	if items[2].Kind != KindBox || items[2].Width != 3 {
		t.Errorf("items[2] = %+v, want Box(3)", items[2])
	}
	if items[3].Kind != KindGlue || items[3].Stretch != MaxCost {
		t.Errorf("items[3] = %+v, want finishing Glue with Stretch=MaxCost", items[3])
	}
	if !items[4].isForced() {
		t.Errorf("items[4] = %+v, want a forced break", items[4])
	}
}

func TestLayoutItemsFromStringSpaceGlueParameters(t *testing.T) {
	items := LayoutItemsFromString("a b", unitMeasure, nil)
	spaceGlue := items[1]
	if spaceGlue.Width != 1 {
		t.Errorf("space glue width = %v, want 1", spaceGlue.Width)
	}
	if spaceGlue.Stretch != 1.5 {
		t.Errorf("space glue stretch = %v, want 1.5", spaceGlue.Stretch)
	}
	if spaceGlue.Shrink != 0 {
		t.Errorf("space glue shrink = %v, want 0 (max(0, 1-2))", spaceGlue.Shrink)
	}
}

func TestLayoutItemsFromStringHyphenation(t *testing.T) {
	hyphenate := func(word string) []string {
		if word == "hyphenated" {
			return []string{"hy", "phen", "ated"}
		}
		return nil
	}
	items := LayoutItemsFromString("hyphenated", unitMeasure, hyphenate)
	var boxes, penalties int
	for _, it := range items {
		switch it.Kind {
		case KindBox:
			boxes++
		case KindPenalty:
			if it.Cost != MinCost {
				penalties++
				if !it.Flagged {
					t.Error("hyphenation penalty should be flagged")
				}
				if it.Cost != hyphenPenaltyCost {
					t.Errorf("hyphenation penalty cost = %v, want %v", it.Cost, hyphenPenaltyCost)
				}
			}
		}
	}
	if boxes != 3 {
		t.Errorf("boxes = %d, want 3 fragments", boxes)
	}
	if penalties != 2 {
		t.Errorf("hyphenation penalties = %d, want 2", penalties)
	}
}

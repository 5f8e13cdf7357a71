package visualizer

import "testing"

func TestRoundedScaleHalfUp(t *testing.T) {
	cases := []struct {
		value, total uint64
		scale        int
		want         int
	}{
		{1, 11, 100, 9},
		{2, 11, 100, 18},
		{3, 11, 100, 27},
		{1024, 25600, 100, 4},
		{0, 0, 100, 0},
	}
	for _, c := range cases {
		got := roundedScale(c.value, c.total, c.scale)
		if got != c.want {
			t.Errorf("roundedScale(%d,%d,%d) = %d, want %d", c.value, c.total, c.scale, got, c.want)
		}
	}
}

func TestRenderBarWidthInvariant(t *testing.T) {
	levels := barLevels{l0: 3, l1: 5, l2: 8, l3: 10}
	bar, err := renderBar(levels, 10, AlignLeft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len([]rune(bar)) != 10 {
		t.Errorf("len(bar) = %d, want 10", len([]rune(bar)))
	}
}

func TestRenderBarRejectsInvalidLevels(t *testing.T) {
	levels := barLevels{l0: 8, l1: 5, l2: 8, l3: 10} // l1 < l0, invalid
	if _, err := renderBar(levels, 10, AlignLeft); err == nil {
		t.Error("expected an error for a negative segment width")
	}
}

func TestPercentMatchesRoundedScale(t *testing.T) {
	if got := Percent(1, 11); got != 9 {
		t.Errorf("Percent(1, 11) = %d, want 9", got)
	}
	if got := Percent(0, 0); got != 0 {
		t.Errorf("Percent(0, 0) = %d, want 0", got)
	}
}

func TestSingleLevelBarFillsProportionally(t *testing.T) {
	bar, err := SingleLevelBar(5, 10, 10, AlignLeft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	runes := []rune(bar)
	if len(runes) != 10 {
		t.Fatalf("len(bar) = %d, want 10", len(runes))
	}
	filled, empty := 0, 0
	for _, r := range runes {
		switch r {
		case '█':
			filled++
		case ' ':
			empty++
		}
	}
	if filled != 5 || empty != 5 {
		t.Errorf("got %d filled, %d empty; want 5 and 5", filled, empty)
	}
}

func TestSingleLevelBarZeroTotalRendersEmpty(t *testing.T) {
	bar, err := SingleLevelBar(0, 0, 10, AlignLeft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range bar {
		if r != ' ' {
			t.Errorf("expected an all-empty bar for a zero total, got %q", bar)
			break
		}
	}
}

func TestRenderBarAlignment(t *testing.T) {
	levels := barLevels{l0: 4, l1: 4, l2: 4, l3: 4}
	left, err := renderBar(levels, 10, AlignLeft)
	if err != nil {
		t.Fatal(err)
	}
	right, err := renderBar(levels, 10, AlignRight)
	if err != nil {
		t.Fatal(err)
	}
	if left == right {
		t.Fatal("expected left/right alignment to differ when the filled segment isn't the full width")
	}
	if []rune(left)[0] != '█' {
		t.Errorf("left-aligned bar should start with the heaviest glyph, got %q", left)
	}
	if []rune(right)[len([]rune(right))-1] != '█' {
		t.Errorf("right-aligned bar should end with the heaviest glyph, got %q", right)
	}
}

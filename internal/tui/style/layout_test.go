package style

import "testing"

func TestContentHeight(t *testing.T) {
	tests := []struct {
		w, h int
		want int
	}{
		{80, 24, 21},
		{10, 3, 1},
		{10, 2, 1}, // negative, clamped to 1
		{10, 0, 1},
		{80, 50, 47},
	}

	for _, tt := range tests {
		l := NewLayout(tt.w, tt.h)
		if got := l.ContentHeight(); got != tt.want {
			t.Errorf("NewLayout(%d,%d).ContentHeight() = %d, want %d", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestBarWidth(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{10, 5},   // 10-21 negative, clamped to 5
		{30, 9},   // 30-21 = 9
		{80, 40},  // 80-21 = 59, clamped to 40
		{200, 40}, // clamped to 40
	}

	for _, tt := range tests {
		l := NewLayout(tt.width, 24)
		if got := l.BarWidth(); got != tt.want {
			t.Errorf("NewLayout(%d,24).BarWidth() = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestNameWidthNeverNegative(t *testing.T) {
	for _, w := range []int{10, 30, 80, 200} {
		l := NewLayout(w, 24)
		if got := l.NameWidth(); got < 1 {
			t.Errorf("NewLayout(%d,24).NameWidth() = %d, want >= 1", w, got)
		}
	}

	l := NewLayout(80, 24)
	total := l.NameWidth() + l.BarWidth() + rowOverhead
	if total != l.ContentWidth() {
		t.Errorf("NameWidth(%d) + BarWidth(%d) + overhead(%d) = %d, want ContentWidth %d",
			l.NameWidth(), l.BarWidth(), rowOverhead, total, l.ContentWidth())
	}
}

func TestFullWidth(t *testing.T) {
	if got := FullWidth("hi", 5); got != "hi   " {
		t.Errorf("FullWidth(\"hi\", 5) = %q, want %q", got, "hi   ")
	}
	if got := FullWidth("hello", 5); got != "hello" {
		t.Errorf("FullWidth(\"hello\", 5) = %q, want %q", got, "hello")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(\"short\", 10) = %q, want unchanged", got)
	}
	got := Truncate("a very long file name", 10)
	if len([]rune(got)) > 10 {
		t.Errorf("Truncate result %q exceeds width 10", got)
	}
	if got[len(got)-3:] != "..." {
		t.Errorf("Truncate result %q should end in ...", got)
	}
}

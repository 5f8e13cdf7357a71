package style

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Layout manages the arrangement of the browser's rows within the
// terminal dimensions reported by the last tea.WindowSizeMsg.
type Layout struct {
	Width  int
	Height int
}

// NewLayout creates a layout for the given terminal dimensions.
func NewLayout(width, height int) Layout {
	return Layout{Width: width, Height: height}
}

// ContentHeight returns the number of rows available for the item list:
// total height minus header, breadcrumb and status bar.
func (l Layout) ContentHeight() int {
	h := l.Height - 3
	if h < 1 {
		h = 1
	}
	return h
}

// ContentWidth returns the width available for one row.
func (l Layout) ContentWidth() int {
	if l.Width < 20 {
		return 20
	}
	return l.Width
}

// rowOverhead is the fixed-width portion of a row: "  " indicator(2) +
// pct(4) + " ["(2) + "] "(2) + " "(1) + size(10).
const rowOverhead = 21

// BarWidth returns the width for each row's proportion bar.
func (l Layout) BarWidth() int {
	bar := l.ContentWidth() - rowOverhead
	if bar < 5 {
		bar = 5
	}
	if bar > 40 {
		bar = 40
	}
	return bar
}

// NameWidth returns the width available for a row's name.
func (l Layout) NameWidth() int {
	w := l.ContentWidth() - rowOverhead - l.BarWidth()
	if w < 8 {
		w = 8
	}
	return w
}

// FullWidth pads s with trailing spaces to exactly width visual columns,
// measuring with x/ansi so escape sequences from styled segments don't
// count against the target width. A string already at or beyond width is
// returned unchanged.
func FullWidth(s string, width int) string {
	visLen := ansi.StringWidth(s)
	if visLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visLen)
}

// Truncate shortens s to at most width visual columns, replacing the cut
// suffix with "...".
func Truncate(s string, width int) string {
	if ansi.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return strings.Repeat(".", width)
	}
	return ansi.Truncate(s, width, "...")
}

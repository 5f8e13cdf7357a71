package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/dutree/internal/filekind"
	"github.com/sadopc/dutree/internal/size"
	"github.com/sadopc/dutree/internal/tree"
	"github.com/sadopc/dutree/internal/tui/style"
	"github.com/sadopc/dutree/internal/visualizer"
)

// TreeView renders the current directory's children as a scrollable,
// cursor-navigable list, one row per child, each barred against the
// directory's own total using the same rounding the batch visualizer
// uses for a full tree.
type TreeView struct {
	Theme  style.Theme
	Layout style.Layout
	Items  []*tree.Node
	Cursor int
	Offset int
	Total  uint64
	Align  visualizer.Alignment
	Format size.Format
}

// Render returns the rendered list, one line per visible row, padded to
// fill the layout's content height.
func (tv *TreeView) Render() string {
	width := tv.Layout.ContentWidth()

	if len(tv.Items) == 0 {
		empty := lipgloss.NewStyle().Foreground(tv.Theme.TextMuted).Render("  (empty directory)")
		return style.FullWidth(empty, width)
	}

	contentHeight := tv.Layout.ContentHeight()
	barWidth := tv.Layout.BarWidth()
	nameWidth := tv.Layout.NameWidth()

	start := tv.Offset
	end := start + contentHeight
	if end > len(tv.Items) {
		end = len(tv.Items)
	}

	var lines []string
	for i := start; i < end; i++ {
		lines = append(lines, tv.renderRow(tv.Items[i], i == tv.Cursor, barWidth, nameWidth, width))
	}
	for len(lines) < contentHeight {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func (tv *TreeView) renderRow(item *tree.Node, selected bool, barWidth, nameWidth, totalWidth int) string {
	value := item.Size().Uint64()
	pct := visualizer.Percent(value, tv.Total)

	bar, err := visualizer.SingleLevelBar(value, tv.Total, barWidth, tv.Align)
	if err != nil {
		bar = strings.Repeat(" ", barWidth)
	}
	ratio := 0.0
	if tv.Total > 0 {
		ratio = float64(value) / float64(tv.Total)
	}
	bar = lipgloss.NewStyle().Foreground(tv.Theme.BarColor(ratio)).Render(bar)

	name := item.Name()
	if item.IsDir() {
		name += "/"
	}
	name = style.Truncate(name, nameWidth)

	indicator := "  "
	if selected {
		indicator = lipgloss.NewStyle().Foreground(tv.Theme.Primary).Bold(true).Render(" >")
	}

	var nameStyled string
	switch {
	case item.IsDir():
		nameStyled = tv.Theme.DirName.Render(name)
	default:
		cat := filekind.Classify(item.Name())
		nameStyled = style.CategoryColor(cat.Color()).Render(name)
	}

	pctStyled := tv.Theme.PercentText.Render(fmt.Sprintf("%3d%%", pct))
	sizeStyled := tv.Theme.SizeText.Width(10).Render(item.Size().Display(tv.Format))

	row := fmt.Sprintf("%s%s [%s] %s %s", indicator, pctStyled, bar, nameStyled, sizeStyled)
	row = style.FullWidth(row, totalWidth)

	if selected {
		return tv.Theme.SelectedRow.Width(totalWidth).Render(row)
	}
	return row
}

// EnsureVisible adjusts Offset to keep Cursor within the visible window.
func (tv *TreeView) EnsureVisible() {
	h := tv.Layout.ContentHeight()
	if tv.Cursor < tv.Offset {
		tv.Offset = tv.Cursor
	}
	if tv.Cursor >= tv.Offset+h {
		tv.Offset = tv.Cursor - h + 1
	}
	if tv.Offset < 0 {
		tv.Offset = 0
	}
}

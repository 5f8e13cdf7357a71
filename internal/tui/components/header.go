package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/dutree/internal/size"
	"github.com/sadopc/dutree/internal/tree"
	"github.com/sadopc/dutree/internal/tui/style"
)

// RenderHeader renders the top bar: program name, root name and total
// measured size, plus the quantity label the walker was run under
// (apparent size, block size, or block count).
func RenderHeader(theme style.Theme, root *tree.Node, format size.Format, quantityLabel string, width int) string {
	if root == nil || width < 10 {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Render(" dutree")
	stats := lipgloss.NewStyle().Foreground(theme.TextMuted).
		Render(fmt.Sprintf("%s (%s) ", root.Size().Display(format), quantityLabel))

	titleW, statsW := lipgloss.Width(title), lipgloss.Width(stats)
	nameMaxW := width - titleW - statsW - 3
	name := root.Name()
	if nameMaxW > 5 {
		name = style.Truncate(name, nameMaxW)
	} else {
		name = ""
	}
	nameStyled := lipgloss.NewStyle().Foreground(theme.TextPrimary).Render("  " + name)

	gap := width - titleW - lipgloss.Width(nameStyled) - statsW
	if gap < 1 {
		gap = 1
	}
	line := title + nameStyled + strings.Repeat(" ", gap) + stats
	return theme.HeaderStyle.Width(width).Render(line)
}

// RenderBreadcrumb renders the path from root to the current directory.
// names is the ordered list of directory names from root (names[0]) down
// to the current directory (names[len-1]).
func RenderBreadcrumb(theme style.Theme, names []string, width int) string {
	if len(names) == 0 {
		return ""
	}

	sep := lipgloss.NewStyle().Foreground(theme.TextMuted).Render(" > ")
	parts := make([]string, len(names))
	for i, n := range names {
		s := lipgloss.NewStyle().Foreground(theme.TextMuted)
		if i == len(names)-1 {
			s = lipgloss.NewStyle().Foreground(theme.TextPrimary).Bold(true)
		}
		parts[i] = s.Render(n)
	}

	line := " " + strings.Join(parts, sep)
	if lipgloss.Width(line) > width && len(parts) > 2 {
		ellipsis := lipgloss.NewStyle().Foreground(theme.TextMuted).Render("...")
		line = " " + ellipsis + sep + strings.Join(parts[len(parts)-2:], sep)
	}
	return theme.BreadcrumbStyle.Width(width).Render(line)
}

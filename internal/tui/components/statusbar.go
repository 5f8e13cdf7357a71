package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/dutree/internal/tui/style"
)

// StatusInfo holds the fields the status bar needs to render one frame.
type StatusInfo struct {
	ItemCount int
	SortLabel string
	Align     string
	ErrorMsg  string
}

// RenderStatusBar renders the bottom status line.
func RenderStatusBar(theme style.Theme, info StatusInfo, width int) string {
	if info.ErrorMsg != "" {
		line := " " + theme.ErrorText.Bold(true).Render(info.ErrorMsg)
		return theme.StatusBarStyle.Width(width).Render(style.FullWidth(line, width))
	}

	left := fmt.Sprintf(" %d items | sort: %s | bar: %s", info.ItemCount, info.SortLabel, info.Align)

	hints := []struct{ key, desc string }{
		{"?", "help"},
		{"q", "quit"},
	}
	var rightParts []string
	for _, h := range hints {
		k := theme.HelpKey.Render(h.key)
		d := theme.HelpDesc.Render(" " + h.desc)
		rightParts = append(rightParts, k+d)
	}
	right := strings.Join(rightParts, "  ") + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right
	return theme.StatusBarStyle.Width(width).Render(line)
}

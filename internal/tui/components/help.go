package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/dutree/internal/tui/style"
)

// RenderHelp renders the help overlay, centered over the full frame.
func RenderHelp(theme style.Theme, width, height int) string {
	boxWidth := 50
	if boxWidth > width-4 {
		boxWidth = width - 4
	}

	sections := []struct {
		name  string
		binds []struct{ key, desc string }
	}{
		{
			name: "Navigation",
			binds: []struct{ key, desc string }{
				{"j/k", "Move up/down"},
				{"l/enter", "Enter directory"},
				{"h/backspace", "Go to parent"},
			},
		},
		{
			name: "Sorting & display",
			binds: []struct{ key, desc string }{
				{"s", "Sort by size (desc)"},
				{"n", "Sort by name"},
				{"a", "Flip bar alignment"},
			},
		},
		{
			name: "General",
			binds: []struct{ key, desc string }{
				{"?", "Toggle this help"},
				{"q / esc", "Quit"},
			},
		},
	}

	var lines []string
	lines = append(lines, theme.ModalTitle.Render("  dutree - Keyboard Shortcuts"), "")
	for _, sec := range sections {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).Render("  "+sec.name))
		for _, b := range sec.binds {
			key := theme.HelpKey.Width(14).Render("    " + b.key)
			desc := theme.HelpDesc.Render(b.desc)
			lines = append(lines, fmt.Sprintf("%s %s", key, desc))
		}
		lines = append(lines, "")
	}
	lines = append(lines, theme.HelpDesc.Render("  Press ? or Esc to close"))

	box := theme.ModalStyle.Width(boxWidth).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

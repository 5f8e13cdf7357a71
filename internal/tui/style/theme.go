// Package style holds the interactive browser's color theme and layout
// math.
package style

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme holds the styled components the browser uses to render a frame.
type Theme struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Error   lipgloss.Color

	TextPrimary lipgloss.Color
	TextMuted   lipgloss.Color
	BgMedium    lipgloss.Color
	BgSelected  lipgloss.Color

	GradientStart lipgloss.Color
	GradientEnd   lipgloss.Color

	HeaderStyle     lipgloss.Style
	BreadcrumbStyle lipgloss.Style
	StatusBarStyle  lipgloss.Style
	SelectedRow     lipgloss.Style
	DirName         lipgloss.Style
	FileName        lipgloss.Style
	SizeText        lipgloss.Style
	PercentText     lipgloss.Style
	ErrorText       lipgloss.Style
	HelpKey         lipgloss.Style
	HelpDesc        lipgloss.Style
	ModalStyle      lipgloss.Style
	ModalTitle      lipgloss.Style
}

// DefaultTheme returns the browser's default dark theme.
func DefaultTheme() Theme {
	t := Theme{
		Primary: lipgloss.Color("#7B2FBE"),
		Accent:  lipgloss.Color("#61AFEF"),
		Error:   lipgloss.Color("#E06C75"),

		TextPrimary: lipgloss.Color("#CDD6F4"),
		TextMuted:   lipgloss.Color("#6C7086"),
		BgMedium:    lipgloss.Color("#282A36"),
		BgSelected:  lipgloss.Color("#3E4451"),

		GradientStart: lipgloss.Color("#98C379"), // green: mostly empty
		GradientEnd:   lipgloss.Color("#E06C75"), // red: fills the bar
	}

	t.HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Background(t.BgMedium)
	t.BreadcrumbStyle = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.StatusBarStyle = lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.BgMedium)
	t.SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(t.BgSelected)
	t.DirName = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.FileName = lipgloss.NewStyle().Foreground(t.TextPrimary)
	t.SizeText = lipgloss.NewStyle().Foreground(t.TextMuted).Align(lipgloss.Right)
	t.PercentText = lipgloss.NewStyle().Foreground(t.TextMuted).Width(4).Align(lipgloss.Right)
	t.ErrorText = lipgloss.NewStyle().Foreground(t.Error)
	t.HelpKey = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	t.HelpDesc = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.ModalStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Primary).Padding(1, 2).Background(t.BgMedium)
	t.ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Padding(0, 0, 1, 0)

	return t
}

// CategoryColor converts a filekind hex color into a lipgloss style used
// to tint a row's name by its coarse file-type category.
func CategoryColor(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// BarColor returns the gradient color for a bar segment at ratio (0..1)
// of the way from GradientStart to GradientEnd, used to tint a row's
// proportion bar by how much of its parent it consumes.
func (t Theme) BarColor(ratio float64) lipgloss.Color {
	if ratio <= 0 {
		return t.GradientStart
	}
	if ratio >= 1 {
		return t.GradientEnd
	}
	c1, _ := colorful.Hex(string(t.GradientStart))
	c2, _ := colorful.Hex(string(t.GradientEnd))
	return lipgloss.Color(c1.BlendLab(c2, ratio).Hex())
}

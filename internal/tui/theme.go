package tui

import "github.com/charmbracelet/lipgloss"

// Theme 终端画廊配色
type Theme struct {
	Text   string
	Muted  string
	Accent string
	Border string
	Modal  string
}

// defaultTheme 与图形界面一致的暖色调
func defaultTheme() Theme {
	return Theme{
		Text:   "#EDE6DA",
		Muted:  "#8A8178",
		Accent: "#C8A26B",
		Border: "#5C473A",
		Modal:  "#1E1A17",
	}
}

// Styles 由 Theme 派生的 lipgloss 样式
type Styles struct {
	Title    lipgloss.Style
	Status   lipgloss.Style
	Track    lipgloss.Style
	Muted    lipgloss.Style
	Modal    lipgloss.Style
	Label    lipgloss.Style
	Control  lipgloss.Style
	HelpText lipgloss.Style
}

// Styles 返回该配色对应的样式
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Track: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Background(lipgloss.Color(t.Modal)).
			Padding(0, 1),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),
		Control: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),
		HelpText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
	}
}

package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Grid    GridTheme
	Sidebar SidebarTheme
	Footer  FooterTheme
	Modal   ModalTheme
}

// GridTheme styles the month grid.
type GridTheme struct {
	Title       lipgloss.Style
	Weekday     lipgloss.Style
	Day         lipgloss.Style
	Placeholder lipgloss.Style
	Today       lipgloss.Style
	Selected    lipgloss.Style
	Chip        lipgloss.Style
	More        lipgloss.Style
}

// SidebarTheme styles the group list.
type SidebarTheme struct {
	Frame   lipgloss.Style
	Title   lipgloss.Style
	Item    lipgloss.Style
	Active  lipgloss.Style
	Hidden  lipgloss.Style
	Swatch  lipgloss.Style
	Focused lipgloss.Style
}

// FooterTheme groups styles used by the bottom input and status lines.
type FooterTheme struct {
	Prompt lipgloss.Style
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// ModalTheme styles centered dialogs.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Label lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	return Theme{
		Grid: GridTheme{
			Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Weekday:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Day:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			Today:       lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("212")),
			Selected:    lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
			Chip:        lipgloss.NewStyle(),
			More:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		},
		Sidebar: SidebarTheme{
			Frame:   frame.Padding(0, 1),
			Title:   lipgloss.NewStyle().Bold(true),
			Item:    lipgloss.NewStyle(),
			Active:  lipgloss.NewStyle().Reverse(true),
			Hidden:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
			Swatch:  lipgloss.NewStyle(),
			Focused: frame.Padding(0, 1).BorderForeground(lipgloss.Color("212")),
		},
		Footer: FooterTheme{
			Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Label: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Body:  lipgloss.NewStyle(),
		},
	}
}

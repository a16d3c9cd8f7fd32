package tui

import (
	"github.com/charmbracelet/lipgloss"

	"sutanpu/internal/themes"
)

// cellWidth is the rendered width of one calendar column. Four emoji
// stamps occupy eight columns, so anything narrower breaks alignment.
const cellWidth = 9

// Styles is the lipgloss style set derived from the active theme. It is
// rebuilt whenever the user picks a new theme.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style

	DayHeader    lipgloss.Style
	DayHeaderSun lipgloss.Style
	DayHeaderSat lipgloss.Style

	Day       lipgloss.Style
	DaySun    lipgloss.Style
	DaySat    lipgloss.Style
	DayToday  lipgloss.Style
	DayCursor lipgloss.Style
	DayBlank  lipgloss.Style

	HolidayName lipgloss.Style

	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Badge      lipgloss.Style

	ModalBox   lipgloss.Style
	ModalTitle lipgloss.Style
	ModalHelp  lipgloss.Style

	StatusBar lipgloss.Style
	Help      lipgloss.Style
	Ok        lipgloss.Style
	Danger    lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(t themes.Theme) Styles {
	day := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	header := lipgloss.NewStyle().Bold(true).Width(cellWidth).Align(lipgloss.Center)

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(t.Main),
		Muted:    lipgloss.NewStyle().Foreground(t.TextMuted),
		Accent:   lipgloss.NewStyle().Foreground(t.Main),

		DayHeader:    header.Foreground(t.TextMuted),
		DayHeaderSun: header.Foreground(t.Sun),
		DayHeaderSat: header.Foreground(t.Sat),

		Day:       day.Foreground(t.TextPrimary),
		DaySun:    day.Foreground(t.Sun),
		DaySat:    day.Foreground(t.Sat),
		DayToday:  day.Bold(true).Foreground(t.TextOnMain).Background(t.Main),
		DayCursor: day.Bold(true).Reverse(true),
		DayBlank:  day.Foreground(t.TextMuted),

		HolidayName: lipgloss.NewStyle().Foreground(t.Sun),

		Selected:   lipgloss.NewStyle().Bold(true).Foreground(t.TextOnMain).Background(t.Main),
		Unselected: lipgloss.NewStyle().Foreground(t.TextPrimary),
		Badge:      lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Sub),

		ModalBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.FocusBorder).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary),
		ModalHelp:  lipgloss.NewStyle().Foreground(t.TextMuted),

		StatusBar: lipgloss.NewStyle().
			Foreground(t.TextMuted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(t.Border),
		Help:   lipgloss.NewStyle().Foreground(t.TextMuted),
		Ok:     lipgloss.NewStyle().Bold(true).Foreground(t.Main),
		Danger: lipgloss.NewStyle().Bold(true).Foreground(t.Sun),
	}
}

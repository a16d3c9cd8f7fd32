package themes

import "github.com/charmbracelet/lipgloss"

// Theme is one selectable color scheme. The roles mirror what the views
// need: an accent for today and buttons, a sub accent for badges, text
// tiers, and the Sunday/Saturday weekday colors.
type Theme struct {
	ID    string
	Name  string
	Emoji string

	Main        lipgloss.Color
	Sub         lipgloss.Color
	TextPrimary lipgloss.Color
	TextMuted   lipgloss.Color
	TextOnMain  lipgloss.Color
	Sun         lipgloss.Color
	Sat         lipgloss.Color
	Border      lipgloss.Color
	FocusBorder lipgloss.Color
}

// DefaultID is the theme selected on first run.
const DefaultID = "sakura"

// Catalog is the fixed, ordered theme list.
var Catalog = []Theme{
	{
		ID: "sakura", Name: "さくらもち", Emoji: "🌸",
		Main: "#FFB7C5", Sub: "#B2EBD8",
		TextPrimary: "#5C4A4A", TextMuted: "#7A6363", TextOnMain: "#5C4A4A",
		Sun: "#BE2D52", Sat: "#2E5FA3",
		Border: "#FFB7C5", FocusBorder: "#F0567A",
	},
	{
		ID: "goma", Name: "黒ゴマだんご", Emoji: "🖤",
		Main: "#2C2C2C", Sub: "#E0E0E0",
		TextPrimary: "#2C2C2C", TextMuted: "#5C5C5C", TextOnMain: "#FFFFFF",
		Sun: "#BE2D52", Sat: "#2E5FA3",
		Border: "#C8C8C8", FocusBorder: "#2C2C2C",
	},
	{
		ID: "matcha", Name: "まっちゃ", Emoji: "🍵",
		Main: "#A8D060", Sub: "#F8F6E8",
		TextPrimary: "#3A5A2A", TextMuted: "#537033", TextOnMain: "#2A4220",
		Sun: "#A0283D", Sat: "#2D5B89",
		Border: "#A8D060", FocusBorder: "#5A8020",
	},
	{
		ID: "soda", Name: "ソーダもち", Emoji: "🧊",
		Main: "#87CEEB", Sub: "#B8DFF5",
		TextPrimary: "#1A3A5C", TextMuted: "#2E5A84", TextOnMain: "#1A3A5C",
		Sun: "#C0324D", Sat: "#2E5FA3",
		Border: "#87CEEB", FocusBorder: "#4BA8D5",
	},
	{
		ID: "lavender", Name: "ラベンダーもち", Emoji: "💜",
		Main: "#C8A8E9", Sub: "#E4D4F4",
		TextPrimary: "#2D1A45", TextMuted: "#5A3B75", TextOnMain: "#2D1A45",
		Sun: "#BE2D52", Sat: "#3B3FA0",
		Border: "#C8A8E9", FocusBorder: "#A070D0",
	},
}

// ByID returns the theme with the given id, falling back to the default
// for unknown ids.
func ByID(id string) Theme {
	for _, t := range Catalog {
		if t.ID == id {
			return t
		}
	}
	return ByID(DefaultID)
}

// IndexOf returns the catalog position of id, or 0 when unknown.
func IndexOf(id string) int {
	for i, t := range Catalog {
		if t.ID == id {
			return i
		}
	}
	return 0
}

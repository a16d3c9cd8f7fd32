package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sutanpu/internal/logs"
	"sutanpu/internal/themes"
)

// ThemePickerModel lets the user pick one of the fixed themes. The choice
// persists the moment it is made.
type ThemePickerModel struct {
	store  *themes.Store
	styles Styles
	cursor int
	width  int
	height int
}

// NewThemePickerModel creates the theme picker with the active theme under
// the cursor
func NewThemePickerModel(store *themes.Store, styles Styles) ThemePickerModel {
	return ThemePickerModel{
		store:  store,
		styles: styles,
		cursor: themes.IndexOf(store.Current().ID),
	}
}

// SetSize updates the view dimensions
func (m *ThemePickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles key events for the theme picker
func (m ThemePickerModel) Update(msg tea.Msg) (ThemePickerModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		return m, func() tea.Msg { return CloseOverlayMsg{} }
	case "j", "down":
		if m.cursor < len(themes.Catalog)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter", " ":
		id := themes.Catalog[m.cursor].ID
		if err := m.store.Select(id); err != nil {
			logs.Logger.Printf("Error saving theme preference: %v", err)
		}
		return m, func() tea.Msg { return ThemeChangedMsg{} }
	}
	return m, nil
}

// View renders the theme picker as a centered modal
func (m ThemePickerModel) View() string {
	var content strings.Builder
	content.WriteString(m.styles.ModalTitle.Render("テーマをえらぶ") + "\n\n")

	activeID := m.store.Current().ID
	for i, t := range themes.Catalog {
		swatch := lipgloss.NewStyle().Foreground(t.Main).Render("██")
		line := fmt.Sprintf("%s %s  %s", t.Emoji, swatch, t.Name)
		if t.ID == activeID {
			line += " " + m.styles.Muted.Render("（いま）")
		}
		if i == m.cursor {
			content.WriteString(m.styles.Selected.Render("▸ ") + line + "\n")
		} else {
			content.WriteString("  " + line + "\n")
		}
	}

	content.WriteString("\n" + m.styles.ModalHelp.Render("[enter] えらぶ  [esc] 閉じる"))

	box := m.styles.ModalBox.Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

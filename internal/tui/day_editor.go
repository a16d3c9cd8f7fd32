package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sutanpu/internal/dates"
	"sutanpu/internal/entries"
	"sutanpu/internal/logs"
	"sutanpu/internal/stamps"
)

// stampCols is the number of stamp buttons per row in the toggle panel.
const stampCols = 5

// DayEditorModel edits one day: toggling stamps over the live catalog and
// writing the note. Stamp toggles persist immediately; the note persists
// when the editor closes.
type DayEditorModel struct {
	key     string
	entries *entries.Store
	catalog *stamps.Catalog
	styles  Styles

	selected []string // working copy of the day's stamp glyphs
	cursor   int      // index into the catalog list
	inNote   bool
	note     textarea.Model
	width    int
	height   int
}

// NewDayEditorModel opens an editor for the given day key.
func NewDayEditorModel(key string, store *entries.Store, catalog *stamps.Catalog, styles Styles) DayEditorModel {
	entry := store.Get(key)

	ta := textarea.New()
	ta.Placeholder = "今日の一言メモ..."
	ta.CharLimit = entries.MaxNoteLen
	ta.SetHeight(3)
	ta.SetValue(entry.Note)

	return DayEditorModel{
		key:      key,
		entries:  store,
		catalog:  catalog,
		styles:   styles,
		selected: entry.Stamps,
		note:     ta,
	}
}

// SetSize updates the view dimensions
func (m *DayEditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	w := width - 8
	if w > 50 {
		w = 50
	}
	m.note.SetWidth(w)
}

// Update handles key events for the day editor
func (m DayEditorModel) Update(msg tea.Msg) (DayEditorModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.inNote {
		switch keyMsg.String() {
		case "esc":
			m.inNote = false
			m.note.Blur()
			return m, nil
		case "tab":
			m.inNote = false
			m.note.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.note, cmd = m.note.Update(msg)
		return m, cmd
	}

	list := m.catalog.List()
	switch keyMsg.String() {
	case "esc", "q":
		return m.close()
	case "tab", "i":
		m.inNote = true
		return m, m.note.Focus()
	case "h", "left":
		if m.cursor > 0 {
			m.cursor--
		}
	case "l", "right":
		if m.cursor < len(list)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor-stampCols >= 0 {
			m.cursor -= stampCols
		}
	case "j", "down":
		if m.cursor+stampCols < len(list) {
			m.cursor += stampCols
		}
	case " ", "enter":
		if m.cursor < len(list) {
			m.toggle(list[m.cursor].Icon)
		}
	}
	return m, nil
}

// toggle flips one glyph and persists the day immediately.
func (m *DayEditorModel) toggle(icon string) {
	m.selected = entries.ToggleStamps(m.selected, icon)
	if err := m.entries.Set(m.key, m.selected, m.note.Value()); err != nil {
		logs.Logger.Printf("Error saving day %s: %v", m.key, err)
	}
}

// close commits the note and leaves the editor.
func (m DayEditorModel) close() (DayEditorModel, tea.Cmd) {
	if err := m.entries.Set(m.key, m.selected, m.note.Value()); err != nil {
		logs.Logger.Printf("Error saving day %s: %v", m.key, err)
	}
	return m, func() tea.Msg {
		return CloseOverlayMsg{}
	}
}

// View renders the day editor as a centered modal
func (m DayEditorModel) View() string {
	var content strings.Builder

	date, err := dates.Parse(m.key)
	title := m.key
	if err == nil {
		title = fmt.Sprintf("%d年%d月%d日（%s）",
			date.Year(), int(date.Month()), date.Day(), weekdayHeaders[int(date.Weekday())])
	}
	content.WriteString(m.styles.ModalTitle.Render(title) + "\n")

	if len(m.selected) > 0 {
		content.WriteString(strings.Join(m.selected, " ") + "\n")
	}
	content.WriteString("\n")

	content.WriteString(m.styles.Muted.Render("スタンプを選んでね") + "\n")
	content.WriteString(m.renderStampPanel())

	content.WriteString("\n" + m.styles.Muted.Render("メモ") + "\n")
	content.WriteString(m.note.View() + "\n")
	content.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d/%d", len([]rune(m.note.Value())), entries.MaxNoteLen)) + "\n\n")

	if m.inNote {
		content.WriteString(m.styles.ModalHelp.Render("[esc/tab] back to stamps"))
	} else {
		content.WriteString(m.styles.ModalHelp.Render("[space] toggle  [tab] note  [esc] done"))
	}

	box := m.styles.ModalBox.Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m DayEditorModel) renderStampPanel() string {
	var sb strings.Builder

	list := m.catalog.List()
	active := make(map[string]bool)
	for _, s := range m.selected {
		active[s] = true
	}

	for i, s := range list {
		label := fmt.Sprintf("%s %s", s.Icon, s.Label)
		cell := lipgloss.NewStyle().Width(14)
		switch {
		case i == m.cursor && !m.inNote:
			sb.WriteString(cell.Render(m.styles.Selected.Render(label)))
		case active[s.Icon]:
			sb.WriteString(cell.Render(m.styles.Ok.Render(label)))
		default:
			sb.WriteString(cell.Render(m.styles.Unselected.Render(label)))
		}
		if (i+1)%stampCols == 0 {
			sb.WriteString("\n")
		}
	}
	if len(list)%stampCols != 0 {
		sb.WriteString("\n")
	}
	if len(list) == 0 {
		sb.WriteString(m.styles.Muted.Render("スタンプがありません") + "\n")
	}
	return sb.String()
}

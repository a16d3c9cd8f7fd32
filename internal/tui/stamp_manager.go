package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"sutanpu/internal/logs"
	"sutanpu/internal/stamps"
)

type stampManagerMode int

const (
	stampModeList stampManagerMode = iota
	stampModeFilter
	stampModeEdit
	stampModeAddIcon
	stampModeAddLabel
	stampModeConfirmReset
)

// StampManagerModel is the catalog editor: list, inline label edit, add
// form, delete, and the confirmation-gated reset to the factory set.
type StampManagerModel struct {
	catalog *stamps.Catalog
	styles  Styles

	mode     stampManagerMode
	cursor   int
	filter   string
	visible  []stamps.Stamp
	editID   string
	input    textinput.Model
	addIcon  string
	confirm  *ConfirmationModal
	width    int
	height   int
}

// NewStampManagerModel creates the stamp catalog editor
func NewStampManagerModel(catalog *stamps.Catalog, styles Styles) StampManagerModel {
	m := StampManagerModel{
		catalog: catalog,
		styles:  styles,
	}
	m.refresh()
	return m
}

// SetSize updates the view dimensions
func (m *StampManagerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// refresh recomputes the visible list from the catalog and filter.
func (m *StampManagerModel) refresh() {
	all := m.catalog.List()
	if m.filter == "" {
		m.visible = all
	} else {
		labels := make([]string, len(all))
		for i, s := range all {
			labels[i] = s.Label
		}
		matches := fuzzy.Find(m.filter, labels)
		m.visible = make([]stamps.Stamp, len(matches))
		for i, match := range matches {
			m.visible[i] = all[match.Index]
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = max(0, len(m.visible)-1)
	}
}

// Update handles key events for the stamp manager
func (m StampManagerModel) Update(msg tea.Msg) (StampManagerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ConfirmationResultMsg:
		m.mode = stampModeList
		m.confirm = nil
		if msg.Confirmed {
			if err := m.catalog.ResetToDefaults(); err != nil {
				logs.Logger.Printf("Error resetting stamp catalog: %v", err)
			}
			m.filter = ""
			m.refresh()
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case stampModeConfirmReset:
			return m, m.confirm.Update(msg)
		case stampModeFilter, stampModeEdit, stampModeAddIcon, stampModeAddLabel:
			return m.updateInput(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m StampManagerModel) updateList(msg tea.KeyMsg) (StampManagerModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return m, func() tea.Msg { return CloseOverlayMsg{} }
	case "j", "down":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "/":
		m.mode = stampModeFilter
		m.input = newInput("しぼりこみ", m.filter, 20)
		return m, textinput.Blink
	case "e", "enter":
		if m.cursor < len(m.visible) {
			s := m.visible[m.cursor]
			m.mode = stampModeEdit
			m.editID = s.ID
			m.input = newInput("なまえ", s.Label, stamps.MaxLabelLen)
			return m, textinput.Blink
		}
	case "d", "x":
		if m.cursor < len(m.visible) {
			if err := m.catalog.Remove(m.visible[m.cursor].ID); err != nil {
				logs.Logger.Printf("Error removing stamp: %v", err)
			}
			m.refresh()
		}
	case "a":
		m.mode = stampModeAddIcon
		m.input = newInput("絵文字", "", 4)
		return m, textinput.Blink
	case "r":
		m.mode = stampModeConfirmReset
		m.confirm = NewConfirmationModal(
			"スタンプをデフォルトに戻しますか？",
			"カスタムスタンプは削除されます。",
			44, m.styles)
	}
	return m, nil
}

func (m StampManagerModel) updateInput(msg tea.KeyMsg) (StampManagerModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.mode == stampModeFilter {
			m.filter = ""
			m.refresh()
		}
		m.mode = stampModeList
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		switch m.mode {
		case stampModeFilter:
			m.filter = value
			m.mode = stampModeList
			m.refresh()
		case stampModeEdit:
			if err := m.catalog.EditLabel(m.editID, value); err != nil {
				logs.Logger.Printf("Error editing stamp label: %v", err)
			}
			m.mode = stampModeList
			m.refresh()
		case stampModeAddIcon:
			if value == "" {
				return m, nil
			}
			m.addIcon = value
			m.mode = stampModeAddLabel
			m.input = newInput("なまえ（例：ジム）", "", stamps.MaxLabelLen)
			return m, textinput.Blink
		case stampModeAddLabel:
			if _, err := m.catalog.Add(m.addIcon, value); err != nil {
				logs.Logger.Printf("Error adding stamp: %v", err)
			}
			m.mode = stampModeList
			m.refresh()
			m.cursor = len(m.visible) - 1
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == stampModeFilter {
		m.filter = m.input.Value()
		m.refresh()
	}
	return m, cmd
}

func newInput(placeholder, value string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.SetValue(value)
	ti.Focus()
	return ti
}

// View renders the stamp manager as a centered modal
func (m StampManagerModel) View() string {
	if m.mode == stampModeConfirmReset && m.confirm != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	var content strings.Builder
	content.WriteString(m.styles.ModalTitle.Render("スタンプ管理") + "\n\n")

	if len(m.visible) == 0 {
		content.WriteString(m.styles.Muted.Render("スタンプがありません") + "\n")
	}
	for i, s := range m.visible {
		line := fmt.Sprintf("%s  %-10s", s.Icon, s.Label)
		if stamps.IsFactoryDefault(s.ID) {
			line += " " + m.styles.Badge.Render(" デフォルト ")
		}
		if i == m.cursor && m.mode == stampModeList {
			content.WriteString(m.styles.Selected.Render("▸ "+line) + "\n")
		} else {
			content.WriteString(m.styles.Unselected.Render("  "+line) + "\n")
		}
	}

	switch m.mode {
	case stampModeFilter:
		content.WriteString("\n/" + m.input.View() + "\n")
	case stampModeEdit:
		content.WriteString("\n" + m.styles.Muted.Render("なまえを編集: ") + m.input.View() + "\n")
	case stampModeAddIcon:
		content.WriteString("\n" + m.styles.Muted.Render("新しいスタンプの絵文字: ") + m.input.View() + "\n")
	case stampModeAddLabel:
		content.WriteString("\n" + m.styles.Muted.Render(m.addIcon+" のなまえ: ") + m.input.View() + "\n")
	}

	content.WriteString("\n")
	if m.filter != "" {
		content.WriteString(m.styles.Muted.Render(fmt.Sprintf("filter: %q  ", m.filter)))
	}
	content.WriteString(m.styles.ModalHelp.Render("[a] 追加  [e] 編集  [d] 削除  [r] リセット  [/] しぼりこみ  [esc] 閉じる"))

	box := m.styles.ModalBox.Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

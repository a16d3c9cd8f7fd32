package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sutanpu/internal/entries"
	"sutanpu/internal/holidays"
	"sutanpu/internal/stamps"
	"sutanpu/internal/themes"
)

// AppModel is the root model that dispatches to child views
type AppModel struct {
	entries *entries.Store
	catalog *stamps.Catalog
	theme   *themes.Store
	lookup  *holidays.Lookup
	styles  Styles

	currentView  ViewType
	calendarView CalendarModel
	dayView      DayEditorModel
	stampView    StampManagerModel
	themeView    ThemePickerModel
	showHelp     bool
	width        int
	height       int
	ready        bool
}

// NewAppModel creates the root application model
func NewAppModel(entryStore *entries.Store, catalog *stamps.Catalog, themeStore *themes.Store, lookup *holidays.Lookup) AppModel {
	styles := NewStyles(themeStore.Current())

	return AppModel{
		entries:      entryStore,
		catalog:      catalog,
		theme:        themeStore,
		lookup:       lookup,
		styles:       styles,
		currentView:  ViewCalendar,
		calendarView: NewCalendarModel(entryStore, lookup, styles),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - 3 // Reserve space for status bar
		m.calendarView.SetSize(msg.Width, contentHeight)
		m.dayView.SetSize(msg.Width, contentHeight)
		m.stampView.SetSize(msg.Width, contentHeight)
		m.themeView.SetSize(msg.Width, contentHeight)
		return m, nil

	case OpenDayMsg:
		m.dayView = NewDayEditorModel(msg.Key, m.entries, m.catalog, m.styles)
		m.dayView.SetSize(m.width, m.height-3)
		m.currentView = ViewDayEditor
		return m, nil

	case CloseOverlayMsg:
		m.currentView = ViewCalendar
		return m, nil

	case ThemeChangedMsg:
		m.styles = NewStyles(m.theme.Current())
		m.calendarView.SetStyles(m.styles)
		m.themeView = NewThemePickerModel(m.theme, m.styles)
		m.themeView.SetSize(m.width, m.height-3)
		return m, nil

	case tea.KeyMsg:
		// Global keys: ctrl+c always quits
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if m.currentView == ViewCalendar {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "s":
				m.stampView = NewStampManagerModel(m.catalog, m.styles)
				m.stampView.SetSize(m.width, m.height-3)
				m.currentView = ViewStampManager
				return m, nil
			case "p":
				m.themeView = NewThemePickerModel(m.theme, m.styles)
				m.themeView.SetSize(m.width, m.height-3)
				m.currentView = ViewThemePicker
				return m, nil
			case "?":
				m.showHelp = true
				return m, nil
			}
		}
	}

	// Dispatch to current child view
	var cmd tea.Cmd
	switch m.currentView {
	case ViewCalendar:
		m.calendarView, cmd = m.calendarView.Update(msg)
		return m, cmd
	case ViewDayEditor:
		m.dayView, cmd = m.dayView.Update(msg)
		return m, cmd
	case ViewStampManager:
		m.stampView, cmd = m.stampView.Update(msg)
		return m, cmd
	case ViewThemePicker:
		m.themeView, cmd = m.themeView.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var content string
	switch m.currentView {
	case ViewCalendar:
		content = m.calendarView.View()
	case ViewDayEditor:
		content = m.dayView.View()
	case ViewStampManager:
		content = m.stampView.View()
	case ViewThemePicker:
		content = m.themeView.View()
	}

	var statusText string
	switch m.currentView {
	case ViewDayEditor:
		statusText = "Day editor | esc: done"
	case ViewStampManager:
		statusText = "Stamp manager | esc: back"
	case ViewThemePicker:
		statusText = "Theme picker | esc: back"
	default:
		statusText = "enter:open day | s:stamps p:theme | drag to swipe months | ?:help | q:quit"
	}

	statusBar := m.styles.StatusBar.Width(m.width).Render(
		m.styles.Help.Render(statusText),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m AppModel) renderHelpOverlay() string {
	keyStyle := m.styles.Subtitle
	descStyle := m.styles.Unselected
	sectionStyle := m.styles.Title

	line := func(key, desc string) string {
		return "  " + keyStyle.Width(12).Render(key) + descStyle.Render(desc)
	}

	var content string
	content += sectionStyle.Render("sutanpu - Keyboard Shortcuts") + "\n\n"

	content += sectionStyle.Render("Calendar") + "\n"
	content += line("h / l", "Previous / next day") + "\n"
	content += line("j / k", "Next / previous week") + "\n"
	content += line("H / L", "Previous / next month") + "\n"
	content += line("drag", "Swipe to previous / next month") + "\n"
	content += line("t", "Jump to today") + "\n"
	content += line("enter", "Open day editor") + "\n"
	content += line("s", "Stamp manager") + "\n"
	content += line("p", "Theme picker") + "\n"
	content += line("q", "Quit") + "\n\n"

	content += sectionStyle.Render("Day Editor") + "\n"
	content += line("h/j/k/l", "Move over stamps") + "\n"
	content += line("space", "Toggle stamp") + "\n"
	content += line("tab", "Edit note") + "\n"
	content += line("esc", "Save and close") + "\n\n"

	content += sectionStyle.Render("Stamp Manager") + "\n"
	content += line("a", "Add stamp") + "\n"
	content += line("e", "Edit label") + "\n"
	content += line("d", "Delete stamp") + "\n"
	content += line("r", "Reset to defaults") + "\n"
	content += line("/", "Filter by label") + "\n\n"

	content += m.styles.Help.Render("Press any key to close")

	box := m.styles.ModalBox.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

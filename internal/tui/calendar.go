package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sutanpu/internal/dates"
	"sutanpu/internal/entries"
	"sutanpu/internal/gesture"
	"sutanpu/internal/grid"
	"sutanpu/internal/holidays"
)

// swipeCells is the drag distance, in terminal columns, that counts as a
// month swipe. Far below the pixel default since a cell is much coarser.
const swipeCells = 6

var weekdayHeaders = []string{"日", "月", "火", "水", "木", "金", "土"}

// CalendarModel is the month grid view with a day cursor.
type CalendarModel struct {
	entries *entries.Store
	lookup  *holidays.Lookup
	nav     *gesture.Navigator
	styles  Styles

	viewMonth  time.Time // first of the month being viewed
	cursorDate time.Time
	width      int
	height     int
}

// NewCalendarModel creates the month view centered on the current month.
func NewCalendarModel(store *entries.Store, lookup *holidays.Lookup, styles Styles) CalendarModel {
	now := time.Now()
	return CalendarModel{
		entries:    store,
		lookup:     lookup,
		nav:        gesture.NewWithThreshold(swipeCells),
		styles:     styles,
		viewMonth:  time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local),
		cursorDate: now,
	}
}

// SetSize updates the view dimensions
func (m *CalendarModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetStyles swaps in the style set of a newly selected theme
func (m *CalendarModel) SetStyles(styles Styles) {
	m.styles = styles
}

// Update handles key and mouse events for the month view
func (m CalendarModel) Update(msg tea.Msg) (CalendarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.nav.Start(msg.X)
			}
		case tea.MouseActionRelease:
			switch m.nav.End(msg.X) {
			case gesture.NextMonth:
				m.shiftMonth(1)
			case gesture.PrevMonth:
				m.shiftMonth(-1)
			}
		}
	}
	return m, nil
}

func (m CalendarModel) updateKeys(msg tea.KeyMsg) (CalendarModel, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		m.moveCursor(-1)
	case "l", "right":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-7)
	case "j", "down":
		m.moveCursor(7)
	case "H", "pgup":
		m.shiftMonth(-1)
	case "L", "pgdown":
		m.shiftMonth(1)
	case "t":
		now := time.Now()
		m.cursorDate = now
		m.viewMonth = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	case "enter", " ":
		key := dates.Key(m.cursorDate)
		return m, func() tea.Msg {
			return OpenDayMsg{Key: key}
		}
	}
	return m, nil
}

func (m *CalendarModel) moveCursor(days int) {
	m.cursorDate = m.cursorDate.AddDate(0, 0, days)
	if m.cursorDate.Year() != m.viewMonth.Year() || m.cursorDate.Month() != m.viewMonth.Month() {
		m.viewMonth = time.Date(m.cursorDate.Year(), m.cursorDate.Month(), 1, 0, 0, 0, 0, time.Local)
	}
}

func (m *CalendarModel) shiftMonth(delta int) {
	m.viewMonth = m.viewMonth.AddDate(0, delta, 0)
	m.cursorDate = m.viewMonth
}

// View renders the month grid plus a detail line for the cursor day
func (m CalendarModel) View() string {
	var sb strings.Builder

	title := m.styles.Title.Render(fmt.Sprintf(" %d年 %d月", m.viewMonth.Year(), int(m.viewMonth.Month())))
	nav := m.styles.Help.Render("[h/l/j/k: move] [H/L: month] [t: today] [enter: open]")

	titleLine := title
	padding := m.width - lipgloss.Width(title) - lipgloss.Width(nav) - 1
	if padding > 0 {
		titleLine += strings.Repeat(" ", padding) + nav
	}
	sb.WriteString(titleLine)
	sb.WriteString("\n\n")

	sb.WriteString(m.renderGrid())
	sb.WriteString("\n")
	sb.WriteString(" " + m.styles.Accent.Render("■") + m.styles.Help.Render(" きょう   •メモあり"))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderDetail())

	return sb.String()
}

func (m CalendarModel) renderGrid() string {
	var sb strings.Builder

	for i, d := range weekdayHeaders {
		style := m.styles.DayHeader
		switch i {
		case 0:
			style = m.styles.DayHeaderSun
		case 6:
			style = m.styles.DayHeaderSat
		}
		sb.WriteString(style.Render(d))
	}
	sb.WriteString("\n")

	year, month := m.viewMonth.Year(), m.viewMonth.Month()
	holidayMap := m.lookup.ForMonth(year, month)
	cells := grid.Build(year, month, m.entries, holidayMap, dates.TodayKey())
	cursorKey := dates.Key(m.cursorDate)

	for week := 0; week*7 < len(cells); week++ {
		row := cells[week*7 : week*7+7]
		for _, c := range row {
			sb.WriteString(m.renderDayNumber(c, cursorKey))
		}
		sb.WriteString("\n")
		for _, c := range row {
			sb.WriteString(m.renderDayStamps(c))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m CalendarModel) renderDayNumber(c grid.Cell, cursorKey string) string {
	if c.Blank {
		return m.styles.DayBlank.Render("")
	}

	label := fmt.Sprintf("%2d", c.Day)
	if c.HasNote {
		label += "•"
	}

	switch {
	case c.Key == cursorKey:
		return m.styles.DayCursor.Render(label)
	case c.IsToday:
		return m.styles.DayToday.Render(label)
	case c.Class == grid.ClassSunday:
		return m.styles.DaySun.Render(label)
	case c.Class == grid.ClassSaturday:
		return m.styles.DaySat.Render(label)
	default:
		return m.styles.Day.Render(label)
	}
}

func (m CalendarModel) renderDayStamps(c grid.Cell) string {
	if c.Blank || len(c.Stamps) == 0 {
		return m.styles.DayBlank.Render("")
	}
	line := strings.Join(c.Stamps, "")
	if c.Overflow {
		line += grid.OverflowMarker
	}
	return m.styles.Day.Render(line)
}

func (m CalendarModel) renderDetail() string {
	key := dates.Key(m.cursorDate)
	entry := m.entries.Get(key)
	holidayMap := m.lookup.ForMonth(m.cursorDate.Year(), m.cursorDate.Month())

	label := fmt.Sprintf(" %d年%d月%d日（%s）",
		m.cursorDate.Year(), int(m.cursorDate.Month()), m.cursorDate.Day(),
		weekdayHeaders[int(m.cursorDate.Weekday())])

	var sb strings.Builder
	sb.WriteString(m.styles.Subtitle.Render(label))
	if name := holidayMap[key]; name != "" {
		sb.WriteString("  " + m.styles.HolidayName.Render(name))
	}
	sb.WriteString("\n")

	if len(entry.Stamps) > 0 {
		sb.WriteString("   " + strings.Join(entry.Stamps, " ") + "\n")
	}
	if entry.Note != "" {
		sb.WriteString("   " + m.styles.Muted.Render(entry.Note) + "\n")
	}
	if entry.IsEmpty() {
		sb.WriteString("   " + m.styles.Muted.Render("きろくなし") + "\n")
	}
	return sb.String()
}

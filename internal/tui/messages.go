package tui

// ViewType represents the different views in the application
type ViewType int

const (
	ViewCalendar ViewType = iota
	ViewDayEditor
	ViewStampManager
	ViewThemePicker
)

// OpenDayMsg requests opening the editor for one day
type OpenDayMsg struct {
	Key string
}

// CloseOverlayMsg returns from a modal view to the calendar
type CloseOverlayMsg struct{}

// ThemeChangedMsg signals that the active theme changed
type ThemeChangedMsg struct{}

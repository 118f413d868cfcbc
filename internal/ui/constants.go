package ui

import "time"

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	ProgressSizeFormat = "(%s / %s)"
	ProgressOnlyFormat = "(%s)"
)

// Progress bar range
const (
	ProgressMin = 0
	ProgressMax = 100
)

// Layout sizing
const (
	SettingsDialogW float32 = 500
	SettingsDialogH float32 = 360
)

// Debounce durations
const (
	UIUpdateDebounce = 100 * time.Millisecond
)

package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (symbols)
const (
	IconBookmark = "🔖"
	IconRefresh  = "⟳"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	CountLabelFormat   = "%s: %d"
)

// CharWidthSample is measured to estimate the average glyph width of the
// list font
const CharWidthSample = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RowMinTextWidth is the smallest width given to each text column when
// the list reports its minimum size
const RowMinTextWidth float32 = 40

// Window sizing
const (
	WindowWidth  float32 = 960
	WindowHeight float32 = 640

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 420
)

package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyShadedRows   = "shaded_rows"
	KeyDisplayLines = "display_line_numbers"
	KeyFontSize     = "list_font_size"
	KeyLanguage     = "app_language"
	KeySampleSize   = "sample_catalog_size"
	KeyIconDir      = "icon_directory"
)

// Default values
const (
	DefaultShadedRows   = false
	DefaultDisplayLines = true
	DefaultFontSize     = 0 // theme text size
	DefaultLanguage     = "system"
	DefaultSampleSize   = 5000
	DefaultIconDir      = ""
)

// Limits
const (
	MinFontSize   = 8
	MaxFontSize   = 32
	MaxSampleSize = 200000
)

// Settings manages application configuration. Values stored through the
// Set methods persist in the app preferences; overrides applied with
// ApplyOverrides shadow them for the running session only.
type Settings struct {
	app     fyne.App
	session Overrides
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetShadedRows returns whether alternate list rows are shaded
func (s *Settings) GetShadedRows() bool {
	if s.session.ShadedRows != nil {
		return *s.session.ShadedRows
	}
	return s.app.Preferences().BoolWithFallback(KeyShadedRows, DefaultShadedRows)
}

// SetShadedRows sets whether alternate list rows are shaded
func (s *Settings) SetShadedRows(shaded bool) {
	s.session.ShadedRows = nil
	s.app.Preferences().SetBool(KeyShadedRows, shaded)
}

// GetDisplayLines returns whether the line number column is shown
func (s *Settings) GetDisplayLines() bool {
	if s.session.DisplayLines != nil {
		return *s.session.DisplayLines
	}
	return s.app.Preferences().BoolWithFallback(KeyDisplayLines, DefaultDisplayLines)
}

// SetDisplayLines sets whether the line number column is shown
func (s *Settings) SetDisplayLines(show bool) {
	s.session.DisplayLines = nil
	s.app.Preferences().SetBool(KeyDisplayLines, show)
}

// GetFontSize returns the custom list font size, 0 for the theme size
func (s *Settings) GetFontSize() float32 {
	if s.session.FontSize != nil {
		return *s.session.FontSize
	}
	return float32(s.app.Preferences().FloatWithFallback(KeyFontSize, DefaultFontSize))
}

// SetFontSize sets the custom list font size; 0 restores the theme size
func (s *Settings) SetFontSize(size float32) {
	s.session.FontSize = nil
	s.app.Preferences().SetFloat(KeyFontSize, float64(clampFontSize(size)))
}

func clampFontSize(size float32) float32 {
	if size == 0 {
		return 0
	}
	return min(max(size, MinFontSize), MaxFontSize)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetSampleSize returns the number of entries of the generated catalog
func (s *Settings) GetSampleSize() int {
	if s.session.SampleSize != nil {
		return *s.session.SampleSize
	}
	return s.app.Preferences().IntWithFallback(KeySampleSize, DefaultSampleSize)
}

// SetSampleSize sets the number of entries of the generated catalog
func (s *Settings) SetSampleSize(n int) {
	s.session.SampleSize = nil
	s.app.Preferences().SetInt(KeySampleSize, clampSampleSize(n))
}

func clampSampleSize(n int) int {
	return min(max(n, 0), MaxSampleSize)
}

// GetIconDirectory returns the directory status icons are loaded from,
// empty for the built-in icons
func (s *Settings) GetIconDirectory() string {
	if s.session.IconDir != nil {
		return *s.session.IconDir
	}
	return s.app.Preferences().StringWithFallback(KeyIconDir, DefaultIconDir)
}

// SetIconDirectory sets the status icon directory
func (s *Settings) SetIconDirectory(dir string) {
	s.session.IconDir = nil
	s.app.Preferences().SetString(KeyIconDir, dir)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

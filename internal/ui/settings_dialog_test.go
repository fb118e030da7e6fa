package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/catalog-editor/internal/config"
)

func newTestSettingsDialog(t *testing.T) (*SettingsDialog, *config.Settings) {
	t.Helper()
	settings := config.NewSettings(test.NewApp())
	w := test.NewWindow(widget.NewLabel(""))
	t.Cleanup(w.Close)
	return NewSettingsDialog(settings, NewLocalization(), w), settings
}

func TestSettingsDialog_ThemeFontSize(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)

	sd.loadCurrentSettings()
	if sd.fontSizeEntry.Text != "" {
		t.Errorf("Theme font size should show an empty field, got %q", sd.fontSizeEntry.Text)
	}

	settings.SetFontSize(18)
	sd.loadCurrentSettings()
	if sd.fontSizeEntry.Text != "18" {
		t.Errorf("Expected field 18, got %q", sd.fontSizeEntry.Text)
	}

	sd.fontSizeEntry.SetText("  ")
	sd.apply()
	if settings.GetFontSize() != 0 {
		t.Errorf("Clearing the field should restore the theme size, got %v", settings.GetFontSize())
	}
}

func TestSettingsDialog_Apply(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)
	settings.SetSampleSize(400)

	sd.loadCurrentSettings()
	sd.fontSizeEntry.SetText("14")
	sd.sampleSizeEntry.SetText("lots")
	sd.shadedCheck.SetChecked(true)
	sd.languageSelect.SetSelected("pt")
	sd.apply()

	if settings.GetFontSize() != 14 {
		t.Errorf("Expected font size 14, got %v", settings.GetFontSize())
	}
	if settings.GetSampleSize() != 400 {
		t.Errorf("Unparsable sample size should keep 400, got %d", settings.GetSampleSize())
	}
	if !settings.GetShadedRows() {
		t.Error("Expected shaded rows stored")
	}
	if settings.GetLanguage() != "pt" {
		t.Errorf("Expected language pt, got %s", settings.GetLanguage())
	}

	sd.fontSizeEntry.SetText("big")
	sd.apply()
	if settings.GetFontSize() != 14 {
		t.Errorf("Unparsable font size should keep 14, got %v", settings.GetFontSize())
	}
}

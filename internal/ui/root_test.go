package ui

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/catalog-editor/internal/assets"
	"github.com/ytget/catalog-editor/internal/config"
	"github.com/ytget/catalog-editor/internal/listctrl"
	"github.com/ytget/catalog-editor/internal/model"
)

func newTestEditor(t *testing.T, sampleSize int) (*EditorUI, *config.Settings) {
	t.Helper()
	app := test.NewApp()
	settings := config.NewSettings(app)
	settings.SetSampleSize(sampleSize)

	w := test.NewWindow(widget.NewLabel(""))
	w.Resize(fyne.NewSize(800, 600))
	t.Cleanup(w.Close)

	ui, err := NewEditorUI(w, settings, assets.Builtin(), 1)
	if err != nil {
		t.Fatalf("NewEditorUI returned error: %v", err)
	}
	return ui, settings
}

func TestNewEditorUI_GeneratesSample(t *testing.T) {
	ui, _ := newTestEditor(t, 200)

	if ui.Catalog() == nil || ui.Catalog().Count() != 200 {
		t.Fatalf("Expected a 200 entry sample catalog")
	}
	if ui.List().Shell().RowCount() != 200 {
		t.Errorf("Expected 200 rows, got %d", ui.List().Shell().RowCount())
	}
	if ui.selected != ui.List().CatalogIndexOf(0) {
		t.Errorf("Expected first row selected, got catalog index %d", ui.selected)
	}
	if !strings.Contains(ui.statusLabel.Text, "Total: 200") {
		t.Errorf("Unexpected status text %q", ui.statusLabel.Text)
	}
}

func TestEditorUI_ApplyMovesTranslatedEntry(t *testing.T) {
	ui, _ := newTestEditor(t, 200)

	mapping := ui.List().Shell().Mapping()
	untranslated := mapping.BucketSize(listctrl.BucketUntranslated)
	if untranslated == 0 {
		t.Skip("sample has no untranslated entries")
	}

	ci := ui.List().CatalogIndexOf(0)
	ui.showEntry(ci)
	ui.translationEntry.SetText("Übersetzt")
	ui.onApply()

	e := ui.Catalog().Entry(ci)
	if !e.IsTranslated() || !e.IsModified() {
		t.Fatalf("Entry should be translated and modified, got %+v", e)
	}
	if row := ui.List().DisplayIndexOf(ci); row < untranslated-1 {
		t.Errorf("Translated entry should leave the untranslated bucket, now at row %d", row)
	}
	if ui.selected != ci {
		t.Errorf("Edited entry should stay selected, got %d", ui.selected)
	}
	stats := ui.Catalog().Stats()
	if stats.Untranslated != untranslated-1 {
		t.Errorf("Expected %d untranslated, got %d", untranslated-1, stats.Untranslated)
	}
}

func TestEditorUI_ApplyBookmark(t *testing.T) {
	ui, _ := newTestEditor(t, 50)

	ci := ui.List().CatalogIndexOf(0)
	ui.showEntry(ci)
	ui.bookmarkSelect.SetSelected("7")
	ui.onApply()

	if b := ui.Catalog().Entry(ci).Bookmark; b != 7 {
		t.Errorf("Expected bookmark 7, got %v", b)
	}
	if got := ui.List().Shell().IconFlags(ui.List().DisplayIndexOf(ci)).Bookmark(); got != 7 {
		t.Errorf("Expected icon bookmark 7, got %v", got)
	}
}

func TestEditorUI_ClearCatalog(t *testing.T) {
	ui, _ := newTestEditor(t, 20)

	ui.clearCatalog()

	if ui.Catalog() != nil {
		t.Error("Catalog should be cleared")
	}
	if ui.List().Shell().RowCount() != 0 {
		t.Error("List should be empty")
	}
	if ui.selected != -1 {
		t.Errorf("Expected no selection, got %d", ui.selected)
	}
	if ui.statusLabel.Text != DashPlaceholder {
		t.Errorf("Expected placeholder status, got %q", ui.statusLabel.Text)
	}
	if !ui.applyBtn.Disabled() {
		t.Error("Apply should be disabled without a selection")
	}

	// applying without a selection is a no-op
	ui.onApply()
}

func TestEditorUI_ToggleViewOptions(t *testing.T) {
	ui, settings := newTestEditor(t, 20)

	lines := ui.List().Shell().DisplayLineColumn()
	ui.onToggleLines()
	if ui.List().Shell().DisplayLineColumn() == lines {
		t.Error("Line column should toggle")
	}
	if settings.GetDisplayLines() == lines {
		t.Error("Line column setting should be stored")
	}

	ui.onToggleShaded()
	if !ui.List().Shell().ShadedRows() || !settings.GetShadedRows() {
		t.Error("Shaded rows should be enabled and stored")
	}
}

func TestEditorUI_FontSize(t *testing.T) {
	ui, settings := newTestEditor(t, 20)

	ui.setFontSize(20)
	if settings.GetFontSize() != 20 {
		t.Errorf("Expected font size 20, got %v", settings.GetFontSize())
	}
	if size := ui.List().Shell().Style(0).Font.Size; size != 20 {
		t.Errorf("Expected list font size 20, got %v", size)
	}

	ui.changeFontSize(fontSizeStep)
	if settings.GetFontSize() != 21 {
		t.Errorf("Expected font size 21, got %v", settings.GetFontSize())
	}

	ui.setFontSize(0)
	if settings.GetFontSize() != 0 {
		t.Error("Font size should reset to the theme size")
	}
}

func TestEditorUI_LanguageChange(t *testing.T) {
	ui, settings := newTestEditor(t, 5)

	ui.onLanguageChange("ru")

	if settings.GetLanguage() != "ru" {
		t.Errorf("Expected stored language ru, got %s", settings.GetLanguage())
	}
	if got := ui.List().headerTexts[listctrl.ColumnTranslation].Text; got != "Перевод" {
		t.Errorf("Expected localized header, got %q", got)
	}
	if !strings.Contains(ui.statusLabel.Text, "Всего") {
		t.Errorf("Expected localized status, got %q", ui.statusLabel.Text)
	}
}

func TestEditorUI_LanguageMenuOrder(t *testing.T) {
	ui, _ := newTestEditor(t, 5)

	for round := 0; round < 3; round++ {
		menus := ui.window.MainMenu().Items
		languageMenu := menus[len(menus)-1]

		var labels []string
		for _, item := range languageMenu.Items {
			labels = append(labels, item.Label)
		}
		want := []string{"English", "Português", "Русский"}
		if strings.Join(labels, ",") != strings.Join(want, ",") {
			t.Fatalf("Language menu = %v, want %v", labels, want)
		}
		if !languageMenu.Items[0].Checked {
			t.Error("Current language should be checked")
		}

		// menus are rebuilt on language change
		ui.createMenu()
	}
}

func TestParseBookmark(t *testing.T) {
	tests := []struct {
		in   string
		want model.Bookmark
	}{
		{"0", 0},
		{"9", 9},
		{"None", model.NoBookmark},
		{"", model.NoBookmark},
	}

	for _, tt := range tests {
		if got := parseBookmark(tt.in); got != tt.want {
			t.Errorf("parseBookmark(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

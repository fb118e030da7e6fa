package ui

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/catalog-editor/internal/assets"
	"github.com/ytget/catalog-editor/internal/config"
	"github.com/ytget/catalog-editor/internal/listctrl"
	"github.com/ytget/catalog-editor/internal/model"
	"github.com/ytget/catalog-editor/internal/platform"
)

// Font size step of the View menu
const fontSizeStep float32 = 1

// EditorUI represents the main window of the catalog editor
type EditorUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization

	list    *EditorList
	catalog *model.MemoryCatalog
	seed    uint64

	// selected is the catalog index shown in the detail panel, -1 if none
	selected int

	// Detail panel
	sourceLabel      *widget.Label
	commentLabel     *widget.Label
	translationEntry *widget.Entry
	fuzzyCheck       *widget.Check
	bookmarkSelect   *widget.Select
	applyBtn         *widget.Button

	statusLabel *widget.Label
}

// NewEditorUI creates the list from icons, fills it with a generated sample
// catalog of the configured size and sets the window content
func NewEditorUI(window fyne.Window, settings *config.Settings, icons assets.Provider, seed uint64) (*EditorUI, error) {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	list, err := NewEditorList(icons, localization, listctrl.Options{
		ShadedRows:   settings.GetShadedRows(),
		DisplayLines: settings.GetDisplayLines(),
	})
	if err != nil {
		return nil, err
	}

	ui := &EditorUI{
		window:       window,
		settings:     settings,
		localization: localization,
		list:         list,
		seed:         seed,
		selected:     -1,
	}
	list.OnEntrySelected = ui.showEntry

	if size := settings.GetFontSize(); size > 0 {
		list.SetCustomFont(&listctrl.Font{Size: size})
	}

	if icon, err := AppIconResource(list.Palette()); err == nil {
		window.SetIcon(icon)
	} else {
		log.Printf("Warning: %v", err)
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	ui.generateSample()

	log.Printf("EditorUI initialized")
	return ui, nil
}

// List returns the catalog list widget
func (ui *EditorUI) List() *EditorList {
	return ui.list
}

// Catalog returns the catalog currently shown, nil when cleared
func (ui *EditorUI) Catalog() *model.MemoryCatalog {
	return ui.catalog
}

func (ui *EditorUI) setupUI() {
	ui.createMenu()

	ui.sourceLabel = widget.NewLabel("")
	ui.sourceLabel.Wrapping = fyne.TextWrapWord
	ui.commentLabel = widget.NewLabel("")
	ui.commentLabel.Wrapping = fyne.TextWrapWord
	ui.commentLabel.TextStyle = fyne.TextStyle{Italic: true}

	ui.translationEntry = widget.NewMultiLineEntry()
	ui.translationEntry.Wrapping = fyne.TextWrapWord
	ui.fuzzyCheck = widget.NewCheck(ui.localization.GetText(KeyFuzzy), nil)
	ui.bookmarkSelect = widget.NewSelect(ui.bookmarkOptions(), nil)
	ui.applyBtn = widget.NewButton(ui.localization.GetText(KeyApply), ui.onApply)

	controls := container.NewHBox(
		ui.fuzzyCheck,
		widget.NewLabel(IconBookmark),
		ui.bookmarkSelect,
		ui.applyBtn,
	)
	detail := container.NewBorder(
		container.NewVBox(ui.sourceLabel, ui.commentLabel),
		controls,
		nil,
		nil,
		ui.translationEntry,
	)

	ui.statusLabel = widget.NewLabel("")

	split := container.NewVSplit(ui.list, detail)
	split.Offset = 0.7

	content := container.NewBorder(nil, ui.statusLabel, nil, nil, split)
	ui.window.SetContent(content)
	ui.showEntry(-1)

	log.Printf("UI setup completed successfully")
}

func (ui *EditorUI) createMenu() {
	t := ui.localization.GetText

	settingsItem := fyne.NewMenuItem(t(KeySettings), ui.onShowSettings)
	iconDirItem := fyne.NewMenuItem(t(KeyOpenIconDirectory), ui.onOpenIconDirectory)
	iconDirItem.Disabled = ui.settings.GetIconDirectory() == ""

	languageMenu := fyne.NewMenu(t(KeyLanguage))
	names := ui.localization.GetAvailableLanguages()
	for _, code := range ui.localization.LanguageCodes() {
		langCode := code
		langItem := fyne.NewMenuItem(names[code], func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	linesItem := fyne.NewMenuItem(t(KeyLineNumbers), ui.onToggleLines)
	linesItem.Checked = ui.list.Shell().DisplayLineColumn()
	shadedItem := fyne.NewMenuItem(t(KeyShadedRows), ui.onToggleShaded)
	shadedItem.Checked = ui.list.Shell().ShadedRows()

	viewMenu := fyne.NewMenu(t(KeyView),
		linesItem,
		shadedItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(t(KeyFontSize)+" +", func() { ui.changeFontSize(fontSizeStep) }),
		fyne.NewMenuItem(t(KeyFontSize)+" -", func() { ui.changeFontSize(-fontSizeStep) }),
		fyne.NewMenuItem(t(KeyFontSize)+" "+IconRefresh, func() { ui.setFontSize(0) }),
	)

	catalogMenu := fyne.NewMenu(t(KeyCatalog),
		fyne.NewMenuItem(t(KeyGenerateSample), ui.generateSample),
		fyne.NewMenuItem(t(KeyClearCatalog), ui.clearCatalog),
	)

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(t(KeyFile), settingsItem, iconDirItem),
		viewMenu,
		catalogMenu,
		languageMenu,
	))
}

func (ui *EditorUI) bookmarkOptions() []string {
	opts := []string{ui.localization.GetText(KeyNone)}
	for b := model.Bookmark(0); b <= model.MaxBookmark; b++ {
		opts = append(opts, b.String())
	}
	return opts
}

func (ui *EditorUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

func (ui *EditorUI) refreshUITexts() {
	t := ui.localization.GetText
	ui.window.SetTitle(t(KeyAppTitle))
	ui.fuzzyCheck.Text = t(KeyFuzzy)
	ui.fuzzyCheck.Refresh()
	ui.applyBtn.SetText(t(KeyApply))
	ui.bookmarkSelect.Options = ui.bookmarkOptions()
	ui.list.RefreshHeader()
	ui.showEntry(ui.selected)
	ui.updateStatus()
}

func (ui *EditorUI) onOpenIconDirectory() {
	dir := ui.settings.GetIconDirectory()
	if dir == "" {
		return
	}
	if err := platform.OpenDirectory(dir); err != nil {
		log.Printf("Error opening icon directory %s: %v", dir, err)
		dialog.ShowError(err, ui.window)
	}
}

func (ui *EditorUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.applySettings)
}

// applySettings pushes stored settings into the running list
func (ui *EditorUI) applySettings() {
	ui.list.SetShadedRows(ui.settings.GetShadedRows())
	ui.list.SetDisplayLineColumn(ui.settings.GetDisplayLines())
	ui.setFontSize(ui.settings.GetFontSize())
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
}

func (ui *EditorUI) onToggleLines() {
	show := !ui.list.Shell().DisplayLineColumn()
	ui.list.SetDisplayLineColumn(show)
	ui.settings.SetDisplayLines(show)
	ui.createMenu()
}

func (ui *EditorUI) onToggleShaded() {
	shaded := !ui.list.Shell().ShadedRows()
	ui.list.SetShadedRows(shaded)
	ui.settings.SetShadedRows(shaded)
	ui.createMenu()
}

func (ui *EditorUI) changeFontSize(delta float32) {
	size := ui.settings.GetFontSize()
	if size == 0 {
		size = theme.TextSize()
	}
	ui.setFontSize(size + delta)
}

// setFontSize stores and applies a list font size; 0 restores the theme font
func (ui *EditorUI) setFontSize(size float32) {
	ui.settings.SetFontSize(size)
	size = ui.settings.GetFontSize()
	if size == 0 {
		ui.list.SetCustomFont(nil)
		return
	}
	ui.list.SetCustomFont(&listctrl.Font{Size: size})
}

// generateSample replaces the catalog with a new generated one
func (ui *EditorUI) generateSample() {
	n := ui.settings.GetSampleSize()
	ui.catalog = model.SampleCatalog(n, ui.seed)
	ui.seed++
	log.Printf("Generated sample catalog %s with %d entries", ui.catalog.ID, n)
	ui.setCatalog(ui.catalog)
}

func (ui *EditorUI) clearCatalog() {
	ui.catalog = nil
	ui.setCatalog(nil)
}

// setCatalog hands c to the list; a nil *MemoryCatalog must not reach the
// list as a non-nil interface
func (ui *EditorUI) setCatalog(c *model.MemoryCatalog) {
	if c == nil {
		ui.list.SetCatalog(nil)
	} else {
		ui.list.SetCatalog(c)
	}
	if c == nil || c.Count() == 0 {
		ui.showEntry(-1)
	}
	ui.updateStatus()
}

// showEntry fills the detail panel with the entry at catalog index ci
func (ui *EditorUI) showEntry(ci int) {
	var e *model.Entry
	if ui.catalog != nil {
		e = ui.catalog.Entry(ci)
	}
	if e == nil {
		ui.selected = -1
		ui.sourceLabel.SetText(ui.localization.GetText(KeyNoEntrySelected))
		ui.commentLabel.SetText("")
		ui.translationEntry.SetText("")
		ui.translationEntry.Disable()
		ui.fuzzyCheck.SetChecked(false)
		ui.fuzzyCheck.Disable()
		ui.bookmarkSelect.ClearSelected()
		ui.bookmarkSelect.Disable()
		ui.applyBtn.Disable()
		return
	}

	ui.selected = ci
	ui.sourceLabel.SetText(e.Source)
	if e.HasComment() {
		ui.commentLabel.SetText(ui.localization.GetText(KeyComment) + ": " + strings.TrimSpace(e.Comment))
	} else {
		ui.commentLabel.SetText("")
	}
	ui.translationEntry.SetText(e.Translation)
	ui.translationEntry.Enable()
	ui.fuzzyCheck.SetChecked(e.IsFuzzy())
	ui.fuzzyCheck.Enable()
	if e.Bookmark.IsSet() {
		ui.bookmarkSelect.SetSelected(e.Bookmark.String())
	} else {
		ui.bookmarkSelect.SetSelectedIndex(0)
	}
	ui.bookmarkSelect.Enable()
	ui.applyBtn.Enable()
}

// onApply writes the detail panel back to the selected entry. Entries that
// change bucket move, so the list is rebuilt and the entry reselected;
// otherwise only its row is repainted.
func (ui *EditorUI) onApply() {
	ci := ui.selected
	if ui.catalog == nil {
		return
	}
	e := ui.catalog.Entry(ci)
	if e == nil {
		return
	}

	before := listctrl.Classify(e)
	if ui.translationEntry.Text != e.Translation {
		e.SetTranslation(ui.translationEntry.Text)
	}
	e.SetFuzzy(ui.fuzzyCheck.Checked)
	e.SetBookmark(parseBookmark(ui.bookmarkSelect.Selected))

	if listctrl.Classify(e) != before {
		ui.list.SetCatalog(ui.catalog)
		ui.list.SelectEntry(ci)
	} else {
		ui.list.RefreshEntry(ci)
	}
	ui.updateStatus()
}

// parseBookmark converts a bookmark option back to a slot
func parseBookmark(s string) model.Bookmark {
	n, err := strconv.Atoi(s)
	if err != nil {
		return model.NoBookmark
	}
	return model.Bookmark(n)
}

// statusText formats catalog counts for the status bar
func (ui *EditorUI) statusText(s model.Stats) string {
	t := ui.localization.GetText
	parts := []string{
		fmt.Sprintf(CountLabelFormat, t(KeyTotal), s.Total),
		fmt.Sprintf(CountLabelFormat, t(KeyUntranslated), s.Untranslated),
		fmt.Sprintf(CountLabelFormat, t(KeyInvalid), s.Invalid),
		fmt.Sprintf(CountLabelFormat, t(KeyFuzzy), s.Fuzzy),
		fmt.Sprintf(CountLabelFormat, t(KeyBookmark), s.Bookmarked),
	}
	return strings.Join(parts, MiddleDotSeparator)
}

func (ui *EditorUI) updateStatus() {
	if ui.catalog == nil {
		ui.statusLabel.SetText(DashPlaceholder)
		return
	}
	ui.statusLabel.SetText(ui.statusText(ui.catalog.Stats()))
}

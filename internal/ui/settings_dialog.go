package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/catalog-editor/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	fontSizeEntry   *widget.Entry
	sampleSizeEntry *widget.Entry
	iconDirEntry    *widget.Entry
	shadedCheck     *widget.Check
	linesCheck      *widget.Check
	languageSelect  *widget.Select
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved runs
// after the values are stored.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.fontSizeEntry = widget.NewEntry()
	sd.fontSizeEntry.SetPlaceHolder(t(KeyThemeFontDefault))

	sd.sampleSizeEntry = widget.NewEntry()
	sd.sampleSizeEntry.SetPlaceHolder(strconv.Itoa(config.DefaultSampleSize))

	sd.iconDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(t(KeyBrowse), sd.onBrowseDirectory)
	iconDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.iconDirEntry)

	sd.shadedCheck = widget.NewCheck(t(KeyShadedRows), nil)
	sd.linesCheck = widget.NewCheck(t(KeyLineNumbers), nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyFontSize)+":"),
		sd.fontSizeEntry,
		sd.shadedCheck,
		sd.linesCheck,

		widget.NewSeparator(),

		widget.NewLabel(t(KeySampleSize)+":"),
		sd.sampleSizeEntry,

		widget.NewLabel(t(KeyIconDirectory)+":"),
		iconDirRow,
		widget.NewLabel(t(KeyRestartRequired)),

		widget.NewSeparator(),

		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	// an empty field stands for the theme font size
	fontSize := ""
	if size := sd.settings.GetFontSize(); size != 0 {
		fontSize = strconv.FormatFloat(float64(size), 'f', -1, 32)
	}
	sd.fontSizeEntry.SetText(fontSize)
	sd.sampleSizeEntry.SetText(strconv.Itoa(sd.settings.GetSampleSize()))
	sd.iconDirEntry.SetText(sd.settings.GetIconDirectory())
	sd.shadedCheck.SetChecked(sd.settings.GetShadedRows())
	sd.linesCheck.SetChecked(sd.settings.GetDisplayLines())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.iconDirEntry.SetText(uri.Path())
	}, sd.window)
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply stores the dialog values; unparsable numbers keep the old value
// and an empty font size restores the theme size
func (sd *SettingsDialog) apply() {
	if s := strings.TrimSpace(sd.fontSizeEntry.Text); s == "" {
		sd.settings.SetFontSize(0)
	} else if size, err := strconv.ParseFloat(s, 32); err == nil {
		sd.settings.SetFontSize(float32(size))
	}

	if s := strings.TrimSpace(sd.sampleSizeEntry.Text); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			sd.settings.SetSampleSize(n)
		}
	}

	sd.settings.SetIconDirectory(strings.TrimSpace(sd.iconDirEntry.Text))
	sd.settings.SetShadedRows(sd.shadedCheck.Checked)
	sd.settings.SetDisplayLines(sd.linesCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}

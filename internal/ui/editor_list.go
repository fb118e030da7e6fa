package ui

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/catalog-editor/internal/assets"
	"github.com/ytget/catalog-editor/internal/listctrl"
	"github.com/ytget/catalog-editor/internal/model"
	"github.com/ytget/catalog-editor/internal/palette"
)

// Row template object positions
const (
	rowObjBackground = iota
	rowObjIcon
	rowObjSource
	rowObjTranslation
	rowObjLine
)

// EditorList is a virtual list of catalog entries. Rows are never
// materialised per entry: widget.List asks for the visible rows only and
// every row is derived from the entry state on each update.
type EditorList struct {
	widget.BaseWidget

	shell        *listctrl.Shell
	palette      *palette.Palette
	localization *Localization

	list        *widget.List
	header      *fyne.Container
	headerTexts [3]*canvas.Text

	background color.Color
	rowCount   int
	widths     listctrl.ColumnWidths
	showLine   bool
	lastWidth  float32

	// OnEntrySelected is called with the catalog index of a selected row
	OnEntrySelected func(catalogIndex int)
}

// NewEditorList builds the status icon palette and creates the list. A
// missing status icon is fatal for the list and returned as an error.
func NewEditorList(icons assets.Provider, localization *Localization, opts listctrl.Options) (*EditorList, error) {
	pal, err := palette.Build(icons)
	if err != nil {
		return nil, fmt.Errorf("build status icons: %w", err)
	}

	attrs := listctrl.NewAttributes(
		themeColor(theme.ColorNameBackground),
		themeColor(theme.ColorNameForeground),
		listctrl.Font{Size: theme.TextSize()},
	)

	el := &EditorList{
		palette:      pal,
		localization: localization,
		background:   attrs.Style(listctrl.StyleNormal, 0).Background,
		widths:       listctrl.ColumnWidths{MaxChars: -1},
	}
	el.ExtendBaseWidget(el)

	el.createHeader()
	el.list = widget.NewList(
		func() int {
			return el.rowCount
		},
		el.createRow,
		el.updateRow,
	)
	el.list.OnSelected = el.onSelected

	opts.TextInset = int(textInset())
	el.shell = listctrl.NewShell(&listViewport{el: el}, attrs, opts)
	el.shell.SetCharWidth(averageCharWidth(listctrl.Font{Size: theme.TextSize()}))

	return el, nil
}

// themeColor returns a colour of the current app theme
func themeColor(name fyne.ThemeColorName) color.Color {
	app := fyne.CurrentApp()
	if app == nil {
		return theme.DefaultTheme().Color(name, theme.VariantLight)
	}
	return app.Settings().Theme().Color(name, app.Settings().ThemeVariant())
}

// averageCharWidth measures the mean glyph width of f
func averageCharWidth(f listctrl.Font) float32 {
	size := f.Size
	if size <= 0 {
		size = theme.TextSize()
	}
	w := fyne.MeasureText(CharWidthSample, size, f.Style).Width
	return w / float32(len(CharWidthSample))
}

// textInset is the part of the source column taken by the status icon
func textInset() float32 {
	return 2*theme.Padding() + assets.IconSize
}

// textSlots returns the x offset and width of each column's text
func (el *EditorList) textSlots() (x, width [3]float32) {
	pad := theme.Padding()
	w := el.widths

	x[listctrl.ColumnSource] = textInset()
	width[listctrl.ColumnSource] = float32(w.Source) - textInset() - pad
	x[listctrl.ColumnTranslation] = float32(w.Source) + pad
	width[listctrl.ColumnTranslation] = float32(w.Translation) - 2*pad
	x[listctrl.ColumnLine] = float32(w.Source + w.Translation)
	width[listctrl.ColumnLine] = float32(w.Line) - pad

	for i := range width {
		if width[i] < 0 {
			width[i] = 0
		}
	}
	return x, width
}

// fitText cuts s to the longest prefix whose rendered width fits width
func fitText(s string, width, size float32, style fyne.TextStyle) string {
	if s == "" || fyne.MeasureText(s, size, style).Width <= width {
		return s
	}
	runes := []rune(s)
	lo, hi := 0, len(runes)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if fyne.MeasureText(string(runes[:mid]), size, style).Width <= width {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return string(runes[:lo])
}

// createHeader creates the column title row
func (el *EditorList) createHeader() {
	keys := [3]string{KeyOriginalString, KeyTranslation, KeyLine}
	objects := []fyne.CanvasObject{
		canvas.NewRectangle(color.Transparent),
		canvas.NewRectangle(color.Transparent),
	}
	for i, key := range keys {
		t := canvas.NewText(el.localization.GetText(key), themeColor(theme.ColorNameForeground))
		t.TextStyle = fyne.TextStyle{Bold: true}
		el.headerTexts[i] = t
		objects = append(objects, t)
	}
	el.headerTexts[listctrl.ColumnLine].Alignment = fyne.TextAlignTrailing
	el.header = container.New(&columnLayout{list: el}, objects...)
}

// RefreshHeader re-reads the localized column titles
func (el *EditorList) RefreshHeader() {
	el.headerTexts[listctrl.ColumnSource].Text = el.localization.GetText(KeyOriginalString)
	el.headerTexts[listctrl.ColumnTranslation].Text = el.localization.GetText(KeyTranslation)
	el.headerTexts[listctrl.ColumnLine].Text = el.localization.GetText(KeyLine)
	el.header.Refresh()
}

// createRow creates the template of one virtual row
func (el *EditorList) createRow() fyne.CanvasObject {
	icon := canvas.NewImageFromImage(el.palette.Image(palette.Nothing))
	icon.FillMode = canvas.ImageFillOriginal
	icon.ScaleMode = canvas.ImageScalePixels
	icon.SetMinSize(fyne.NewSize(assets.IconSize, assets.IconSize))

	source := canvas.NewText("", themeColor(theme.ColorNameForeground))
	translation := canvas.NewText("", themeColor(theme.ColorNameForeground))
	line := canvas.NewText("", themeColor(theme.ColorNameForeground))
	line.Alignment = fyne.TextAlignTrailing

	return container.New(&columnLayout{list: el},
		canvas.NewRectangle(color.Transparent), icon, source, translation, line)
}

// updateRow fills a row template from the entry shown at id
func (el *EditorList) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	row, ok := obj.(*fyne.Container)
	if !ok || len(row.Objects) <= rowObjLine {
		log.Printf("Warning: unexpected row template %T", obj)
		return
	}

	style := el.shell.Style(id)

	bg := row.Objects[rowObjBackground].(*canvas.Rectangle)
	if style.Background == el.background {
		bg.FillColor = color.Transparent
	} else {
		bg.FillColor = style.Background
	}

	icon := row.Objects[rowObjIcon].(*canvas.Image)
	icon.Image = el.palette.Image(el.shell.IconFlags(id))

	size := style.Font.Size
	if size <= 0 {
		size = theme.TextSize()
	}
	_, slots := el.textSlots()
	for col := listctrl.ColumnSource; col <= listctrl.ColumnLine; col++ {
		t := row.Objects[rowObjSource+col].(*canvas.Text)
		t.Text = fitText(el.shell.Text(id, col), slots[col], size, style.Font.Style)
		t.Color = style.Foreground
		t.TextStyle = style.Font.Style
		t.TextSize = size
	}

	row.Refresh()
}

func (el *EditorList) onSelected(id widget.ListItemID) {
	ci := el.shell.CatalogIndexOf(id)
	if ci < 0 {
		return
	}
	if el.OnEntrySelected != nil {
		el.OnEntrySelected(ci)
	}
}

// SetCatalog shows c, or empties the list when c is nil
func (el *EditorList) SetCatalog(c model.Catalog) {
	el.shell.SetCatalog(c)
}

// SetDisplayLineColumn shows or hides the line number column
func (el *EditorList) SetDisplayLineColumn(show bool) {
	el.shell.SetDisplayLineColumn(show)
}

// SetShadedRows toggles alternate row shading
func (el *EditorList) SetShadedRows(shaded bool) {
	el.shell.SetShadedRows(shaded)
}

// SetCustomFont changes the list font; nil restores the theme font
func (el *EditorList) SetCustomFont(f *listctrl.Font) {
	measured := listctrl.Font{Size: theme.TextSize()}
	if f != nil {
		measured = *f
	}
	el.shell.SetCharWidth(averageCharWidth(measured))
	el.shell.SetCustomFont(f)
}

// RefreshEntry repaints the row of one catalog entry
func (el *EditorList) RefreshEntry(catalogIndex int) {
	el.shell.RefreshEntry(catalogIndex)
}

// DisplayIndexOf returns the row of a catalog index, or -1
func (el *EditorList) DisplayIndexOf(catalogIndex int) int {
	return el.shell.DisplayIndexOf(catalogIndex)
}

// CatalogIndexOf returns the catalog index at a row, or -1
func (el *EditorList) CatalogIndexOf(displayIndex int) int {
	return el.shell.CatalogIndexOf(displayIndex)
}

// SelectEntry selects and reveals the row of a catalog entry
func (el *EditorList) SelectEntry(catalogIndex int) {
	row := el.shell.DisplayIndexOf(catalogIndex)
	if row < 0 {
		return
	}
	el.list.UnselectAll()
	el.list.Select(row)
}

// Shell returns the toolkit-neutral list core
func (el *EditorList) Shell() *listctrl.Shell {
	return el.shell
}

// Palette returns the status icon palette
func (el *EditorList) Palette() *palette.Palette {
	return el.palette
}

// CreateRenderer implements fyne.Widget
func (el *EditorList) CreateRenderer() fyne.WidgetRenderer {
	return &editorListRenderer{el: el}
}

// editorListRenderer stacks the header above the list and reports width
// changes to the shell
type editorListRenderer struct {
	el *EditorList
}

func (r *editorListRenderer) Layout(size fyne.Size) {
	headerH := r.el.header.MinSize().Height
	r.el.header.Move(fyne.NewPos(0, 0))
	r.el.header.Resize(fyne.NewSize(size.Width, headerH))
	r.el.list.Move(fyne.NewPos(0, headerH))
	r.el.list.Resize(fyne.NewSize(size.Width, size.Height-headerH))

	if size.Width != r.el.lastWidth {
		r.el.lastWidth = size.Width
		r.el.shell.OnResize(int(size.Width))
	}
}

func (r *editorListRenderer) MinSize() fyne.Size {
	h := r.el.header.MinSize()
	l := r.el.list.MinSize()
	return fyne.NewSize(fyne.Max(h.Width, l.Width), h.Height+l.Height)
}

func (r *editorListRenderer) Refresh() {
	r.el.header.Refresh()
	r.el.list.Refresh()
}

func (r *editorListRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.el.header, r.el.list}
}

func (r *editorListRenderer) Destroy() {}

// listViewport carries the shell's commands to the Fyne list
type listViewport struct {
	el *EditorList
}

func (v *listViewport) SetRowCount(n int) {
	v.el.rowCount = n
}

func (v *listViewport) RefreshRows(from, to int) {
	if from <= 0 && to >= v.el.rowCount-1 {
		v.el.list.Refresh()
		return
	}
	for id := from; id <= to; id++ {
		v.el.list.RefreshItem(id)
	}
}

func (v *listViewport) Clear() {
	v.el.list.UnselectAll()
	v.el.list.Refresh()
}

func (v *listViewport) SelectRow(row int) {
	v.el.list.UnselectAll()
	v.el.list.ScrollToTop()
	v.el.list.Select(row)
}

func (v *listViewport) SetColumns(showLine bool) {
	v.el.showLine = showLine
	if showLine {
		v.el.headerTexts[listctrl.ColumnLine].Show()
	} else {
		v.el.headerTexts[listctrl.ColumnLine].Hide()
	}
	v.el.header.Refresh()
}

func (v *listViewport) SetColumnWidths(w listctrl.ColumnWidths) {
	v.el.widths = w
	v.el.header.Refresh()
	v.el.list.Refresh()
}

// columnLayout places a row's background, icon and the three column
// texts according to the current column widths
type columnLayout struct {
	list *EditorList
}

func (l *columnLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) <= rowObjLine {
		return
	}
	pad := theme.Padding()

	objects[rowObjBackground].Move(fyne.NewPos(0, 0))
	objects[rowObjBackground].Resize(size)

	iconY := (size.Height - assets.IconSize) / 2
	objects[rowObjIcon].Move(fyne.NewPos(pad, iconY))
	objects[rowObjIcon].Resize(fyne.NewSize(assets.IconSize, assets.IconSize))

	x, width := l.list.textSlots()
	for col := listctrl.ColumnSource; col <= listctrl.ColumnLine; col++ {
		obj := objects[rowObjSource+col]
		if col == listctrl.ColumnLine && !l.list.showLine {
			obj.Hide()
			continue
		}
		obj.Show()
		h := obj.MinSize().Height
		obj.Move(fyne.NewPos(x[col], (size.Height-h)/2))
		obj.Resize(fyne.NewSize(width[col], h))
	}
}

// MinSize is independent of the current column widths
func (l *columnLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	h := float32(assets.IconSize)
	for _, o := range objects[rowObjSource:] {
		if mh := o.MinSize().Height; mh > h {
			h = mh
		}
	}
	return fyne.NewSize(textInset()+2*RowMinTextWidth, h+theme.Padding())
}

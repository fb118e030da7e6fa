package ui

import (
	"errors"
	"image"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/catalog-editor/internal/assets"
	"github.com/ytget/catalog-editor/internal/listctrl"
	"github.com/ytget/catalog-editor/internal/model"
	"github.com/ytget/catalog-editor/internal/palette"
)

type brokenProvider struct{}

func (brokenProvider) Icon(name string) (image.Image, error) {
	return nil, assets.ErrUnknownIcon
}

func newTestList(t *testing.T, opts listctrl.Options) (*EditorList, fyne.Window) {
	t.Helper()
	test.NewApp()

	el, err := NewEditorList(assets.Builtin(), NewLocalization(), opts)
	if err != nil {
		t.Fatalf("NewEditorList returned error: %v", err)
	}
	w := test.NewWindow(el)
	w.Resize(fyne.NewSize(640, 480))
	return el, w
}

// twoEntryCatalog holds a translated entry followed by an untranslated one
func twoEntryCatalog() *model.MemoryCatalog {
	c := model.NewMemoryCatalog("de")
	done := model.NewEntry("Open file", 10)
	done.SetTranslation("Datei öffnen")
	done.Modified = false
	c.Add(done)
	c.Add(model.NewEntry("Close", 20))
	return c
}

func TestNewEditorList_MissingIcon(t *testing.T) {
	test.NewApp()

	_, err := NewEditorList(brokenProvider{}, NewLocalization(), listctrl.Options{})
	if err == nil {
		t.Fatal("Expected error for missing status icons")
	}
	if !errors.Is(err, palette.ErrMissingIcon) {
		t.Errorf("Expected ErrMissingIcon, got %v", err)
	}
}

func TestEditorList_ResizeSetsColumnWidths(t *testing.T) {
	el, w := newTestList(t, listctrl.Options{DisplayLines: true})
	defer w.Close()

	widths := el.Shell().Widths()
	width := int(el.Size().Width)
	if width <= 0 {
		t.Fatalf("Expected list to be laid out, got width %d", width)
	}
	if widths.Sum() != width-listctrl.ScrollbarGutter-listctrl.Margin {
		t.Errorf("Column widths %+v do not fill width %d", widths, width)
	}
	if widths.Line != listctrl.LineColumnWidth {
		t.Errorf("Expected line column width %d, got %d", listctrl.LineColumnWidth, widths.Line)
	}
	if widths.MaxChars <= 0 {
		t.Errorf("Expected positive MaxChars, got %d", widths.MaxChars)
	}
	if el.widths != widths {
		t.Error("List should keep the widths pushed by the shell")
	}
}

func TestEditorList_SetCatalog(t *testing.T) {
	el, w := newTestList(t, listctrl.Options{DisplayLines: true})
	defer w.Close()

	selected := -1
	el.OnEntrySelected = func(ci int) { selected = ci }

	el.SetCatalog(twoEntryCatalog())

	if el.rowCount != 2 {
		t.Fatalf("Expected 2 rows, got %d", el.rowCount)
	}
	if el.list.Length() != 2 {
		t.Errorf("Expected list length 2, got %d", el.list.Length())
	}
	// untranslated entry sorts first
	if selected != 1 {
		t.Errorf("Expected catalog entry 1 selected, got %d", selected)
	}
	if el.DisplayIndexOf(0) != 1 || el.CatalogIndexOf(0) != 1 {
		t.Errorf("Unexpected mapping: display(0)=%d catalog(0)=%d", el.DisplayIndexOf(0), el.CatalogIndexOf(0))
	}

	el.SetCatalog(nil)
	if el.rowCount != 0 {
		t.Errorf("Expected no rows after clearing, got %d", el.rowCount)
	}
	if el.CatalogIndexOf(0) != -1 {
		t.Error("Cleared list should map no rows")
	}
}

func TestEditorList_UpdateRow(t *testing.T) {
	el, w := newTestList(t, listctrl.Options{DisplayLines: true})
	defer w.Close()

	c := twoEntryCatalog()
	c.Entry(1).Comment = "toolbar button"
	el.SetCatalog(c)

	row := el.createRow()
	el.updateRow(0, row)

	objects := row.(*fyne.Container).Objects
	source := objects[rowObjSource].(*canvas.Text)
	line := objects[rowObjLine].(*canvas.Text)
	icon := objects[rowObjIcon].(*canvas.Image)

	if source.Text != "Close" {
		t.Errorf("Expected source 'Close', got %q", source.Text)
	}
	if line.Text != "20" {
		t.Errorf("Expected line '20', got %q", line.Text)
	}
	if !source.TextStyle.Bold {
		t.Error("Untranslated rows should be bold")
	}
	if icon.Image != el.Palette().Image(palette.Comment) {
		t.Error("Row icon should be the comment status image")
	}

	el.updateRow(1, row)
	if source.Text != "Open file" {
		t.Errorf("Expected source 'Open file', got %q", source.Text)
	}
	if source.TextStyle.Bold {
		t.Error("Translated rows should use the regular font")
	}
	if icon.Image != el.Palette().Image(palette.Nothing) {
		t.Error("Row icon should be the empty status image")
	}
}

func TestEditorList_LongTextStaysInColumn(t *testing.T) {
	el, w := newTestList(t, listctrl.Options{DisplayLines: true})
	defer w.Close()

	long := strings.Repeat("W", 200)
	c := model.NewMemoryCatalog("de")
	e := model.NewEntry(long, 123456)
	e.SetTranslation(long)
	c.Add(e)
	el.SetCatalog(c)

	row := el.createRow()
	el.updateRow(0, row)
	row.Resize(fyne.NewSize(el.Size().Width, row.MinSize().Height))

	objects := row.(*fyne.Container).Objects
	source := objects[rowObjSource].(*canvas.Text)
	translation := objects[rowObjTranslation].(*canvas.Text)
	line := objects[rowObjLine].(*canvas.Text)

	if source.Text == "" || !strings.HasPrefix(long, source.Text) {
		t.Fatalf("Expected a prefix of the source, got %q", source.Text)
	}
	drawn := func(txt *canvas.Text) float32 {
		return txt.Position().X + fyne.MeasureText(txt.Text, txt.TextSize, txt.TextStyle).Width
	}
	if end := drawn(source); end > translation.Position().X {
		t.Errorf("Source text ends at %v, past the translation column at %v", end, translation.Position().X)
	}
	if end := drawn(translation); end > line.Position().X {
		t.Errorf("Translation text ends at %v, past the line column at %v", end, line.Position().X)
	}
	if end := drawn(translation); end > float32(el.widths.Sum()) {
		t.Errorf("Translation text ends at %v, past the columns at %d", end, el.widths.Sum())
	}
}

func TestEditorList_MinSizeIgnoresWindowWidth(t *testing.T) {
	el, w := newTestList(t, listctrl.Options{DisplayLines: true})
	defer w.Close()
	el.SetCatalog(twoEntryCatalog())

	narrow := el.MinSize().Width
	w.Resize(fyne.NewSize(1400, 480))
	if el.Shell().Widths().Sum() <= 1000 {
		t.Fatalf("Expected wide columns after resize, got %+v", el.Shell().Widths())
	}
	if wide := el.MinSize().Width; wide != narrow {
		t.Errorf("Minimum width followed the window: %v at 640px, %v at 1400px", narrow, wide)
	}
	if narrow >= 640 {
		t.Errorf("Minimum width %v should allow shrinking below 640px", narrow)
	}
}

func TestFitText(t *testing.T) {
	test.NewApp()
	size := float32(14)
	style := fyne.TextStyle{}
	full := "Translation catalog"
	width := fyne.MeasureText("Translation", size, style).Width

	if got := fitText(full, width, size, style); got != "Translation" {
		t.Errorf("Expected %q, got %q", "Translation", got)
	}
	if got := fitText(full, 1000, size, style); got != full {
		t.Errorf("Text that fits should be kept, got %q", got)
	}
	if got := fitText(full, 0, size, style); got != "" {
		t.Errorf("Zero width should drop the text, got %q", got)
	}
	if got := fitText("", 10, size, style); got != "" {
		t.Errorf("Expected empty text, got %q", got)
	}
}

func TestEditorList_HideLineColumn(t *testing.T) {
	el, w := newTestList(t, listctrl.Options{DisplayLines: true})
	defer w.Close()

	el.SetCatalog(twoEntryCatalog())
	el.SetDisplayLineColumn(false)

	if el.showLine {
		t.Error("Line column should be hidden")
	}
	if el.headerTexts[listctrl.ColumnLine].Visible() {
		t.Error("Line header should be hidden")
	}
	if got := el.Shell().Text(0, listctrl.ColumnLine); got != "" {
		t.Errorf("Expected empty line text, got %q", got)
	}
	if el.Shell().Widths().Line != 0 {
		t.Error("Hidden line column should have no width")
	}
}

func TestEditorList_RefreshEntryAfterEdit(t *testing.T) {
	el, w := newTestList(t, listctrl.Options{})
	defer w.Close()

	c := twoEntryCatalog()
	el.SetCatalog(c)

	c.Entry(0).SetBookmark(3)
	el.RefreshEntry(0)

	row := el.DisplayIndexOf(0)
	want := palette.BookmarkFlags(3)
	if got := el.Shell().IconFlags(row); got != want {
		t.Errorf("Expected flags %d, got %d", want, got)
	}

	// stale indices are ignored
	el.RefreshEntry(42)
}

func TestEditorList_SetCustomFont(t *testing.T) {
	el, w := newTestList(t, listctrl.Options{})
	defer w.Close()

	before := el.Shell().Widths().MaxChars
	el.SetCustomFont(&listctrl.Font{Size: 28})
	after := el.Shell().Widths().MaxChars
	if after >= before {
		t.Errorf("Larger font should fit fewer chars: before %d, after %d", before, after)
	}

	el.SetCatalog(twoEntryCatalog())
	if size := el.Shell().Style(0).Font.Size; size != 28 {
		t.Errorf("Expected font size 28, got %v", size)
	}

	el.SetCustomFont(nil)
	if el.Shell().Widths().MaxChars != before {
		t.Error("Theme font should restore the original MaxChars")
	}
}

func TestEditorList_SelectEntry(t *testing.T) {
	el, w := newTestList(t, listctrl.Options{})
	defer w.Close()

	var got []int
	el.OnEntrySelected = func(ci int) { got = append(got, ci) }
	el.SetCatalog(twoEntryCatalog())

	el.SelectEntry(0)
	el.SelectEntry(0)
	el.SelectEntry(99)

	want := []int{1, 0, 0}
	if len(got) != len(want) {
		t.Fatalf("Expected selections %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Selection %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestAppIconResource(t *testing.T) {
	test.NewApp()

	p, err := palette.Build(assets.Builtin())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	res, err := AppIconResource(p)
	if err != nil {
		t.Fatalf("AppIconResource returned error: %v", err)
	}
	if res.Name() != AppIcon {
		t.Errorf("Expected name %s, got %s", AppIcon, res.Name())
	}
	if len(res.Content()) == 0 {
		t.Error("Expected encoded icon content")
	}
}

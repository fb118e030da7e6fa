package listctrl

import (
	"log"

	"github.com/ytget/catalog-editor/internal/model"
	"github.com/ytget/catalog-editor/internal/palette"
)

// Viewport is the windowing side of the list: it owns the virtual rows
// and repaints on request.
type Viewport interface {
	SetRowCount(n int)
	RefreshRows(from, to int)
	Clear()
	SelectRow(row int)
	SetColumns(showLine bool)
	SetColumnWidths(w ColumnWidths)
}

// Options configures a list instance
type Options struct {
	ShadedRows   bool // alternate row backgrounds
	DisplayLines bool // show the source line column
	TextInset    int  // pixels of the source column before its text
}

// Shell owns the index mapping and the row resolver and drives a Viewport.
// All methods must run on the UI goroutine.
type Shell struct {
	view      Viewport
	catalog   model.Catalog
	mapping   *Mapping
	attrs     *Attributes
	resolver  Resolver
	opts      Options
	rowCount  int
	width     int
	charWidth float32
	widths    ColumnWidths
}

// NewShell creates a shell with no catalog attached
func NewShell(view Viewport, attrs *Attributes, opts Options) *Shell {
	s := &Shell{
		view:    view,
		attrs:   attrs,
		opts:    opts,
		mapping: Rebuild(nil),
		widths:  ColumnWidths{MaxChars: -1},
	}
	s.resolver = Resolver{
		mapping:    s.mapping,
		attrs:      attrs,
		shaded:     opts.ShadedRows,
		lineColumn: opts.DisplayLines,
		maxChars:   -1,
	}
	view.SetColumns(opts.DisplayLines)
	return s
}

// SetCatalog attaches c, or detaches the current catalog when c is nil
func (s *Shell) SetCatalog(c model.Catalog) {
	s.OnCatalogChanged(c)
}

// OnCatalogChanged detaches the current catalog, rebuilds the mapping for c
// and attaches it. Row queries issued while the row count is being dropped
// see no catalog.
func (s *Shell) OnCatalogChanged(c model.Catalog) {
	s.catalog = nil
	s.resolver.catalog = nil
	s.setRowCount(0)

	m := Rebuild(c)
	s.mapping = m
	s.resolver.mapping = m

	s.catalog = c
	s.resolver.catalog = c
	n := m.Len()
	s.setRowCount(n)

	log.Printf("Catalog changed: %d entries (untranslated=%d invalid=%d fuzzy=%d)",
		n, m.BucketSize(BucketUntranslated), m.BucketSize(BucketInvalid), m.BucketSize(BucketFuzzy))

	if n > 0 {
		s.view.SelectRow(0)
		s.view.RefreshRows(0, n-1)
	} else {
		s.view.Clear()
	}
}

func (s *Shell) setRowCount(n int) {
	s.rowCount = n
	s.view.SetRowCount(n)
}

// Catalog returns the attached catalog or nil
func (s *Shell) Catalog() model.Catalog {
	return s.catalog
}

// Mapping returns the current index mapping
func (s *Shell) Mapping() *Mapping {
	return s.mapping
}

// RowCount returns the number of virtual rows
func (s *Shell) RowCount() int {
	return s.rowCount
}

// OnResize recomputes the column widths for a new viewport width
func (s *Shell) OnResize(width int) {
	s.width = width
	s.applyWidths()
}

// SetCharWidth updates the average character width of the list font
func (s *Shell) SetCharWidth(w float32) {
	if w == s.charWidth {
		return
	}
	s.charWidth = w
	s.applyWidths()
}

func (s *Shell) applyWidths() {
	s.widths = ComputeColumnWidths(s.width, s.opts.DisplayLines, s.charWidth, s.opts.TextInset)
	s.resolver.maxChars = s.widths.MaxChars
	s.view.SetColumnWidths(s.widths)
}

// Widths returns the current column widths
func (s *Shell) Widths() ColumnWidths {
	return s.widths
}

// SetDisplayLineColumn shows or hides the line number column
func (s *Shell) SetDisplayLineColumn(show bool) {
	if s.opts.DisplayLines == show {
		return
	}
	s.opts.DisplayLines = show
	s.resolver.lineColumn = show
	s.view.SetColumns(show)
	s.applyWidths()
	s.refreshAll()
}

// DisplayLineColumn reports whether the line number column is shown
func (s *Shell) DisplayLineColumn() bool {
	return s.opts.DisplayLines
}

// SetShadedRows toggles alternate row shading
func (s *Shell) SetShadedRows(shaded bool) {
	if s.opts.ShadedRows == shaded {
		return
	}
	s.opts.ShadedRows = shaded
	s.resolver.shaded = shaded
	s.refreshAll()
}

// ShadedRows reports whether alternate rows are shaded
func (s *Shell) ShadedRows() bool {
	return s.opts.ShadedRows
}

// SetCustomFont changes the list font; nil restores the theme font
func (s *Shell) SetCustomFont(f *Font) {
	s.attrs.SetCustomFont(f)
	s.refreshAll()
}

func (s *Shell) refreshAll() {
	if s.rowCount > 0 {
		s.view.RefreshRows(0, s.rowCount-1)
	} else {
		s.view.Clear()
	}
}

// RefreshEntry repaints the row of a catalog entry whose text changed.
// Status changes that move the entry to another bucket need SetCatalog.
func (s *Shell) RefreshEntry(catalogIndex int) {
	row := s.DisplayIndexOf(catalogIndex)
	if row < 0 {
		return
	}
	s.view.RefreshRows(row, row)
}

// DisplayIndexOf returns the display row of a catalog index, or -1
func (s *Shell) DisplayIndexOf(catalogIndex int) int {
	return s.mapping.DisplayIndex(catalogIndex)
}

// CatalogIndexOf returns the catalog index at a display row, or -1
func (s *Shell) CatalogIndexOf(displayIndex int) int {
	return s.mapping.CatalogIndex(displayIndex)
}

// Text returns the cell text for row and column
func (s *Shell) Text(row, column int) string {
	return s.resolver.Text(row, column)
}

// Style returns the style of row
func (s *Shell) Style(row int) Style {
	return s.resolver.Style(row)
}

// IconFlags returns the palette flags of row
func (s *Shell) IconFlags(row int) palette.Flags {
	return s.resolver.IconFlags(row)
}

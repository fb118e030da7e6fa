package listctrl

import (
	"strconv"

	"github.com/ytget/catalog-editor/internal/model"
	"github.com/ytget/catalog-editor/internal/palette"
)

// Column indices
const (
	ColumnSource      = 0
	ColumnTranslation = 1
	ColumnLine        = 2
)

// Resolver derives row text, style and icon flags from the entry a display
// row maps to. Every query tolerates a missing catalog and stale rows.
type Resolver struct {
	catalog    model.Catalog
	mapping    *Mapping
	attrs      *Attributes
	shaded     bool
	lineColumn bool
	maxChars   int
}

// entry returns the catalog entry shown at row, or nil
func (r *Resolver) entry(row int) *model.Entry {
	if r.catalog == nil {
		return nil
	}
	ci := r.mapping.CatalogIndex(row)
	if ci < 0 {
		return nil
	}
	return r.catalog.Entry(ci)
}

// Text returns the cell text of row in column
func (r *Resolver) Text(row, column int) string {
	e := r.entry(row)
	if e == nil {
		return ""
	}

	switch column {
	case ColumnSource:
		return Truncate(e.Source, r.maxChars)
	case ColumnTranslation:
		return e.Translation
	case ColumnLine:
		if !r.lineColumn {
			return ""
		}
		return strconv.Itoa(e.Line)
	default:
		return ""
	}
}

// Style returns the visual style of row. Precedence is
// untranslated > fuzzy > invalid > normal, which intentionally differs from
// the bucket order.
func (r *Resolver) Style(row int) Style {
	parity := 0
	if r.shaded {
		parity = row % 2
		if parity < 0 {
			parity = -parity
		}
	}

	e := r.entry(row)
	switch {
	case e == nil:
		return r.attrs.Style(StyleNormal, parity)
	case !e.IsTranslated():
		return r.attrs.Style(StyleUntranslated, parity)
	case e.IsFuzzy():
		return r.attrs.Style(StyleFuzzy, parity)
	case e.IsInvalid():
		return r.attrs.Style(StyleInvalid, parity)
	default:
		return r.attrs.Style(StyleNormal, parity)
	}
}

// IconFlags returns the palette flags of row
func (r *Resolver) IconFlags(row int) palette.Flags {
	return palette.For(r.entry(row))
}

// Truncate shortens s to at most max runes; a negative max leaves s intact
func Truncate(s string, max int) string {
	if max < 0 {
		return s
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}

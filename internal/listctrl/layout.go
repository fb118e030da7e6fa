package listctrl

// Layout sizing in pixels
const (
	ScrollbarGutter = 16
	Margin          = 10
	LineColumnWidth = 50
)

// ColumnWidths holds the pixel widths of the list columns and the number
// of source characters that fit in the source text slot
type ColumnWidths struct {
	Source      int
	Translation int
	Line        int
	MaxChars    int // -1 when unknown
}

// Sum returns the total width of all columns
func (w ColumnWidths) Sum() int {
	return w.Source + w.Translation + w.Line
}

// Reserved returns the pixels not given to any column
func Reserved(showLine bool) int {
	if showLine {
		return ScrollbarGutter + Margin + LineColumnWidth
	}
	return ScrollbarGutter + Margin
}

// ComputeColumnWidths splits the viewport between the source and
// translation columns, the translation column taking the odd pixel.
// charWidth is the average character width used for MaxChars and inset is
// the part of the source column drawn before the text starts.
func ComputeColumnWidths(viewport int, showLine bool, charWidth float32, inset int) ColumnWidths {
	var w ColumnWidths
	if showLine {
		w.Line = LineColumnWidth
	}

	rest := viewport - ScrollbarGutter - Margin - w.Line
	if rest < 0 {
		rest = 0
	}
	w.Source = rest / 2
	w.Translation = rest - rest/2

	w.MaxChars = -1
	if charWidth > 0 {
		slot := w.Source - inset
		if slot < 0 {
			slot = 0
		}
		w.MaxChars = int(float32(slot) / charWidth)
	}
	return w
}

package ui

import (
	"bytes"
	"fmt"
	"image/png"

	"fyne.io/fyne/v2"

	"github.com/ytget/catalog-editor/internal/palette"
)

const (
	AppIcon = "catalog-editor.png"
)

// appIconFlags selects the palette image used as the window icon
const appIconFlags = palette.Automatic | palette.Comment | palette.Modified

// AppIconResource encodes a composite status icon as the application icon
func AppIconResource(p *palette.Palette) (fyne.Resource, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, p.Image(appIconFlags)); err != nil {
		return nil, fmt.Errorf("encode app icon: %w", err)
	}
	return fyne.NewStaticResource(AppIcon, buf.Bytes()), nil
}

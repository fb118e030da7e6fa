package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"path/filepath"

	"fyne.io/fyne/v2"
)

// Well-known status icon names
const (
	IconNothing   = "status-nothing"
	IconAutomatic = "status-automatic"
	IconComment   = "status-comment"
	IconModified  = "status-modified"
)

// IconSize is the edge length of status icons in pixels
const IconSize = 16

// ErrUnknownIcon is returned for names a provider has no image for
var ErrUnknownIcon = errors.New("unknown icon")

// Provider supplies status icons by name
type Provider interface {
	Icon(name string) (image.Image, error)
}

// Names returns the icon names the list control needs
func Names() []string {
	return []string{IconNothing, IconAutomatic, IconComment, IconModified}
}

// builtinProvider draws the status icons in code
type builtinProvider struct {
	icons map[string]image.Image
}

// Builtin returns a provider with procedurally drawn icons
func Builtin() Provider {
	return &builtinProvider{
		icons: map[string]image.Image{
			IconNothing:   blank(),
			IconAutomatic: filledRect(image.Rect(10, 10, 15, 15), color.RGBA{R: 25, G: 118, B: 210, A: 255}),
			IconComment:   filledRect(image.Rect(9, 1, 15, 6), color.RGBA{R: 255, G: 193, B: 7, A: 255}),
			IconModified:  filledRect(image.Rect(4, 9, 8, 13), color.RGBA{R: 183, G: 28, B: 28, A: 255}),
		},
	}
}

// Icon returns the drawn icon for name
func (p *builtinProvider) Icon(name string) (image.Image, error) {
	img, ok := p.icons[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIcon, name)
	}
	return img, nil
}

func blank() *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, IconSize, IconSize))
}

func filledRect(r image.Rectangle, c color.Color) *image.NRGBA {
	img := blank()
	draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

// dirProvider loads "<name>.png" files from a directory
type dirProvider struct {
	dir string
}

// FromDir returns a provider reading PNG icons from dir
func FromDir(dir string) Provider {
	return &dirProvider{dir: dir}
}

// Icon loads and decodes the icon file for name
func (p *dirProvider) Icon(name string) (image.Image, error) {
	path := filepath.Join(p.dir, name+".png")
	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("load icon %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(res.Content()))
	if err != nil {
		return nil, fmt.Errorf("decode icon %s: %w", path, err)
	}
	return img, nil
}

package palette

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/ytget/catalog-editor/internal/assets"
	"github.com/ytget/catalog-editor/internal/model"
)

// Flags selects a palette image: status bits in the low three bits and the
// bookmark state (0 = none, 1..10 = digit 0..9) from BookmarkShift upwards.
type Flags uint8

const (
	Nothing   Flags = 0x00
	Automatic Flags = 0x01
	Comment   Flags = 0x02
	Modified  Flags = 0x04

	BookmarkShift = 3
)

const (
	comboCount     = int(Automatic|Comment|Modified) + 1
	bookmarkStates = int(model.MaxBookmark) + 2

	// Size is the number of images in a palette
	Size = comboCount * bookmarkStates
)

// TransparentKey marks pixels that become transparent after composition.
// Status icons must never use this colour.
var TransparentKey = color.RGBA{R: 254, G: 0, B: 253, A: 255}

// ErrMissingIcon is returned when a status icon cannot be loaded
var ErrMissingIcon = errors.New("missing status icon")

// BookmarkFlags returns the bookmark bits for b
func BookmarkFlags(b model.Bookmark) Flags {
	if !b.IsSet() {
		return Nothing
	}
	return Flags(int(b)+1) << BookmarkShift
}

// For computes the palette flags of an entry
func For(e *model.Entry) Flags {
	if e == nil {
		return Nothing
	}
	f := Nothing
	if e.IsAutomatic() {
		f |= Automatic
	}
	if e.HasComment() {
		f |= Comment
	}
	if e.IsModified() {
		f |= Modified
	}
	return f | BookmarkFlags(e.Bookmark)
}

// Combo returns the status bits without the bookmark
func (f Flags) Combo() Flags {
	return f & (Automatic | Comment | Modified)
}

// Bookmark returns the bookmark encoded in f
func (f Flags) Bookmark() model.Bookmark {
	v := int(f >> BookmarkShift)
	if v == 0 {
		return model.NoBookmark
	}
	return model.Bookmark(v - 1)
}

// Palette is the immutable set of composite status icons
type Palette struct {
	images []image.Image
}

// Build composes all status icon variants from the provider's base icons.
// A missing base icon makes the palette unusable and is returned as an error
// wrapping ErrMissingIcon.
func Build(p assets.Provider) (*Palette, error) {
	icons := make(map[string]image.Image, len(assets.Names()))
	for _, name := range assets.Names() {
		img, err := p.Icon(name)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrMissingIcon, name, err)
		}
		if img == nil {
			return nil, fmt.Errorf("%w %s: provider returned no image", ErrMissingIcon, name)
		}
		icons[name] = normalize(img)
	}

	nothing := icons[assets.IconNothing]
	modified := icons[assets.IconModified]

	images := make([]image.Image, 0, Size)
	images = append(images,
		compose(nothing),
		compose(nothing, icons[assets.IconAutomatic]),
		compose(nothing, icons[assets.IconComment]),
		compose(nothing, icons[assets.IconAutomatic], icons[assets.IconComment]),
		compose(nothing, modified),
	)
	for i := int(Automatic); i < int(Modified); i++ {
		images = append(images, compose(images[i], modified))
	}

	for digit := 0; digit <= int(model.MaxBookmark); digit++ {
		for i := 0; i < comboCount; i++ {
			images = append(images, withDigit(images[i], digit, 0, 0))
		}
	}

	return &Palette{images: images}, nil
}

// Len returns the number of images
func (p *Palette) Len() int {
	return len(p.images)
}

// Image returns the icon for f. A bookmark state beyond the last slot is
// dropped and the status bits are kept.
func (p *Palette) Image(f Flags) image.Image {
	if f>>BookmarkShift != 0 && !f.Bookmark().IsSet() {
		f = f.Combo()
	}
	return p.images[f]
}

// normalize converts an icon to a 16x16 NRGBA image, scaling if needed
func normalize(src image.Image) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, assets.IconSize, assets.IconSize))
	sb := src.Bounds()
	if sb.Dx() == assets.IconSize && sb.Dy() == assets.IconSize {
		draw.Draw(dst, dst.Bounds(), src, sb.Min, draw.Src)
		return dst
	}
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, sb, xdraw.Src, nil)
	return dst
}

// newCanvas returns an icon-sized canvas filled with the transparent key
func newCanvas() *image.RGBA {
	c := image.NewRGBA(image.Rect(0, 0, assets.IconSize, assets.IconSize))
	draw.Draw(c, c.Bounds(), &image.Uniform{C: TransparentKey}, image.Point{}, draw.Src)
	return c
}

// compose draws layers in order onto a keyed canvas; later layers occlude
// earlier ones.
func compose(layers ...image.Image) image.Image {
	c := newCanvas()
	for _, l := range layers {
		draw.Draw(c, c.Bounds(), l, l.Bounds().Min, draw.Over)
	}
	return applyKey(c)
}

// withDigit copies base and draws the bookmark digit with its top-left
// corner at (x, y).
func withDigit(base image.Image, digit, x, y int) image.Image {
	c := newCanvas()
	draw.Draw(c, c.Bounds(), base, base.Bounds().Min, draw.Over)

	glyph := digitGlyphs[digit]
	for row := 0; row < GlyphHeight; row++ {
		for col := 0; col < GlyphWidth; col++ {
			if glyph[row][col] == 1 {
				c.SetRGBA(x+col, y+row, color.RGBA{A: 255})
			}
		}
	}
	return applyKey(c)
}

// applyKey turns every key-coloured pixel transparent
func applyKey(c *image.RGBA) *image.NRGBA {
	out := image.NewNRGBA(c.Bounds())
	for y := c.Bounds().Min.Y; y < c.Bounds().Max.Y; y++ {
		for x := c.Bounds().Min.X; x < c.Bounds().Max.X; x++ {
			px := c.RGBAAt(x, y)
			if px == TransparentKey {
				continue
			}
			out.SetNRGBA(x, y, color.NRGBA{R: px.R, G: px.G, B: px.B, A: 255})
		}
	}
	return out
}

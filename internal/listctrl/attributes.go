package listctrl

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Colour heuristics
const (
	// DarkenFactor is applied per channel to the background of odd shaded rows
	DarkenFactor = 0.95

	// ColorSimilarity is the per-channel distance (0..255) within which a
	// background counts as almost white or almost black
	ColorSimilarity = 20
)

// Entry text colours
var (
	ErrorColor = hexColor("#ff0000")

	UntranslatedForWhite = hexColor("#103f67")
	FuzzyForWhite        = hexColor("#a9861b")

	UntranslatedForBlack = hexColor("#1962a0")
	FuzzyForBlack        = hexColor("#a9861b")
)

// hexColor parses a "#rrggbb" literal and panics on a malformed one
func hexColor(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("listctrl: bad colour literal %q: %v", s, err))
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// StyleKind names one of the row styles
type StyleKind int

const (
	StyleNormal StyleKind = iota
	StyleUntranslated
	StyleFuzzy
	StyleInvalid

	styleKindCount
)

// String returns the style name
func (k StyleKind) String() string {
	switch k {
	case StyleNormal:
		return "Normal"
	case StyleUntranslated:
		return "Untranslated"
	case StyleFuzzy:
		return "Fuzzy"
	case StyleInvalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// Font describes the text face of a row. A zero Size means the theme
// text size.
type Font struct {
	Style fyne.TextStyle
	Size  float32
}

// Bold returns f with the bold flag set
func (f Font) Bold() Font {
	f.Style.Bold = true
	return f
}

// Style is the visual attribute set of a row
type Style struct {
	Kind       StyleKind
	Font       Font
	Foreground color.Color
	Background color.Color
}

// Attributes is the table of row styles, two variants (even/odd) per kind
type Attributes struct {
	styles      [styleKindCount][2]Style
	defaultFont Font
}

// NewAttributes derives the row styles from the theme colours. Untranslated
// and fuzzy rows are only highlighted on almost white or almost black
// backgrounds; other backgrounds keep the theme foreground.
func NewAttributes(background, foreground color.Color, defaultFont Font) *Attributes {
	bg := toRGBA(background)
	fg := toRGBA(foreground)
	shaded := Darken(bg, DarkenFactor)

	a := &Attributes{defaultFont: defaultFont}
	for k := StyleNormal; k < styleKindCount; k++ {
		a.styles[k][0] = Style{Kind: k, Foreground: fg, Background: bg}
		a.styles[k][1] = Style{Kind: k, Foreground: fg, Background: shaded}
	}

	switch {
	case IsAlmostWhite(bg):
		a.setForeground(StyleUntranslated, UntranslatedForWhite)
		a.setForeground(StyleFuzzy, FuzzyForWhite)
	case IsAlmostBlack(bg):
		a.setForeground(StyleUntranslated, UntranslatedForBlack)
		a.setForeground(StyleFuzzy, FuzzyForBlack)
	}
	a.setForeground(StyleInvalid, ErrorColor)

	a.SetCustomFont(nil)
	return a
}

func (a *Attributes) setForeground(k StyleKind, c color.Color) {
	a.styles[k][0].Foreground = c
	a.styles[k][1].Foreground = c
}

// SetCustomFont sets the font of all styles; nil restores the default.
// Untranslated and fuzzy rows use the bold variant.
func (a *Attributes) SetCustomFont(f *Font) {
	font := a.defaultFont
	if f != nil {
		font = *f
	}
	for k := StyleNormal; k < styleKindCount; k++ {
		face := font
		if k == StyleUntranslated || k == StyleFuzzy {
			face = font.Bold()
		}
		a.styles[k][0].Font = face
		a.styles[k][1].Font = face
	}
}

// Style returns the style of kind k for the given row parity (0 or 1)
func (a *Attributes) Style(k StyleKind, parity int) Style {
	if k < 0 || k >= styleKindCount {
		k = StyleNormal
	}
	return a.styles[k][parity&1]
}

// IsAlmostWhite reports whether every channel is within ColorSimilarity of 255
func IsAlmostWhite(c color.Color) bool {
	r, g, b := rgb255(c)
	return r >= 255-ColorSimilarity && g >= 255-ColorSimilarity && b >= 255-ColorSimilarity
}

// IsAlmostBlack reports whether every channel is within ColorSimilarity of 0
func IsAlmostBlack(c color.Color) bool {
	r, g, b := rgb255(c)
	return r <= ColorSimilarity && g <= ColorSimilarity && b <= ColorSimilarity
}

// Darken multiplies every channel of c by factor, truncating
func Darken(c color.Color, factor float64) color.RGBA {
	r, g, b := rgb255(c)
	return color.RGBA{
		R: uint8(factor * float64(r)),
		G: uint8(factor * float64(g)),
		B: uint8(factor * float64(b)),
		A: 255,
	}
}

func rgb255(c color.Color) (uint8, uint8, uint8) {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return 0, 0, 0
	}
	return cf.RGB255()
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b := rgb255(c)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

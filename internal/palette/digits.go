package palette

// digitGlyphs is a 3x5 dot-matrix font for the bookmark digits 0..9,
// indexed as digitGlyphs[digit][row][column].
var digitGlyphs = [10][5][3]uint8{
	{ // 0
		{1, 1, 1},
		{1, 0, 1},
		{1, 0, 1},
		{1, 0, 1},
		{1, 1, 1},
	},
	{ // 1
		{0, 1, 0},
		{1, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
		{1, 1, 1},
	},
	{ // 2
		{1, 1, 1},
		{0, 0, 1},
		{1, 1, 1},
		{1, 0, 0},
		{1, 1, 1},
	},
	{ // 3
		{1, 1, 1},
		{0, 0, 1},
		{0, 1, 1},
		{0, 0, 1},
		{1, 1, 1},
	},
	{ // 4
		{1, 0, 1},
		{1, 0, 1},
		{1, 1, 1},
		{0, 0, 1},
		{0, 0, 1},
	},
	{ // 5
		{1, 1, 1},
		{1, 0, 0},
		{1, 1, 1},
		{0, 0, 1},
		{1, 1, 1},
	},
	{ // 6
		{1, 1, 1},
		{1, 0, 0},
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	},
	{ // 7
		{1, 1, 1},
		{0, 0, 1},
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
	},
	{ // 8
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	},
	{ // 9
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
		{0, 0, 1},
		{1, 1, 1},
	},
}

// Glyph dimensions in pixels
const (
	GlyphWidth  = 3
	GlyphHeight = 5
)

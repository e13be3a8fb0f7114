package ring

// glyphRect is an axis aligned rectangle inside a glyph's unit square.
// x grows along the reading direction, y from the bottom of the character
// band upward.
type glyphRect struct {
	x0, y0, x1, y1 float64
}

// Stroke building blocks for the coarse seven-segment style font.
var (
	segTop     = glyphRect{0, 0.82, 1, 1}
	segBottom  = glyphRect{0, 0, 1, 0.18}
	segMiddle  = glyphRect{0, 0.41, 1, 0.59}
	segUL      = glyphRect{0, 0.5, 0.18, 1}
	segLL      = glyphRect{0, 0, 0.18, 0.5}
	segUR      = glyphRect{0.82, 0.5, 1, 1}
	segLR      = glyphRect{0.82, 0, 1, 0.5}
	segCenter  = glyphRect{0.41, 0, 0.59, 1}
	segCenterU = glyphRect{0.41, 0.5, 0.59, 1}
)

// glyphs is the single compile-time catalog of label characters shared by
// every consumer. Characters absent from the table produce no geometry but
// still consume their angular slot, so spacing survives unrenderable input.
// The alphabet covers diameter-unit labels such as "ID50MM" or "OD4.25IN":
// digits, a handful of letters, punctuation and space.
var glyphs = map[rune][]glyphRect{
	'0': {segTop, segBottom, segUL, segLL, segUR, segLR},
	'1': {segUR, segLR},
	'2': {segTop, segUR, segMiddle, segLL, segBottom},
	'3': {segTop, segUR, segMiddle, segLR, segBottom},
	'4': {segUL, segMiddle, segUR, segLR},
	'5': {segTop, segUL, segMiddle, segLR, segBottom},
	'6': {segTop, segUL, segMiddle, segLL, segLR, segBottom},
	'7': {segTop, segUR, segLR},
	'8': {segTop, segBottom, segMiddle, segUL, segLL, segUR, segLR},
	'9': {segTop, segUL, segUR, segMiddle, segLR, segBottom},
	'C': {segTop, segUL, segLL, segBottom},
	'D': {segUL, segLL, {0, 0.82, 0.8, 1}, {0, 0, 0.8, 0.18}, {0.82, 0.12, 1, 0.88}},
	'I': {segCenter},
	'L': {segUL, segLL, segBottom},
	'M': {segUL, segLL, segUR, segLR, segTop, segCenterU},
	'N': {segUL, segLL, segUR, segLR, segTop},
	'O': {segTop, segBottom, segUL, segLL, segUR, segLR},
	'P': {segUL, segLL, segTop, segUR, segMiddle},
	'S': {segTop, segUL, segMiddle, segLR, segBottom},
	'T': {segTop, segCenter},
	'U': {segUL, segLL, segUR, segLR, segBottom},
	'-': {segMiddle},
	'.': {{0.38, 0, 0.62, 0.2}},
	' ': {},
}

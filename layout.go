package fontview

import (
	"iter"
	"unicode/utf8"
)

// Layout lays out text horizontally, starting at start, and returns an
// iterator over the positioned glyphs, from left to right.
//
// Layout applies advance widths and pair kerning, nothing else. Control
// characters like line breaks are not taken into account, as treatment of
// these is likely to depend on the application; they are laid out as any
// other character, typically as ".notdef".
//
// Layout does not perform Unicode normalization. Composite characters (such
// as 'ö' constructed from two code-points, 'o' and U+0308) will not be
// normalized to single code-points. If a font contains a glyph for the
// normalized code-point only, that glyph will not be produced. Clients
// should normalize text before calling Layout if that matters to them, e.g.
// with package golang.org/x/text/unicode/norm.
//
// Every call returns a fresh iterator; calling Layout twice with the same
// arguments produces the same glyphs at the same positions.
func (f Font) Layout(text string, scale Scale, start Point) *LayoutIter {
	return &LayoutIter{
		font:  f,
		text:  text,
		scale: scale,
		start: start,
	}
}

// LayoutIter produces the positioned glyphs of a string, see Font.Layout.
type LayoutIter struct {
	font    Font
	text    string
	pos     int // byte position of the next character in text
	caret   float32
	scale   Scale
	start   Point
	last    GlyphID
	hasLast bool
}

// Next returns the next positioned glyph. At the end of the text, it
// returns false.
func (it *LayoutIter) Next() (PositionedGlyph, bool) {
	if it.pos >= len(it.text) {
		return PositionedGlyph{}, false
	}
	r, size := utf8.DecodeRuneInString(it.text[it.pos:])
	it.pos += size
	g := it.font.Glyph(Char(r)).Scaled(it.scale)
	if it.hasLast {
		it.caret += it.font.PairKerning(it.scale, it.last, g.ID())
	}
	w := g.HMetrics().AdvanceWidth
	next := g.Positioned(it.start.Add(Vector{X: it.caret}))
	it.last, it.hasLast = next.ID(), true
	it.caret += w
	return next, true
}

// All returns the remaining glyphs of the layout as a sequence. Iterating
// it advances it.
func (it *LayoutIter) All() iter.Seq[PositionedGlyph] {
	return func(yield func(PositionedGlyph) bool) {
		for {
			g, ok := it.Next()
			if !ok || !yield(g) {
				return
			}
		}
	}
}

// Caret returns the horizontal distance from the start position that the
// glyphs produced so far occupy, including kerning between them.
func (it *LayoutIter) Caret() float32 {
	return it.caret
}

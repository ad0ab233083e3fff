package sfntview

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// View is an immutable, parsed view onto the bytes of one font.
//
// Table segments held by a View are sub-slices of the data handed to Parse.
type View struct {
	font             *sfnt.Font
	index            uint32
	head             binarySegm
	hhea             binarySegm
	hmtx             binarySegm
	numGlyphs        int
	numberOfHMetrics int
	buffers          sync.Pool // of *sfnt.Buffer; sfnt.Buffer is not safe for concurrent use
}

// Index returns the collection index this view has been parsed for.
func (v *View) Index() uint32 {
	return v.index
}

// SFNT returns the underlying x/image font, e.g. for loading glyph outlines.
func (v *View) SFNT() *sfnt.Font {
	return v.font
}

// Ascender returns the typographic ascent from table 'hhea'.
func (v *View) Ascender() int16 {
	a, _ := v.hhea.i16(4)
	return a
}

// Descender returns the typographic descent from table 'hhea'. It is usually
// negative.
func (v *View) Descender() int16 {
	d, _ := v.hhea.i16(6)
	return d
}

// LineGap returns the typographic line gap from table 'hhea'.
func (v *View) LineGap() int16 {
	g, _ := v.hhea.i16(8)
	return g
}

// UnitsPerEm returns the design units per em from table 'head'.
// Values outside of 16…16384 are invalid for OpenType fonts and are
// reported as missing.
func (v *View) UnitsPerEm() (uint16, bool) {
	if len(v.head) < headMinSize {
		return 0, false
	}
	upem := u16(v.head[18:20])
	if upem < 16 || upem > 16384 {
		return 0, false
	}
	return upem, true
}

// NumberOfGlyphs returns the number of glyphs in the font, from table 'maxp'.
func (v *View) NumberOfGlyphs() uint16 {
	return uint16(v.numGlyphs)
}

// GlyphHorMetrics returns the advance width and left side bearing of a glyph.
// If gid is not a valid glyph index for the font, ok is false.
//
// Glyphs beyond hhea.numberOfHMetrics share the advance width of the last
// long metrics record, and have their left side bearing stored in a
// trailing array.
func (v *View) GlyphHorMetrics(gid uint16) (advance uint16, lsb int16, ok bool) {
	g := int(gid)
	if g >= v.numGlyphs || v.numberOfHMetrics == 0 {
		return 0, 0, false
	}
	if g < v.numberOfHMetrics {
		return u16(v.hmtx[g*4:]), int16(u16(v.hmtx[g*4+2:])), true
	}
	advance = u16(v.hmtx[(v.numberOfHMetrics-1)*4:])
	lsb = int16(u16(v.hmtx[v.numberOfHMetrics*4+(g-v.numberOfHMetrics)*2:]))
	return advance, lsb, true
}

// GlyphsKerning returns the kerning value for a pair of glyphs, in design
// units. Kerning is optional data: if the font has no entry for the pair,
// ok is false.
//
// Pairs are looked up in GPOS pair adjustments if the font has them, and in
// table 'kern' otherwise.
func (v *View) GlyphsKerning(first, second uint16) (kern int16, ok bool) {
	upem, hasUPEM := v.UnitsPerEm()
	if !hasUPEM {
		return 0, false
	}
	buf := v.buffer()
	defer v.buffers.Put(buf)
	// With ppem equal to units per em sfnt performs no scaling: the 26.6
	// value returned is the raw design unit value.
	k, err := v.font.Kern(buf, sfnt.GlyphIndex(first), sfnt.GlyphIndex(second),
		fixed.Int26_6(upem), font.HintingNone)
	if err != nil {
		return 0, false
	}
	return int16(k), true
}

// GlyphIndex maps a Unicode code-point to a glyph index, using the font's
// 'cmap' table. If the code-point is not mapped, ok is false and the glyph
// index is 0, i.e. the '.notdef' glyph.
func (v *View) GlyphIndex(r rune) (gid uint16, ok bool) {
	buf := v.buffer()
	defer v.buffers.Put(buf)
	x, err := v.font.GlyphIndex(buf, r)
	if err != nil || x == 0 {
		return 0, false
	}
	return uint16(x), true
}

// Name returns an entry of the font's 'name' table, or the empty string if
// the entry is missing or cannot be decoded.
func (v *View) Name(id sfnt.NameID) string {
	buf := v.buffer()
	defer v.buffers.Put(buf)
	name, err := v.font.Name(buf, id)
	if err != nil {
		return ""
	}
	return name
}

func (v *View) buffer() *sfnt.Buffer {
	return v.buffers.Get().(*sfnt.Buffer)
}

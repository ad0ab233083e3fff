package fontview

// GlyphID is the index of a glyph within one font. It is only meaningful
// together with the font it was produced for.
type GlyphID uint16

// IntoGlyphID is implemented by everything which designates a glyph of a
// font: characters (type Char), glyph indices (type GlyphID) and glyphs.
type IntoGlyphID interface {
	IntoGlyphID(f Font) GlyphID
}

// IntoGlyphID returns id unchanged. It is the caller's responsibility that
// id is valid for f.
func (id GlyphID) IntoGlyphID(f Font) GlyphID {
	return id
}

// Char is a Unicode code-point used to select a glyph.
type Char rune

// IntoGlyphID looks up c in f's character map. Code-points without a glyph
// map to glyph 0, the ".notdef" glyph.
func (c Char) IntoGlyphID(f Font) GlyphID {
	gid, _ := f.inner().GlyphIndex(rune(c))
	return GlyphID(gid)
}

// HMetrics are the horizontal metrics of a glyph. The advance width is the
// horizontal distance to move the caret after placing the glyph; the left
// side bearing is the distance from the caret to the left edge of the
// glyph's outline.
type HMetrics struct {
	AdvanceWidth    float32
	LeftSideBearing float32
}

// --- Glyph -----------------------------------------------------------------

// Glyph is a glyph of a font, neither scaled nor positioned.
type Glyph struct {
	font Font
	id   GlyphID
}

// IntoGlyphID returns the glyph's index.
func (g Glyph) IntoGlyphID(f Font) GlyphID {
	return g.id
}

// ID returns the glyph's index in its font.
func (g Glyph) ID() GlyphID {
	return g.id
}

// Font returns the font g belongs to.
func (g Glyph) Font() Font {
	return g.font
}

// UnscaledHMetrics returns the horizontal metrics of g in design units.
func (g Glyph) UnscaledHMetrics() HMetrics {
	aw, lsb, _ := g.font.inner().GlyphHorMetrics(uint16(g.id))
	return HMetrics{
		AdvanceWidth:    float32(aw),
		LeftSideBearing: float32(lsb),
	}
}

// Scaled augments g with a scale.
func (g Glyph) Scaled(scale Scale) ScaledGlyph {
	return ScaledGlyph{
		g:     g,
		scale: scale,
		sx:    g.font.ScaleForPixelHeight(scale.Y) * (scale.X / scale.Y),
	}
}

// --- ScaledGlyph -----------------------------------------------------------

// ScaledGlyph is a glyph with a scale, but no position.
type ScaledGlyph struct {
	g     Glyph
	scale Scale
	sx    float32 // design units to horizontal pixels
}

// ID returns the glyph's index in its font.
func (sg ScaledGlyph) ID() GlyphID {
	return sg.g.id
}

// Font returns the font sg belongs to.
func (sg ScaledGlyph) Font() Font {
	return sg.g.font
}

// Scale returns the scale sg has been created with.
func (sg ScaledGlyph) Scale() Scale {
	return sg.scale
}

// Unscaled returns the glyph without its scale.
func (sg ScaledGlyph) Unscaled() Glyph {
	return sg.g
}

// HMetrics returns the horizontal metrics of the glyph, in pixels.
func (sg ScaledGlyph) HMetrics() HMetrics {
	m := sg.g.UnscaledHMetrics()
	return HMetrics{
		AdvanceWidth:    m.AdvanceWidth * sg.sx,
		LeftSideBearing: m.LeftSideBearing * sg.sx,
	}
}

// Positioned augments sg with a position in pixels. The position refers to
// the glyph's origin on the baseline.
func (sg ScaledGlyph) Positioned(p Point) PositionedGlyph {
	return PositionedGlyph{sg: sg, position: p}
}

// --- PositionedGlyph -------------------------------------------------------

// PositionedGlyph is a glyph with a scale and a position, ready to be handed
// to a rasterizer.
type PositionedGlyph struct {
	sg       ScaledGlyph
	position Point
}

// ID returns the glyph's index in its font.
func (pg PositionedGlyph) ID() GlyphID {
	return pg.sg.g.id
}

// Font returns the font pg belongs to.
func (pg PositionedGlyph) Font() Font {
	return pg.sg.g.font
}

// Position returns the position of the glyph's origin.
func (pg PositionedGlyph) Position() Point {
	return pg.position
}

// Unpositioned returns the scaled glyph without its position.
func (pg PositionedGlyph) Unpositioned() ScaledGlyph {
	return pg.sg
}

package fontview

import (
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/npillmayer/fontview/sfntview"
	"golang.org/x/image/font/sfnt"
)

// Font is a scalable font. It may or may not own the font data, see the
// package documentation.
//
// The zero value is not a usable font; all methods except IsValid and String
// will panic when called on it.
type Font struct {
	src fontSource
}

// FromBytes creates a Font from byte-slice data, which the Font borrows.
// data must not change as long as the Font or any glyph of it is in use.
//
// Returns an error wrapping ErrInvalidFont for invalid data.
func FromBytes(data []byte) (Font, error) {
	return FromBytesAndIndex(data, 0)
}

// FromBytesAndIndex creates a Font from byte-slice data and a font
// collection index. For single fonts, index must be 0.
func FromBytesAndIndex(data []byte, index uint32) (Font, error) {
	v, err := sfntview.Parse(data, index)
	if err != nil {
		return Font{}, invalidFont(err)
	}
	tracer().Debugf("created font #%d from borrowed bytes", index)
	return Font{src: &borrowedFont{parsed: v}}, nil
}

// FromOwnedBuffer creates a Font which takes ownership of data.
// The caller must neither read nor modify data after handing it over.
//
// Returns an error wrapping ErrInvalidFont for invalid data.
func FromOwnedBuffer(data []byte) (Font, error) {
	return FromOwnedBufferAndIndex(data, 0)
}

// FromOwnedBufferAndIndex creates a Font which takes ownership of data and
// uses font number index of a font collection.
func FromOwnedBufferAndIndex(data []byte, index uint32) (Font, error) {
	h, err := newOwnedFont(data, index)
	if err != nil {
		return Font{}, invalidFont(err)
	}
	tracer().Debugf("created font #%d from owned buffer of %d bytes", index, len(data))
	return Font{src: h}, nil
}

// ReadFont reads font data from r until EOF and creates a Font owning it.
func ReadFont(r io.Reader, index uint32) (Font, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Font{}, err
	}
	return FromOwnedBufferAndIndex(data, index)
}

// LoadFont loads a font file (TTF, OTF or TTC) and creates a Font owning
// its data.
func LoadFont(fontfile string, index uint32) (Font, error) {
	// #nosec G304 -- font file path is provided by the user
	data, err := os.ReadFile(fontfile)
	if err != nil {
		return Font{}, err
	}
	f, err := FromOwnedBufferAndIndex(data, index)
	if err != nil {
		tracer().Errorf("cannot decode font file %s: %v", fontfile, err)
		return Font{}, err
	}
	tracer().Infof("loaded font %q from %s", f.Name(), fontfile)
	return f, nil
}

// inner returns the parsed view, independent of the font's ownership.
func (f Font) inner() *sfntview.View {
	if f.src == nil {
		panic("fontview: use of zero Font")
	}
	return f.src.view()
}

// IsValid reports whether f has been created by one of the constructors.
func (f Font) IsValid() bool {
	return f.src != nil
}

// Clone returns a Font sharing f's data. It is equivalent to copying f.
func (f Font) Clone() Font {
	return f
}

// Name returns the full name of the font, or the empty string if the font
// does not have one.
func (f Font) Name() string {
	return f.inner().Name(sfnt.NameIDFull)
}

func (f Font) String() string {
	if f.src == nil {
		return "Font(<invalid>)"
	}
	ownership := "borrowed"
	if f.src.owned() {
		ownership = "owned"
	}
	return fmt.Sprintf("Font(%q, %d glyphs, %s)", f.Name(), f.GlyphCount(), ownership)
}

// --- Metrics ---------------------------------------------------------------

// VMetrics returns the vertical metrics of the font at a given scale.
// These metrics are shared by all of the glyphs in the font.
func (f Font) VMetrics(scale Scale) VMetrics {
	return f.VMetricsUnscaled().Mul(f.ScaleForPixelHeight(scale.Y))
}

// VMetricsUnscaled returns the vertical metrics of the font in design units.
func (f Font) VMetricsUnscaled() VMetrics {
	v := f.inner()
	return VMetrics{
		Ascent:  float32(v.Ascender()),
		Descent: float32(v.Descender()),
		LineGap: float32(v.LineGap()),
	}
}

// UnitsPerEm returns the units per em square of the font.
//
// Every font accepted by the constructors is expected to have a valid units
// per em value. If it does not, UnitsPerEm panics.
func (f Font) UnitsPerEm() uint16 {
	upem, ok := f.inner().UnitsPerEm()
	if !ok {
		panic("fontview: invalid font units per em")
	}
	return upem
}

// GlyphCount returns the number of glyphs present in the font. Glyph
// identifiers for the font are always in the range [0, GlyphCount()).
func (f Font) GlyphCount() int {
	return int(f.inner().NumberOfGlyphs())
}

// ScaleForPixelHeight computes a scale factor to produce a font whose
// "height" is height pixels tall. Height is measured as the distance from
// the highest ascender to the lowest descender:
//
//	scale = height / (ascent - descent)
//
// To measure height by the ascent only, use a similar calculation.
func (f Font) ScaleForPixelHeight(height float32) float32 {
	v := f.inner()
	fheight := float32(v.Ascender()) - float32(v.Descender())
	return height / fheight
}

// PairKerning returns the kerning to apply between two glyphs, in addition
// to the advance width of the first one. first and second may be characters,
// glyph indices or glyphs.
//
// Fonts without a kerning entry for the pair yield 0.
func (f Font) PairKerning(scale Scale, first, second IntoGlyphID) float32 {
	a := first.IntoGlyphID(f)
	b := second.IntoGlyphID(f)
	factor := f.ScaleForPixelHeight(scale.Y) * (scale.X / scale.Y)
	kern, _ := f.inner().GlyphsKerning(uint16(a), uint16(b))
	return factor * float32(kern)
}

// --- Glyphs ----------------------------------------------------------------

// Glyph returns the glyph for a character or a glyph index.
//
// Glyph indices must be valid for f, otherwise Glyph panics. Glyph indices
// should always be produced by looking up a character in a font, and should
// only be used with the font they were produced for.
//
// Characters without a glyph in f map to the ".notdef" glyph, glyph 0.
func (f Font) Glyph(id IntoGlyphID) Glyph {
	gid := id.IntoGlyphID(f)
	if n := f.GlyphCount(); int(gid) >= n {
		panic(fmt.Sprintf("fontview: glyph id %d out of range, font has %d glyphs", gid, n))
	}
	return Glyph{font: f, id: gid}
}

// GlyphsFor returns a sequence of the glyphs for the characters or glyph
// indices produced by ids, in order. Glyphs are resolved lazily, one at a
// time, as the sequence is consumed. Iterating the result consumes ids.
func (f Font) GlyphsFor(ids iter.Seq[IntoGlyphID]) iter.Seq[Glyph] {
	return GlyphsOf(f, ids)
}

// GlyphsOf is the generic variant of Font.GlyphsFor, taking a sequence of
// any type of glyph designator.
func GlyphsOf[T IntoGlyphID](f Font, ids iter.Seq[T]) iter.Seq[Glyph] {
	return func(yield func(Glyph) bool) {
		for id := range ids {
			if !yield(f.Glyph(id)) {
				return
			}
		}
	}
}

// GlyphsForText returns the sequence of glyphs for the characters of text.
// Invalid UTF-8 is decoded as U+FFFD.
func (f Font) GlyphsForText(text string) iter.Seq[Glyph] {
	return func(yield func(Glyph) bool) {
		for _, r := range text {
			if !yield(f.Glyph(Char(r))) {
				return
			}
		}
	}
}

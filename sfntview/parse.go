package sfntview

import (
	"errors"
	"fmt"

	"golang.org/x/image/font/sfnt"
)

// ErrFontFormat is wrapped by every error Parse returns for data it cannot
// interpret as a font.
var ErrFontFormat = errors.New("OpenType font format")

const (
	offsetTableSize = 12
	tableRecordSize = 16
	ttcHeaderSize   = 12
	headMinSize     = 54
	hheaMinSize     = 36
)

// Parse decodes font number index of data. For fonts which are not part of
// a collection, index has to be 0.
//
// data is not copied. The View returned refers to sub-slices of data, which
// therefore must not be modified afterwards.
func Parse(data []byte, index uint32) (*View, error) {
	src := binarySegm(data)
	start, err := offsetTableStart(src, index)
	if err != nil {
		tracer().Errorf("cannot locate font #%d: %v", index, err)
		return nil, err
	}
	tables, err := readTableDirectory(src, start)
	if err != nil {
		tracer().Errorf("cannot read table directory of font #%d: %v", index, err)
		return nil, err
	}
	// x/image/font/sfnt does the thorough validation and will serve cmap and
	// kerning lookups.
	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontFormat, err)
	}
	f, err := coll.Font(int(index))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontFormat, err)
	}
	v := &View{
		font:      f,
		index:     index,
		head:      tables[T("head")],
		hhea:      tables[T("hhea")],
		hmtx:      tables[T("hmtx")],
		numGlyphs: f.NumGlyphs(),
	}
	v.buffers.New = func() any { return new(sfnt.Buffer) }
	if err = v.checkHorizontalMetrics(); err != nil {
		tracer().Errorf("font #%d: %v", index, err)
		return nil, err
	}
	tracer().Debugf("parsed font #%d with %d glyphs and %d tables", index, v.numGlyphs, len(tables))
	return v, nil
}

// NumFonts returns the number of fonts contained in data: the number of
// collection entries for a font collection, 1 for a single font and 0 if
// data does not start with a known SFNT header.
func NumFonts(data []byte) int {
	src := binarySegm(data)
	tag, err := src.u32(0)
	if err != nil {
		return 0
	}
	switch Tag(tag) {
	case tagCollection:
		n, err := src.u32(8)
		if err != nil {
			return 0
		}
		return int(n)
	case tagTrueType, tagTrue, tagOTTO:
		return 1
	}
	return 0
}

// offsetTableStart returns the position of the offset table for font number
// index.
func offsetTableStart(src binarySegm, index uint32) (int, error) {
	tag, err := src.u32(0)
	if err != nil {
		return 0, errFontFormat("font header too short")
	}
	switch Tag(tag) {
	case tagCollection:
		if len(src) < ttcHeaderSize {
			return 0, errFontFormat("collection header too short")
		}
		numFonts := u32(src[8:12])
		if index >= numFonts {
			return 0, errFontFormat("collection index %d out of range, collection has %d fonts",
				index, numFonts)
		}
		off, err := src.u32(ttcHeaderSize + 4*int(index))
		if err != nil {
			return 0, errFontFormat("collection offset for font #%d", index)
		}
		return int(off), nil
	case tagTrueType, tagTrue, tagOTTO:
		if index != 0 {
			return 0, errFontFormat("index %d given for a single font", index)
		}
		return 0, nil
	}
	return 0, errFontFormat("font type not supported: %x", tag)
}

// readTableDirectory collects the segments of all tables in the offset table
// starting at position start.
func readTableDirectory(src binarySegm, start int) (map[Tag]binarySegm, error) {
	h, err := src.view(start, offsetTableSize)
	if err != nil {
		return nil, errFontFormat("offset table")
	}
	switch Tag(u32(h)) {
	case tagTrueType, tagTrue, tagOTTO:
	default:
		return nil, errFontFormat("font type not supported: %x", u32(h))
	}
	count := int(u16(h[4:6]))
	// "The Offset Table is followed immediately by the Table Record entries",
	// 16 bytes each.
	records, err := src.view(start+offsetTableSize, count*tableRecordSize)
	if err != nil {
		return nil, errFontFormat("table record entries")
	}
	tables := make(map[Tag]binarySegm, count)
	for b := records; len(b) > 0; b = b[tableRecordSize:] {
		tag := MakeTag(b)
		off, size := u32(b[8:12]), u32(b[12:16])
		end := uint64(off) + uint64(size)
		if end > uint64(len(src)) {
			return nil, errFontFormat("table %s: bounds [%d:%d] exceed font size %d",
				tag, off, end, len(src))
		}
		tables[tag] = src[int(off):int(end)]
	}
	return tables, nil
}

// checkHorizontalMetrics makes sure that 'hhea' and 'hmtx' are large enough
// for every glyph, so that accessors may decode without further checks.
func (v *View) checkHorizontalMetrics() error {
	if len(v.hhea) < hheaMinSize {
		return errFontFormat("table hhea missing or too short")
	}
	n := int(u16(v.hhea[34:36]))
	if n == 0 && v.numGlyphs > 0 {
		return errFontFormat("hhea.numberOfHMetrics is 0")
	}
	if n > v.numGlyphs {
		return errFontFormat("invalid numberOfHMetrics %d (numGlyphs=%d)", n, v.numGlyphs)
	}
	required := n*4 + (v.numGlyphs-n)*2
	if required > len(v.hmtx) {
		return errFontFormat("hmtx table too small: need %d bytes, have %d", required, len(v.hmtx))
	}
	v.numberOfHMetrics = n
	return nil
}

package sfntview

// Tag identifies a table in the table directory of a font. It consists of
// four bytes, usually printable ASCII, read as a big-endian number.
type Tag uint32

// MakeTag reads the Tag at the start of a table record.
func MakeTag(rec []byte) Tag {
	return Tag(u32(rec[:4]))
}

// T converts a table name like "hmtx" into a Tag. Names shorter than four
// letters are padded with spaces, as in "cvt ".
func T(name string) Tag {
	var b [4]byte
	copy(b[:], name+"    ")
	return Tag(u32(b[:]))
}

func (t Tag) String() string {
	return string([]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)})
}

// Font types found at the start of an offset table or a collection header.
const (
	tagTrueType   Tag = 0x00010000
	tagTrue       Tag = 0x74727565 // 'true'
	tagOTTO       Tag = 0x4f54544f // 'OTTO'
	tagCollection Tag = 0x74746366 // 'ttcf'
)

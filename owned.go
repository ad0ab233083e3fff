package fontview

import (
	"slices"

	"github.com/npillmayer/fontview/sfntview"
)

// fontSource is implemented by the two ways a Font may hold its data.
type fontSource interface {
	view() *sfntview.View
	owned() bool
}

// borrowedFont is a parsed view onto bytes retained by the caller.
type borrowedFont struct {
	parsed *sfntview.View
}

func (b *borrowedFont) view() *sfntview.View { return b.parsed }
func (b *borrowedFont) owned() bool          { return false }

// ownedFont holds a byte buffer together with a parsed view whose table
// segments are sub-slices of that very buffer.
//
// Invariants:
//   - data is never written to, re-sliced or appended to after construction.
//   - an ownedFont lives on the heap and is only ever referred to by pointer.
//     addr points to the struct itself; a copy by value is detected on the
//     next access and panics.
//   - parsed refers into data and does not own anything. Both become
//     unreachable together with the ownedFont.
//
// ownedFont is not exported, so addr guards against copies made by mistake
// within this package only.
type ownedFont struct {
	addr   *ownedFont
	data   []byte
	parsed *sfntview.View
}

// newOwnedFont takes over data and parses font number index of it.
//
// The view is built from the holder's own field, not from the caller's
// slice header. If decoding fails, the holder is dropped before a view has
// been stored in it.
func newOwnedFont(data []byte, index uint32) (*ownedFont, error) {
	h := &ownedFont{data: slices.Clip(data)}
	h.addr = h
	parsed, err := sfntview.Parse(h.data, index)
	if err != nil {
		return nil, err
	}
	h.parsed = parsed
	return h, nil
}

// view returns the parsed view. Clients of an ownedFont reach the font data
// through this accessor only.
func (h *ownedFont) view() *sfntview.View {
	h.copyCheck()
	return h.parsed
}

func (h *ownedFont) owned() bool { return true }

// copyCheck panics if the holder has been copied by value.
func (h *ownedFont) copyCheck() {
	if h.addr != h {
		panic("fontview: owned font data must not be copied by value")
	}
}

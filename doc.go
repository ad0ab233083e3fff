/*
Package fontview is a typed, read-only view onto the binary data of a
scalable font (TrueType or OpenType, single font or collection).

It resolves characters and glyph indices, answers questions about font-wide
and per-glyph metrics as well as kerning, and lays out a string of text
horizontally. Rasterizing glyphs is left to clients; they receive glyph
indices together with a scale and a position in pixels.

There is a certain confusion with the nomenclature of typesetting. We will
stick to the following definitions:

▪︎ A "typeface" is a family of fonts. An example is "Helvetica".
This corresponds to a TrueType "collection" (*.ttc).

▪︎ A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Helvetica regular".
This is what type Font represents.

▪︎ A scaled font is a font at a certain size. Package fontview does not
have a type for it: a Scale is passed to every operation depending on size.

# Ownership of font data

A Font either borrows bytes from the caller (FromBytes) or owns them
(FromOwnedBuffer, ReadFont, LoadFont). In both cases the font data is not
copied: the parsed view refers to sub-slices of the bytes. Borrowed bytes
must stay unchanged as long as a Font refers to them. Owned bytes belong to
the Font exclusively; the caller hands them over and must not touch them
afterwards.

Fonts are small values. Copying a Font shares the underlying data, which is
kept alive as long as any copy is in use. Fonts may be shared by goroutines
without locking, as all operations are read-only.

# Errors

Constructors return an error wrapping ErrInvalidFont for data which cannot be
decoded. Using a glyph index outside of the font's range, or a font without
units per em, are violations of a precondition and will panic. Characters
without a glyph map to glyph 0 (".notdef"), and a missing kerning value is 0;
neither is an error.

# Links

OpenType explained:
https://docs.microsoft.com/en-us/typography/opentype/

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontview

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontview'
func tracer() tracing.Trace {
	return tracing.Select("fontview")
}

// ErrInvalidFont is wrapped by errors returned from Font constructors for
// data which is not a supported font, or a collection index out of range.
var ErrInvalidFont = errors.New("fontview: invalid font data")

func invalidFont(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidFont, err)
}

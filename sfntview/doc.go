/*
Package sfntview decodes the parts of an SFNT font (TrueType or OpenType,
single font or collection) needed for glyph metrics, kerning and character
mapping.

A View does not copy font data. Parsing reads the table directory of the
selected font and remembers sub-slices of the caller's bytes for the tables
'head', 'hhea', 'hmtx' and 'maxp'; values are decoded from these slices on
every access. Validation, character mapping and kerning lookups are delegated
to golang.org/x/image/font/sfnt, which follows the same principle of keeping
the font binary in memory instead of copying it into separate structures.

Consequently, the bytes handed to Parse must not change for as long as the
View is in use.

All values returned by a View are in font design units. Converting them to
pixels is the responsibility of the client.

# Concurrency

A View is immutable after Parse returns and may be used by multiple
goroutines concurrently. Scratch buffers for sfnt lookups are pooled.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package sfntview

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontview.sfnt'
func tracer() tracing.Trace {
	return tracing.Select("fontview.sfnt")
}

// errFontFormat produces user level errors for font parsing.
// All of them wrap ErrFontFormat.
func errFontFormat(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrFontFormat, fmt.Sprintf(format, args...))
}

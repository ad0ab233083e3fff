// Package fontload locates font binaries for tests and tools: bundled Go
// fonts, font collections from the go-text test corpus, and font files.
package fontload

import (
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	td "github.com/go-text/typesetting-utils/opentype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// Names of bundled fonts.
const (
	GoRegular = "go-regular"
	GoMono    = "go-mono"
	GoBold    = "go-bold"
)

var bundled = map[string][]byte{
	GoRegular: goregular.TTF,
	GoMono:    gomono.TTF,
	GoBold:    gobold.TTF,
}

// ScalableFont is the binary of a font together with its full name.
type ScalableFont struct {
	Fontname string
	Binary   []byte
}

// Bundled returns a private copy of the binary of a bundled font.
func Bundled(name string) ([]byte, bool) {
	b, ok := bundled[name]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), b...), true
}

// BundledNames lists the names accepted by Bundled, sorted.
func BundledNames() []string {
	names := make([]string, 0, len(bundled))
	for n := range bundled {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LoadOpenTypeFont loads a bundled font by name or a font file (TTF, OTF or
// TTC) by path.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, ok := Bundled(fontfile)
	if !ok {
		var err error
		// #nosec G304 -- font file path is provided by the user
		if bytez, err = os.ReadFile(fontfile); err != nil {
			return nil, err
		}
	}
	return &ScalableFont{
		Fontname: fullName(bytez),
		Binary:   bytez,
	}, nil
}

// Collections returns the paths of all font collections (*.ttc) contained in
// the go-text test font corpus, sorted.
func Collections() []string {
	var found []string
	_ = fs.WalkDir(td.Files, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && strings.EqualFold(path.Ext(p), ".ttc") {
			found = append(found, p)
		}
		return nil
	})
	sort.Strings(found)
	return found
}

// Corpus reads a file from the go-text test font corpus.
func Corpus(p string) ([]byte, error) {
	return td.Files.ReadFile(p)
}

// fullName returns the full name of the first font in fbytes, if any.
func fullName(fbytes []byte) string {
	c, err := sfnt.ParseCollection(fbytes)
	if err != nil {
		return ""
	}
	f, err := c.Font(0)
	if err != nil {
		return ""
	}
	name, _ := f.Name(nil, sfnt.NameIDFull)
	return name
}

package fontload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledFonts(t *testing.T) {
	assert.Equal(t, []string{GoBold, GoMono, GoRegular}, BundledNames())
	for _, name := range BundledNames() {
		b, ok := Bundled(name)
		require.True(t, ok, name)
		require.NotEmpty(t, b)
		b[0] ^= 0xff // private copy, must not change the bundled font
		again, _ := Bundled(name)
		assert.NotEqual(t, b[0], again[0], "%s: expected a private copy", name)
	}
	_, ok := Bundled("no-such-font")
	assert.False(t, ok)
}

func TestLoadOpenTypeFont(t *testing.T) {
	f, err := LoadOpenTypeFont(GoRegular)
	require.NoError(t, err)
	assert.NotEmpty(t, f.Fontname)
	//
	path := filepath.Join(t.TempDir(), "mono.ttf")
	b, _ := Bundled(GoMono)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	f, err = LoadOpenTypeFont(path)
	require.NoError(t, err)
	assert.Equal(t, len(b), len(f.Binary))
	//
	_, err = LoadOpenTypeFont(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.Error(t, err)
}

func TestCollections(t *testing.T) {
	for _, p := range Collections() {
		b, err := Corpus(p)
		require.NoError(t, err, p)
		assert.NotEmpty(t, b, p)
	}
}

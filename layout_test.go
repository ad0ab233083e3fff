package fontview

import (
	"sync"
	"testing"

	"github.com/npillmayer/fontview/internal/fontload"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func loadTestFont(t *testing.T) Font {
	f, err := FromOwnedBuffer(bundled(t, fontload.GoRegular))
	require.NoError(t, err)
	return f
}

func collect(it *LayoutIter) []PositionedGlyph {
	var glyphs []PositionedGlyph
	for g := range it.All() {
		glyphs = append(glyphs, g)
	}
	return glyphs
}

type placement struct {
	id GlyphID
	p  Point
}

func placements(glyphs []PositionedGlyph) []placement {
	pp := make([]placement, len(glyphs))
	for i, g := range glyphs {
		pp[i] = placement{g.ID(), g.Position()}
	}
	return pp
}

func TestLayoutSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontview")
	defer teardown()
	//
	f := loadTestFont(t)
	scale := Uniform(20)
	glyphs := collect(f.Layout("AB", scale, Pt(0, 0)))
	require.Len(t, glyphs, 2)
	a := f.Glyph(Char('A')).Scaled(scale)
	assert.Equal(t, a.ID(), glyphs[0].ID())
	assert.Equal(t, Pt(0, 0), glyphs[0].Position())
	x := a.HMetrics().AdvanceWidth + f.PairKerning(scale, Char('A'), Char('B'))
	assert.InDelta(t, x, glyphs[1].Position().X, 1e-4)
	assert.Equal(t, float32(0), glyphs[1].Position().Y)
	assert.Equal(t, f.Glyph(Char('B')).ID(), glyphs[1].ID())
}

func TestLayoutAppliesKerning(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontview")
	defer teardown()
	//
	f := loadTestFont(t)
	scale := Uniform(32)
	text := "AVATAR To"
	glyphs := collect(f.Layout(text, scale, Pt(0, 0)))
	require.Len(t, glyphs, len(text))
	var caret float32
	var last GlyphID
	for i, r := range text {
		g := f.Glyph(Char(r)).Scaled(scale)
		if i > 0 {
			caret += f.PairKerning(scale, last, g.ID())
		}
		assert.InDelta(t, caret, glyphs[i].Position().X, 1e-3, "position of %q", r)
		caret += g.HMetrics().AdvanceWidth
		last = g.ID()
	}
}

func TestLayoutStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontview")
	defer teardown()
	//
	f := loadTestFont(t)
	it := f.Layout("xyz", Uniform(12), Pt(100, 50))
	g, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, Pt(100, 50), g.Position())
	for g := range it.All() {
		assert.Greater(t, g.Position().X, float32(100))
		assert.Equal(t, float32(50), g.Position().Y)
	}
	_, ok = it.Next()
	assert.False(t, ok, "exhausted iterator stays exhausted")
	assert.Greater(t, it.Caret(), float32(0))
}

func TestLayoutEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontview")
	defer teardown()
	//
	f := loadTestFont(t)
	it := f.Layout("", Uniform(12), Pt(0, 0))
	_, ok := it.Next()
	assert.False(t, ok)
	assert.Zero(t, it.Caret())
}

func TestLayoutIsRepeatable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontview")
	defer teardown()
	//
	f := loadTestFont(t)
	text := "Repeatable layout, AWAY"
	first := placements(collect(f.Layout(text, Uniform(17), Pt(2, 3))))
	second := placements(collect(f.Layout(text, Uniform(17), Pt(2, 3))))
	assert.Equal(t, first, second)
}

func TestLayoutDoesNotNormalize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontview")
	defer teardown()
	//
	f := loadTestFont(t)
	decomposed := "o\u0308"
	assert.Len(t, collect(f.Layout(decomposed, Uniform(12), Pt(0, 0))), 2)
	composed := norm.NFC.String(decomposed)
	glyphs := collect(f.Layout(composed, Uniform(12), Pt(0, 0)))
	require.Len(t, glyphs, 1)
	assert.Equal(t, f.Glyph(Char('ö')).ID(), glyphs[0].ID())
}

func TestLayoutControlCharacters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontview")
	defer teardown()
	//
	f := loadTestFont(t)
	glyphs := collect(f.Layout("a\nb", Uniform(12), Pt(0, 0)))
	require.Len(t, glyphs, 3, "line breaks are laid out as any other character")
	assert.Equal(t, float32(0), glyphs[2].Position().Y)
	assert.Greater(t, glyphs[2].Position().X, glyphs[1].Position().X-1e-3)
}

func TestConcurrentLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontview")
	defer teardown()
	//
	f := loadTestFont(t)
	text := "Concurrent readers share one font"
	want := placements(collect(f.Layout(text, Uniform(14), Pt(0, 0))))
	var wg sync.WaitGroup
	results := make([][]placement, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = placements(collect(f.Clone().Layout(text, Uniform(14), Pt(0, 0))))
		}()
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestLayoutKernedPair(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontview")
	defer teardown()
	//
	f := loadKernedFont(t)
	scale := Uniform(24)
	glyphs := collect(f.Layout("AV", scale, Pt(5, 0)))
	require.Len(t, glyphs, 2)
	kern := f.PairKerning(scale, Char('A'), Char('V'))
	require.Less(t, kern, float32(0))
	advance := f.Glyph(Char('A')).Scaled(scale).HMetrics().AdvanceWidth
	assert.Equal(t, Pt(5, 0), glyphs[0].Position())
	assert.InDelta(t, 5+advance+kern, glyphs[1].Position().X, 1e-4)
	assert.Less(t, glyphs[1].Position().X, 5+advance, "kerning pulls 'V' towards 'A'")
}

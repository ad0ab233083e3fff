package main

import (
	"fmt"
	"testing"

	"github.com/npillmayer/fontview/internal/fontload"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontview.cli")
	defer teardown()
	//
	for _, tc := range []struct {
		line   string
		code   int
		arg    string
		pixels float32
	}{
		{"quit", QUIT, "", defaultPixels},
		{"help:layout", HELP, "layout", 0},
		{"frobnicate", HELP, "", 0},
		{"metrics", METRICS, "", defaultPixels},
		{"metrics:24", METRICS, "", 24},
		{"glyph:A", GLYPH, "A", defaultPixels},
		{"glyph:#36:12.5", GLYPH, "#36", 12.5},
		{"glyph::", GLYPH, ":", defaultPixels},
		{"kern:AV:32", KERN, "AV", 32},
		{"layout:Hello, World: again", LAYOUT, "Hello, World: again", defaultPixels},
		{"layout:12:00:20", LAYOUT, "12:00", 20},
	} {
		op, err := parseCommand(tc.line)
		require.NoError(t, err, tc.line)
		assert.Equal(t, tc.code, op.code, tc.line)
		assert.Equal(t, tc.arg, op.arg, tc.line)
		if tc.pixels > 0 {
			assert.Equal(t, tc.pixels, op.pixels, tc.line)
		}
	}
}

func TestParseCommandErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontview.cli")
	defer teardown()
	//
	for _, line := range []string{"metrics:big", "metrics:-3"} {
		_, err := parseCommand(line)
		assert.Error(t, err, line)
	}
}

func TestExecuteCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontview.cli")
	defer teardown()
	//
	intp := &Intp{}
	require.NoError(t, intp.loadFont(fontload.GoRegular, 0))
	n := intp.font.GlyphCount()
	for _, tc := range []struct {
		line string
		fail bool
		stop bool
	}{
		{line: "metrics"},
		{line: "metrics:24"},
		{line: "glyph:A"},
		{line: "glyph:#0"},
		{line: fmt.Sprintf("glyph:#%d", n-1)},
		{line: fmt.Sprintf("glyph:#%d", n), fail: true},
		{line: "glyph:#99999", fail: true},
		{line: "glyph:#x", fail: true},
		{line: "glyph:AB", fail: true},
		{line: "kern:AV"},
		{line: "kern:AV:48"},
		{line: "kern:A", fail: true},
		{line: "layout:Hello, World"},
		{line: "layout:To:20"},
		{line: "layout:", fail: true},
		{line: "help"},
		{line: "help:kern"},
		{line: "quit", stop: true},
	} {
		op, err := parseCommand(tc.line)
		require.NoError(t, err, tc.line)
		var stop bool
		require.NotPanics(t, func() { err, stop = intp.execute(op) }, tc.line)
		if tc.fail {
			assert.Error(t, err, tc.line)
		} else {
			assert.NoError(t, err, tc.line)
		}
		assert.Equal(t, tc.stop, stop, tc.line)
	}
}

func TestExecuteNormalized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontview.cli")
	defer teardown()
	//
	intp := &Intp{}
	require.NoError(t, intp.loadFont(fontload.GoRegular, 0))
	op, err := parseCommand("glyph:o\u0308")
	require.NoError(t, err)
	err, _ = intp.execute(op)
	assert.Error(t, err, "decomposed character is two code-points")
	intp.normalize = true
	err, _ = intp.execute(op)
	assert.NoError(t, err, "NFC composes a single character")
}

func TestLoadFontErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontview.cli")
	defer teardown()
	//
	_, err := loadFont("", 0)
	assert.Error(t, err)
	_, err = loadFont(fontload.GoMono, 1)
	assert.Error(t, err, "single font has no index 1")
}

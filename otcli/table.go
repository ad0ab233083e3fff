package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/fontview"
	"golang.org/x/text/unicode/norm"
)

func metricsOp(intp *Intp, op *Op) (error, bool) {
	printVMetrics(intp.font, op.pixels)
	return nil, false
}

func glyphOp(intp *Intp, op *Op) (error, bool) {
	id, err := intp.glyphDesignator(op.arg)
	if err != nil {
		return err, false
	}
	printGlyph(intp.font.Glyph(id), op.pixels)
	return nil, false
}

func kernOp(intp *Intp, op *Op) (error, bool) {
	pair := intp.text(op.arg)
	if utf8.RuneCountInString(pair) != 2 {
		return fmt.Errorf("kern needs exactly two characters, have %q", pair), false
	}
	a, size := utf8.DecodeRuneInString(pair)
	b, _ := utf8.DecodeRuneInString(pair[size:])
	printKerning(intp.font, fontview.Char(a), fontview.Char(b), op.pixels)
	return nil, false
}

func layoutOp(intp *Intp, op *Op) (error, bool) {
	text := intp.text(op.arg)
	if text == "" {
		return fmt.Errorf("nothing to lay out"), false
	}
	printLayout(intp.font, text, op.pixels)
	return nil, false
}

// glyphDesignator interprets "#<n>" as a glyph index and anything else as a
// single character.
func (intp *Intp) glyphDesignator(arg string) (fontview.IntoGlyphID, error) {
	if n, ok := strings.CutPrefix(arg, "#"); ok && n != "" {
		id, err := strconv.ParseUint(n, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("glyph index not numeric: %v", n)
		}
		if int(id) >= intp.font.GlyphCount() {
			return nil, fmt.Errorf("glyph index %d out of range, font has %d glyphs",
				id, intp.font.GlyphCount())
		}
		return fontview.GlyphID(id), nil
	}
	arg = intp.text(arg)
	if utf8.RuneCountInString(arg) != 1 {
		return nil, fmt.Errorf("expected a single character or #index, have %q", arg)
	}
	r, _ := utf8.DecodeRuneInString(arg)
	return fontview.Char(r), nil
}

// text applies Unicode normalization to user input, if enabled.
func (intp *Intp) text(s string) string {
	if intp.normalize {
		return norm.NFC.String(s)
	}
	return s
}

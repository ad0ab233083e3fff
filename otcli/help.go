package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(strings.TrimSpace(topic))
	switch t {
	case "metrics", "vmetrics":
		pterm.Info.Println("metrics[:px]")
		pterm.Println(`
	Prints the font-wide metrics, unscaled (font design units) and scaled
	to a font size of px pixels per em (default 16).
	+---------+-------------------------------------------+
	| Ascent  | highest point above the baseline          |
	| Descent | lowest point below the baseline, negative |
	| LineGap | gap between descent and next ascent       |
	+---------+-------------------------------------------+
	The scale factor is px / (ascent - descent).
	`)
	case "glyph", "glyphs":
		pterm.Info.Println("glyph:<char|#id>[:px]")
		pterm.Println(`
	Prints the glyph for a character, or for a glyph index if prefixed with '#'.
	Characters without a glyph in the font map to glyph 0 (".notdef").
	`)
	case "kern", "kerning":
		pterm.Info.Println("kern:<a><b>[:px]")
		pterm.Println(`
	Prints the kerning between two characters, in design units and in pixels.
	Pairs without kerning information yield 0.
	`)
	case "layout":
		pterm.Info.Println("layout:<text>[:px]")
		pterm.Println(`
	Lays out a line of text, left to right, applying advance widths and
	pair kerning. Start the CLI with -nfc to normalize text first.
	`)
	default:
		pterm.Info.Println("Commands")
		data := [][]string{
			{"Command", "Description"},
			{"metrics[:px]", "font-wide vertical metrics"},
			{"glyph:<char|#id>[:px]", "glyph index and horizontal metrics"},
			{"kern:<a><b>[:px]", "pair kerning"},
			{"layout:<text>[:px]", "positioned glyphs of a line of text"},
			{"help[:command]", "this help or help for a command"},
			{"quit", "leave the CLI"},
		}
		pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	}
}

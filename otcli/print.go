package main

import (
	"fmt"

	"github.com/npillmayer/fontview"
	"github.com/pterm/pterm"
)

func printVMetrics(f fontview.Font, px float32) {
	scale := fontview.Uniform(px)
	u := f.VMetricsUnscaled()
	s := f.VMetrics(scale)
	pterm.Printf("%s: %d units per em, %d glyphs, scale %.5f at %.1fpx\n",
		f.Name(), f.UnitsPerEm(), f.GlyphCount(), f.ScaleForPixelHeight(px), px)
	data := [][]string{
		{"Metric", "Units", "Pixels"},
		{"Ascent", fmtUnits(u.Ascent), fmtPixels(s.Ascent)},
		{"Descent", fmtUnits(u.Descent), fmtPixels(s.Descent)},
		{"LineGap", fmtUnits(u.LineGap), fmtPixels(s.LineGap)},
		{"LineAdvance", fmtUnits(u.LineAdvance()), fmtPixels(s.LineAdvance())},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printGlyph(g fontview.Glyph, px float32) {
	u := g.UnscaledHMetrics()
	s := g.Scaled(fontview.Uniform(px)).HMetrics()
	if g.ID() == 0 {
		pterm.Info.Println("glyph 0 is the .notdef glyph")
	}
	data := [][]string{
		{"Glyph", "Advance", "LSB", "Advance px", "LSB px"},
		{
			fmt.Sprintf("%d", g.ID()),
			fmtUnits(u.AdvanceWidth), fmtUnits(u.LeftSideBearing),
			fmtPixels(s.AdvanceWidth), fmtPixels(s.LeftSideBearing),
		},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printKerning(f fontview.Font, a, b fontview.Char, px float32) {
	ga, gb := a.IntoGlyphID(f), b.IntoGlyphID(f)
	upem := float32(f.UnitsPerEm())
	units := f.PairKerning(fontview.Uniform(upem), ga, gb) / f.ScaleForPixelHeight(upem)
	data := [][]string{
		{"Pair", "Glyphs", "Units", "Pixels"},
		{
			fmt.Sprintf("%c%c", a, b),
			fmt.Sprintf("%d, %d", ga, gb),
			fmtUnits(units),
			fmtPixels(f.PairKerning(fontview.Uniform(px), ga, gb)),
		},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printLayout(f fontview.Font, text string, px float32) {
	data := [][]string{
		{"#", "Char", "Glyph", "X", "Advance"},
	}
	it := f.Layout(text, fontview.Uniform(px), fontview.Pt(0, 0))
	runes := []rune(text)
	i := 0
	for g := range it.All() {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%q", runes[i]),
			fmt.Sprintf("%d", g.ID()),
			fmtPixels(g.Position().X),
			fmtPixels(g.Unpositioned().HMetrics().AdvanceWidth),
		})
		i++
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Printf("line width: %spx\n", fmtPixels(it.Caret()))
}

func fmtUnits(x float32) string {
	return fmt.Sprintf("%.0f", x)
}

func fmtPixels(x float32) string {
	return fmt.Sprintf("%.2f", x)
}

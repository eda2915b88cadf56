package main

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/uax9/bidi"
	"github.com/pterm/pterm"
)

func printCharacters(p *bidi.Paragraph) {
	pterm.Printf("Paragraph level %d (%s)\n", p.BaseLevel(), p.Direction())
	data := [][]string{
		{"Pos", "Char", "Class", "Resolved", "Level"},
	}
	for _, ch := range p.Characters() {
		data = append(data, []string{
			strconv.Itoa(ch.Index),
			fmt.Sprintf("%#U", ch.Rune),
			bidi.ClassString(ch.Initial),
			bidi.ClassString(ch.Class),
			strconv.Itoa(int(ch.Level)),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printVisual(p *bidi.Paragraph) {
	pterm.Printf("Visual order:   %v\n", p.VisualOrder())
	pterm.Printf("Reordered text: %s\n", p.ReorderedString())
	pterm.Printf("Mirrored text:  %s\n", p.MirroredString())
	data := [][]string{
		{"Fragment", "Dir", "Text"},
	}
	for _, f := range p.Fragments() {
		data = append(data, []string{
			fmt.Sprintf("[%d…%d)", f.L, f.R),
			f.Dir.String(),
			f.Text,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

package bidi

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// ---------------------------------------------------------------------------
// 3.4 Reordering Resolved Levels

// The complete paragraph is treated as a single line. Clients breaking a
// paragraph into lines should re-apply L1 and L2 per line, which is not
// supported yet.

// resetWhitespaceLevels applies rule L1, using the classes of characters as
// assigned by the classifier.
//
// L1. On each line, reset the embedding level of the following characters to the
//     paragraph embedding level:
//     1. Segment separators,
//     2. Paragraph separators,
//     3. Any sequence of whitespace characters and/or isolate formatting characters
//        preceding a segment separator or paragraph separator, and
//     4. Any sequence of whitespace characters and/or isolate formatting characters
//        at the end of the line.
func (p *Paragraph) resetWhitespaceLevels() {
	reset := true // at end of line
	for i := len(p.chars) - 1; i >= 0; i-- {
		ch := &p.chars[i]
		switch c := ch.Initial; {
		case c == bidi.S || c == bidi.B:
			ch.Level = p.base
			reset = true
		case reset && isL1Whitespace(c):
			ch.Level = p.base
		default:
			reset = false
		}
	}
}

// reorder applies rule L2 and returns a copy of chars in visual order.
//
// L2. From the highest level found in the text to the lowest odd level on each line,
//     including intermediate levels not actually present in the text, reverse any
//     contiguous sequence of characters that are at that level or higher.
func reorder(chars []Char) []Char {
	visual := make([]Char, len(chars))
	copy(visual, chars)
	if len(visual) == 0 {
		return visual
	}
	highest, lowestOdd := Level(0), Level(MaxDepth+2)
	for _, ch := range visual {
		highest = maxLevel(highest, ch.Level)
		if ch.Level&1 == 1 && ch.Level < lowestOdd {
			lowestOdd = ch.Level
		}
	}
	for level := highest; level >= lowestOdd && level > 0; level-- {
		for i := 0; i < len(visual); i++ {
			if visual[i].Level < level {
				continue
			}
			j := i + 1
			for j < len(visual) && visual[j].Level >= level {
				j++
			}
			reverse(visual[i:j])
			i = j
		}
	}
	return visual
}

func reverse(chars []Char) {
	for i, j := 0, len(chars)-1; i < j; i, j = i+1, j-1 {
		chars[i], chars[j] = chars[j], chars[i]
	}
}

// Reordered returns the characters of the paragraph in visual order, from
// left to right.
func (p *Paragraph) Reordered() []Char {
	chars := make([]Char, len(p.visual))
	copy(chars, p.visual)
	return chars
}

// VisualOrder returns the input positions of the characters in visual order.
// Characters removed by rule X9 do not appear.
func (p *Paragraph) VisualOrder() []int {
	order := make([]int, len(p.visual))
	for i, ch := range p.visual {
		order[i] = ch.Index
	}
	return order
}

// ReorderedString returns the text of the paragraph in visual order.
// Glyph mirroring is not applied.
func (p *Paragraph) ReorderedString() string {
	var b strings.Builder
	for _, ch := range p.visual {
		b.WriteRune(ch.Rune)
	}
	return b.String()
}

// MirroredString returns the text of the paragraph in visual order, with paired
// brackets at odd levels replaced by their mirrored counterpart (rule L4).
func (p *Paragraph) MirroredString() string {
	var b strings.Builder
	for _, ch := range p.visual {
		r := ch.Rune
		if ch.Level&1 == 1 {
			r, _ = Mirror(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// --- Fragments -------------------------------------------------------------

// A Fragment represents a directional run of text in visual order, i.e., a
// continuous sequence of characters of a single direction.
// L and R are the left and right positions within the visual order, R exclusive.
type Fragment struct {
	Text string
	Dir  Direction // either LeftToRight or RightToLeft
	L, R int
}

func (f Fragment) String() string {
	return fmt.Sprintf("[%d-%s-%d]%q", f.L, f.Dir, f.R, f.Text)
}

// Fragments splits the visual order of the paragraph into maximal runs of
// characters with identical direction. Concatenating the text of all fragments
// yields ReorderedString.
func (p *Paragraph) Fragments() []Fragment {
	var fragments []Fragment
	var b strings.Builder
	for i, ch := range p.visual {
		dir := ch.Direction()
		if i == 0 || fragments[len(fragments)-1].Dir != dir {
			if len(fragments) > 0 {
				fragments[len(fragments)-1].Text = b.String()
				b.Reset()
			}
			fragments = append(fragments, Fragment{Dir: dir, L: i})
		}
		b.WriteRune(ch.Rune)
		fragments[len(fragments)-1].R = i + 1
	}
	if len(fragments) > 0 {
		fragments[len(fragments)-1].Text = b.String()
	}
	return fragments
}

package bidi

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// --- Characters ------------------------------------------------------------

// Char is a character of a paragraph, together with the bidi information
// resolved for it. Characters removed by rule X9 (embedding and override
// controls, PDF and boundary neutrals) are not represented by a Char.
type Char struct {
	Index    int        // position of the character within the input sequence
	Rune     rune       // the character itself; 0 for paragraphs resolved from classes
	Class    bidi.Class // resolved bidi class
	Original bidi.Class // bidi class after resolution of explicit levels and overrides
	Initial  bidi.Class // bidi class as assigned by the classifier
	Level    Level      // resolved embedding level
}

// Direction returns the direction of a character, derived from its level.
func (ch Char) Direction() Direction {
	return ch.Level.Direction()
}

func (ch Char) String() string {
	return fmt.Sprintf("[%d:%#U %s/%d]", ch.Index, ch.Rune, ClassString(ch.Class), ch.Level)
}

// --- Paragraph -------------------------------------------------------------

// Paragraph holds the result of resolving a paragraph of text with the UAX#9
// Bidirectional Algorithm. A Paragraph is immutable once created and may be read
// from multiple goroutines.
type Paragraph struct {
	text     []rune       // input text, may be nil for class input
	classes  []bidi.Class // class per input position, as assigned by the classifier
	base     Level        // paragraph embedding level
	chars    []Char       // characters surviving X9, in logical order
	position []int        // input position → index in chars, or -1 if removed by X9
	matching []int        // BD9: input position of matching isolate initiator/PDI, or -1
	visual   []Char       // characters in visual order
}

// ResolveParagraph accepts the text of a single paragraph and resolves
// embedding levels and visual ordering for its characters.
//
// UAX#9 lists the following phases for bidi typesetting:
//    3.3  Resolving Embedding Levels
//    3.4  Reordering Resolved Levels
//    3.5  Shaping
// Shaping is not handled by this package. Reordering is performed as if the
// complete paragraph formed a single line.
func ResolveParagraph(text string, opts ...Option) *Paragraph {
	return ResolveRunes([]rune(text), opts...)
}

// ResolveRunes is a variant of ResolveParagraph for input given as runes.
func ResolveRunes(text []rune, opts ...Option) *Paragraph {
	c := makeConfig(opts)
	return resolve(text, classify(text, c.testing), c)
}

// ResolveClasses resolves a sequence of bidi classes instead of characters.
// This is useful for testing, given that elements of the sequence will not be
// recognized as brackets. Resulting characters will have Rune == 0.
func ResolveClasses(classes []bidi.Class, opts ...Option) *Paragraph {
	c := makeConfig(opts)
	cc := make([]bidi.Class, len(classes))
	copy(cc, classes)
	return resolve(nil, cc, c)
}

func resolve(text []rune, classes []bidi.Class, c config) *Paragraph {
	p := &Paragraph{
		text:    text,
		classes: classes,
	}
	switch c.direction {
	case LeftToRight:
		p.base = 0
	case RightToLeft:
		p.base = 1
	default: // rules P2 and P3
		if firstStrong(classes, false) == bidi.R {
			p.base = 1
		}
	}
	tracer().Debugf("resolving paragraph of length %d at level %d", len(classes), p.base)
	p.matching = matchIsolates(classes)
	p.resolveExplicitLevels()
	for _, seq := range p.isolatingRunSequences() {
		seq.resolveWeakTypes()
		seq.resolvePairedBrackets()
		seq.resolveNeutralTypes()
		seq.commit()
	}
	p.resolveImplicitLevels()
	p.resetWhitespaceLevels()
	p.visual = reorder(p.chars)
	return p
}

func (p *Paragraph) runeAt(i int) rune {
	if i < len(p.text) {
		return p.text[i]
	}
	return 0
}

// BaseLevel returns the paragraph embedding level.
func (p *Paragraph) BaseLevel() Level {
	return p.base
}

// Direction returns the paragraph embedding direction.
func (p *Paragraph) Direction() Direction {
	return p.base.Direction()
}

// Len returns the number of characters of the paragraph's input,
// including characters removed by rule X9.
func (p *Paragraph) Len() int {
	return len(p.classes)
}

// Characters returns the characters of the paragraph in logical order,
// annotated with resolved levels. Characters removed by rule X9 are not
// included.
func (p *Paragraph) Characters() []Char {
	chars := make([]Char, len(p.chars))
	copy(chars, p.chars)
	return chars
}

// Levels returns the resolved level for every position of the input.
// Positions of characters removed by rule X9 have level -1.
func (p *Paragraph) Levels() []int {
	levels := make([]int, len(p.classes))
	for i, pos := range p.position {
		if pos < 0 {
			levels[i] = -1
			continue
		}
		levels[i] = int(p.chars[pos].Level)
	}
	return levels
}

func (p *Paragraph) String() string {
	var b strings.Builder
	for i, ch := range p.chars {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("[%d-%s-%d]", ch.Index, ClassString(ch.Class), ch.Level))
	}
	return b.String()
}

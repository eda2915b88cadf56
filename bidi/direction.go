package bidi

import (
	"golang.org/x/text/unicode/bidi"
)

// Direction is the direction of a run of text.
type Direction int8

// Directions are either left-to-right or right-to-left. Neutral is used for
// paragraphs to flag that the direction should be found from the text itself.
const (
	LeftToRight Direction = iota
	RightToLeft
	Neutral
)

func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "LtoR"
	case RightToLeft:
		return "RtoL"
	}
	return "Neutral"
}

// Class returns the strong bidi class corresponding to a direction.
// Neutral maps to ON.
func (d Direction) Class() bidi.Class {
	switch d {
	case LeftToRight:
		return bidi.L
	case RightToLeft:
		return bidi.R
	}
	return bidi.ON
}

// Level is an embedding level (BD2). Even levels are left-to-right, odd
// levels are right-to-left.
type Level uint8

// Direction returns the embedding direction for a level.
func (l Level) Direction() Direction {
	if l&1 == 1 {
		return RightToLeft
	}
	return LeftToRight
}

// class returns L for even levels and R for odd levels.
func (l Level) class() bidi.Class {
	if l&1 == 1 {
		return bidi.R
	}
	return bidi.L
}

// leastGreaterOdd returns the least odd level greater than l.
func (l Level) leastGreaterOdd() Level {
	return (l + 1) | 1
}

// leastGreaterEven returns the least even level greater than l.
func (l Level) leastGreaterEven() Level {
	return (l + 2) &^ 1
}

// --- Paragraph level -------------------------------------------------------

// DetectDirection finds the direction of the first strong character of a text,
// skipping characters between isolate initiators and their matching PDIs
// (rules P2 and P3). If no strong character is found, LeftToRight is returned.
//
// Option Testing is respected, DefaultDirection is ignored.
func DetectDirection(text string, opts ...Option) Direction {
	c := makeConfig(opts)
	if firstStrong(classify([]rune(text), c.testing), false) == bidi.R {
		return RightToLeft
	}
	return LeftToRight
}

// firstStrong implements rules P2 and P3 on a sequence of classes: it returns
// R if the first strong character outside of isolates is R or AL, and L
// otherwise.
//
// With stopAtPDI set, a PDI without a preceding isolate initiator terminates
// the search. This is used to find the direction of the content of an FSI.
func firstStrong(classes []bidi.Class, stopAtPDI bool) bidi.Class {
	depth := 0
	for _, c := range classes {
		switch c {
		case bidi.LRI, bidi.RLI, bidi.FSI:
			depth++
		case bidi.PDI:
			if depth > 0 {
				depth--
			} else if stopAtPDI {
				return bidi.L
			}
		case bidi.L:
			if depth == 0 {
				return bidi.L
			}
		case bidi.R, bidi.AL:
			if depth == 0 {
				return bidi.R
			}
		}
	}
	return bidi.L
}

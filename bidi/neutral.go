package bidi

import (
	"golang.org/x/text/unicode/bidi"
)

// resolveNeutralTypes applies rules N1 and N2 to an isolating run sequence.
// Paired brackets have already been handled by N0.
//
// N1. A sequence of NIs takes the direction of the surrounding strong text if the
//     text on both sides has the same direction. European and Arabic numbers act
//     as if they were R in terms of their influence on NIs. The start-of-sequence
//     (sos) and end-of-sequence (eos) types are used at isolating run sequence
//     boundaries.
//
// N2. Any remaining NIs take the embedding direction.
func (seq *isolatingRunSequence) resolveNeutralTypes() {
	types := seq.types
	n := len(types)
	embedding := seq.level.class()
	for i := 0; i < n; i++ {
		if !isNI(types[i]) {
			continue
		}
		end := i + 1
		for end < n && isNI(types[end]) {
			end++
		}
		leading, trailing := seq.sos, seq.eos
		if i > 0 {
			leading = numbersAsR(types[i-1])
		}
		if end < n {
			trailing = numbersAsR(types[end])
		}
		dir := embedding // N2
		if leading == trailing {
			dir = leading // N1
		}
		seq.setTypes(i, end, dir)
		i = end
	}
}

func numbersAsR(c bidi.Class) bidi.Class {
	switch c {
	case bidi.EN, bidi.AN:
		return bidi.R
	}
	return c
}

// ---------------------------------------------------------------------------
// 3.3.6 Resolving Implicit Levels

// resolveImplicitLevels applies rules I1 and I2.
//
// Table 5. Resolving Implicit Levels (see section 3.3.6)
//
// Type  | Embedding Level
// ------+-----------------
//       |   Even    Odd
// L     |   EL      EL+1
// R     |   EL+1    EL
// AN    |   EL+2    EL+1
// EN    |   EL+2    EL+1
//
func (p *Paragraph) resolveImplicitLevels() {
	for i := range p.chars {
		ch := &p.chars[i]
		if ch.Level&1 == 0 { // I1
			switch ch.Class {
			case bidi.R:
				ch.Level++
			case bidi.AN, bidi.EN:
				ch.Level += 2
			}
		} else { // I2
			switch ch.Class {
			case bidi.L, bidi.EN, bidi.AN:
				ch.Level++
			}
		}
	}
}

package bidi

import (
	"fmt"
	"sort"

	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

//go:generate go run ./internal/gen -o bracketpairs.go -pkg bidi

// BD16MaxNesting is the maximum stack depth for rule BD16 as defined in UAX#9.
const BD16MaxNesting = 63

// --- Brackets and bracket stack --------------------------------------------

// Brackets require a disproportionate amount of work in UAX#9. It reads:
//
// A bracket pair is a pair of characters consisting of an opening paired bracket
// and a closing paired bracket such that the Bidi_Paired_Bracket property value
// of the former or its canonical equivalent equals the latter or its canonical
// equivalent and which are algorithmically identified at specific text positions
// within an isolating run sequence.
//
// The following algorithm identifies all of the bracket pairs in a given isolating run sequence:
//
// * Create a fixed-size stack for exactly 63 elements each consisting of a bracket
//   character and a text position. Initialize it to empty.
// * Create a list for elements each consisting of two text positions, one for an opening
//   paired bracket and the other for a corresponding closing paired bracket. Initialize
//   it to empty.
// * Inspect each character in the isolating run sequence in logical order.
//   - If an opening paired bracket is found and there is room in the stack, push its
//     Bidi_Paired_Bracket property value and its text position onto the stack.
//   - If an opening paired bracket is found and there is no room in the stack, stop
//     processing BD16 for the remainder of the isolating run sequence.
//   - If a closing paired bracket is found, do the following:
// 	   1. Declare a variable that holds a reference to the current stack element and
//        initialize it with the top element of the stack.
// 	   2. Compare the closing paired bracket being inspected or its canonical equivalent
//        to the bracket in the current stack element.
// 	   3. If the values match, meaning the two characters form a bracket pair, then
// 	      . Append the text position in the current stack element together with the
//          text position of the closing paired bracket to the list.
// 	      . Pop the stack through the current stack element inclusively.
// 	   4. Else, if the current stack element is not at the bottom of the stack, advance
//        it to the next element deeper in the stack and go back to step 2.
// 	   5. Else, continue with inspecting the next character without popping the stack.
// * Sort the list of pairs of text positions in ascending order based on the text position of the opening paired bracket.
//
// Examples of bracket pairs:
//
// 	Text                Pairings
// 	1 2 3 4 5 6 7 8
// 	a ) b ( c           None
// 	a ( b ] c           None
// 	a ( b ) c           2-4
// 	a ( b [ c ) d ]     2-6
// 	a ( b ] c ) d       2-6
// 	a ( b ) c ) d       2-4
// 	a ( b ( c ) d       4-6
// 	a ( b ( c ) d )     2-8, 4-6
// 	a ( b { c } d )     2-8, 4-6

// bracketPair is an entry of the Unicode bracket table (BidiBrackets.txt):
// an opening bracket and its Bidi_Paired_Bracket.
type bracketPair struct {
	o rune
	c rune
}

func (bp bracketPair) String() string {
	return fmt.Sprintf("[%#U,%#U]", bp.o, bp.c)
}

// bracketProps identifies a bracket. Canonically equivalent brackets share the
// same key, which is the canonical decomposition of the opening bracket.
type bracketProps struct {
	key     rune
	opening bool
}

// brackets is a read-only dictionary of all paired brackets, initialized once.
var brackets map[rune]bracketProps

func init() {
	brackets = make(map[rune]bracketProps, 2*len(uax9BracketPairs))
	for _, pair := range uax9BracketPairs {
		key := canonical(pair.o)
		brackets[pair.o] = bracketProps{key: key, opening: true}
		brackets[pair.c] = bracketProps{key: key, opening: false}
	}
}

// canonical returns the canonical equivalent of a single bracket character,
// e.g. U+3008 for U+2329.
func canonical(r rune) rune {
	d := []rune(norm.NFD.String(string(r)))
	if len(d) == 1 {
		return d[0]
	}
	return r
}

// Mirror returns the mirrored glyph for a paired bracket (rule L4). Other
// characters with property Bidi_Mirrored are not considered.
func Mirror(r rune) (rune, bool) {
	for _, pair := range uax9BracketPairs {
		if pair.o == r {
			return pair.c, true
		} else if pair.c == r {
			return pair.o, true
		}
	}
	return r, false
}

// brktpos is a bracket on the BD16 stack: its key and its position within an
// isolating run sequence.
type brktpos struct {
	key rune
	pos int
}

// This is the stack to perform the algorithm described above.
type bracketStack []brktpos

// push pushes an opening bracket and its position onto the stack. If the stack
// is full, push returns false.
func (bs bracketStack) push(key rune, pos int) (bool, bracketStack) {
	if len(bs) >= BD16MaxNesting { // skip in case of stack overflow, as defined in UAX#9
		return false, bs
	}
	return true, append(bs, brktpos{key: key, pos: pos})
}

// popWith checks for an opening bracket on the bracket stack matching a given
// closing bracket. It performs steps 1–5 from the algorithm described above.
func (bs bracketStack) popWith(key rune) (bool, int, bracketStack) {
	for i := len(bs) - 1; i >= 0; i-- { // start at TOS, possibly skip unclosed opening brackets
		if bs[i].key == key {
			return true, bs[i].pos, bs[:i]
		}
	}
	return false, -1, bs
}

// pairing is a pair of sequence positions of an opening and a closing bracket.
type pairing struct {
	o, c int
}

// locateBracketPairs identifies bracket pairs (BD16) within an isolating run
// sequence. Only characters with a current class of ON are considered
// (BD14, BD15).
func (seq *isolatingRunSequence) locateBracketPairs() []pairing {
	var pairings []pairing
	stack := make(bracketStack, 0, BD16MaxNesting)
	for i, inx := range seq.indices {
		if seq.types[i] != bidi.ON {
			continue
		}
		props, ok := brackets[seq.p.chars[inx].Rune]
		if !ok {
			continue
		}
		if props.opening {
			var pushed bool
			if pushed, stack = stack.push(props.key, i); !pushed {
				tracer().Debugf("BD16: bracket stack overflow at position %d", inx)
				break
			}
			continue
		}
		var found bool
		var open int
		if found, open, stack = stack.popWith(props.key); found {
			pairings = append(pairings, pairing{o: open, c: i})
		}
	}
	sort.Slice(pairings, func(i, j int) bool {
		return pairings[i].o < pairings[j].o
	})
	return pairings
}

// ---------------------------------------------------------------------------
// 3.3.5 Resolving Neutral and Isolate Formatting Types

// resolvePairedBrackets applies rule N0 to an isolating run sequence.
//
// N0. Process bracket pairs in an isolating run sequence sequentially in the logical
//     order of the opening brackets of each pair.
func (seq *isolatingRunSequence) resolvePairedBrackets() {
	embedding := seq.level.class()
	for _, pair := range seq.locateBracketPairs() {
		// a. Inspect the bidirectional types of the characters enclosed within the
		//    bracket pair.
		dir := seq.classifyPairContent(pair, embedding)
		if dir == bidi.ON {
			// d. Otherwise, there are no strong types within the bracket pair.
			//    Therefore, do not set the type for that bracket pair.
			continue
		}
		if dir != embedding {
			// c. Otherwise, if there is a strong type it must be opposite the embedding
			//    direction. Therefore, test for an established context with a preceding
			//    strong type by checking backwards before the opening paired bracket
			//    until the first strong type (L, R, or sos) is found.
			//    1. If the preceding strong type is also opposite the embedding
			//       direction, context is established, so set the type for both
			//       brackets in the pair to that direction.
			//    2. Otherwise set the type for both brackets in the pair to the
			//       embedding direction.
			if before := seq.classBeforePair(pair); before != dir {
				dir = embedding
			}
		}
		// b. If any strong type (either L or R) matching the embedding direction
		//    is found, set the type for both brackets in the pair to match the
		//    embedding direction.
		seq.setBracketsToType(pair, dir)
	}
}

// classifyPairContent returns the embedding direction if a strong type matching
// it is found between the brackets, the opposite direction if only strong types
// of the opposite direction are found, and ON otherwise.
func (seq *isolatingRunSequence) classifyPairContent(pair pairing, embedding bidi.Class) bidi.Class {
	opposite := bidi.ON
	for i := pair.o + 1; i < pair.c; i++ {
		dir := strongTypeN0(seq.types[i])
		if dir == bidi.ON {
			continue
		}
		if dir == embedding {
			return dir
		}
		opposite = dir
	}
	return opposite
}

// classBeforePair searches backwards from an opening bracket for the first
// strong type, returning sos if none is found.
func (seq *isolatingRunSequence) classBeforePair(pair pairing) bidi.Class {
	for i := pair.o - 1; i >= 0; i-- {
		if dir := strongTypeN0(seq.types[i]); dir != bidi.ON {
			return dir
		}
	}
	return seq.sos
}

// setBracketsToType sets both brackets of a pair to a strong direction.
// Characters originally of type NSM that immediately follow a bracket change to
// match the type of their bracket.
func (seq *isolatingRunSequence) setBracketsToType(pair pairing, dir bidi.Class) {
	seq.types[pair.o] = dir
	seq.types[pair.c] = dir
	for i := pair.o + 1; i < pair.c; i++ {
		if seq.p.chars[seq.indices[i]].Original != bidi.NSM {
			break
		}
		seq.types[i] = dir
	}
	for i := pair.c + 1; i < len(seq.indices); i++ {
		if seq.p.chars[seq.indices[i]].Original != bidi.NSM {
			break
		}
		seq.types[i] = dir
	}
}

package bidi

import (
	"fmt"
	"strconv"
	"unicode"

	"golang.org/x/text/unicode/bidi"
)

// --- Handling of Bidi_Classes ----------------------------------------------

// Classify returns the Bidi_Class of a rune, as defined by the Unicode
// Character Database. With testing set, uppercase letters are classified as R,
// which is a common pattern in bidi algorithm development.
//
// Every code point has a Bidi_Class, including unassigned ones, which will get
// the default class of their Unicode block.
func Classify(r rune, testing bool) bidi.Class {
	if testing && unicode.IsUpper(r) {
		return bidi.R // during testing, UPPERCASE is R2L
	}
	props, _ := bidi.LookupRune(r)
	return props.Class()
}

// classify classifies a sequence of runes.
func classify(text []rune, testing bool) []bidi.Class {
	classes := make([]bidi.Class, len(text))
	for i, r := range text {
		classes[i] = Classify(r, testing)
	}
	return classes
}

const claszname = "LRENESETANCSBSWSONBNNSMALControlNumLRORLOLRERLEPDFLRIRLIFSIPDI"

var claszindex = [...]uint8{0, 1, 2, 4, 6, 8, 10, 12, 13, 14, 16, 18, 20, 23, 25, 32, 35, 38, 41, 44, 47, 50, 53, 56, 59, 62}

// ClassString returns a bidi class as a string, using the short names of the
// Unicode Character Database.
func ClassString(c bidi.Class) string {
	if int(c) >= len(claszindex)-1 {
		return "bidi_class(" + strconv.FormatInt(int64(c), 10) + ")"
	}
	return claszname[claszindex[c]:claszindex[c+1]]
}

var classByName map[string]bidi.Class

func init() {
	classByName = make(map[string]bidi.Class, len(claszindex))
	for c := bidi.L; c <= bidi.PDI; c++ {
		if c == bidi.Control || ClassString(c) == "Num" {
			continue
		}
		classByName[ClassString(c)] = c
	}
}

// ParseClass returns the bidi class for a short class name, as used in
// UCD files (e.g., "AL", "NSM" or "LRI").
func ParseClass(name string) (bidi.Class, error) {
	if c, ok := classByName[name]; ok {
		return c, nil
	}
	return bidi.ON, fmt.Errorf("unknown bidi class name %q", name)
}

// isIsolateInitiator is true for LRI, RLI and FSI.
func isIsolateInitiator(c bidi.Class) bool {
	return c == bidi.LRI || c == bidi.RLI || c == bidi.FSI
}

// isIsolateControl is true for isolate initiators and PDI.
func isIsolateControl(c bidi.Class) bool {
	return isIsolateInitiator(c) || c == bidi.PDI
}

// isRemovedByX9 is true for classes of characters removed by rule X9.
func isRemovedByX9(c bidi.Class) bool {
	switch c {
	case bidi.LRE, bidi.RLE, bidi.LRO, bidi.RLO, bidi.PDF, bidi.BN:
		return true
	}
	return false
}

// isNI is true for neutral and isolate formatting characters (BD12).
// Paragraph separators are included, as UAX#9 rule N1 treats them as neutrals.
func isNI(c bidi.Class) bool {
	switch c {
	case bidi.B, bidi.S, bidi.WS, bidi.ON, bidi.LRI, bidi.RLI, bidi.FSI, bidi.PDI:
		return true
	}
	return false
}

// isL1Whitespace is true for characters that are reset to paragraph level
// by rule L1 when preceding a separator or ending the line.
func isL1Whitespace(c bidi.Class) bool {
	return c == bidi.WS || isIsolateControl(c) || isRemovedByX9(c)
}

// strongTypeN0 maps classes to their effect as strong types within bracket
// pairs: EN and AN count as R (see rule N0).
func strongTypeN0(c bidi.Class) bidi.Class {
	switch c {
	case bidi.L:
		return bidi.L
	case bidi.R, bidi.AL, bidi.EN, bidi.AN:
		return bidi.R
	}
	return bidi.ON
}

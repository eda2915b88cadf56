package bidi

import (
	"golang.org/x/text/unicode/bidi"
)

// ---------------------------------------------------------------------------
// 3.3.4 Resolving Weak Types

// resolveWeakTypes applies rules W1 to W7 to an isolating run sequence.
// Headers and rule names correspond to UAX#9.
func (seq *isolatingRunSequence) resolveWeakTypes() {
	types := seq.types
	n := len(types)
	// W1. Examine each nonspacing mark (NSM) in the isolating run sequence, and change the
	//     type of the NSM to Other Neutral if the previous character is an isolate
	//     initiator or PDI, and to the type of the previous character otherwise.
	prev := seq.sos
	for i, t := range types {
		if t == bidi.NSM {
			if isIsolateControl(prev) {
				types[i] = bidi.ON
			} else {
				types[i] = prev
			}
		}
		prev = types[i]
	}
	// W2. Search backward from each instance of a European number until the first strong type
	//     (R, L, AL, or sos) is found. If an AL is found, change the type of the
	//     European number to Arabic number.
	// W3. Change all ALs to R.
	lastStrong := seq.sos
	for i, t := range types {
		switch t {
		case bidi.L, bidi.R:
			lastStrong = t
		case bidi.AL:
			lastStrong = t
			types[i] = bidi.R
		case bidi.EN:
			if lastStrong == bidi.AL {
				types[i] = bidi.AN
			}
		}
	}
	// W4. A single European separator between two European numbers changes to
	//     a European number. A single common separator between two numbers of the
	//     same type changes to that type.
	for i := 1; i < n-1; i++ {
		if t := types[i]; t == bidi.ES || t == bidi.CS {
			before, after := types[i-1], types[i+1]
			if before == bidi.EN && after == bidi.EN {
				types[i] = bidi.EN
			} else if t == bidi.CS && before == bidi.AN && after == bidi.AN {
				types[i] = bidi.AN
			}
		}
	}
	// W5. A sequence of European terminators adjacent to European numbers changes to
	//     all European numbers.
	for i := 0; i < n; i++ {
		if types[i] != bidi.ET {
			continue
		}
		end := seq.runLimit(i, bidi.ET)
		t := seq.sos
		if i > 0 {
			t = types[i-1]
		}
		if t != bidi.EN {
			t = seq.eos
			if end < n {
				t = types[end]
			}
		}
		if t == bidi.EN {
			seq.setTypes(i, end, bidi.EN)
		}
		i = end
	}
	// W6. Otherwise, separators and terminators change to Other Neutral.
	for i, t := range types {
		if t == bidi.ES || t == bidi.ET || t == bidi.CS {
			types[i] = bidi.ON
		}
	}
	// W7. Search backward from each instance of a European number until the first strong
	//     type (R, L, or sos) is found. If an L is found, then change the type of the
	//     European number to L.
	lastStrong = seq.sos
	for i, t := range types {
		switch t {
		case bidi.L, bidi.R:
			lastStrong = t
		case bidi.EN:
			if lastStrong == bidi.L {
				types[i] = bidi.L
			}
		}
	}
}

// runLimit returns the end position of a run of characters starting at from,
// all of which have class c.
func (seq *isolatingRunSequence) runLimit(from int, c bidi.Class) int {
	i := from
	for i < len(seq.types) && seq.types[i] == c {
		i++
	}
	return i
}

// setTypes sets the working class of positions [from, to).
func (seq *isolatingRunSequence) setTypes(from, to int, c bidi.Class) {
	for i := from; i < to; i++ {
		seq.types[i] = c
	}
}

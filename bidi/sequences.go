package bidi

import (
	"golang.org/x/text/unicode/bidi"
)

// ---------------------------------------------------------------------------
// 3.3.3 Preparations for Implicit Processing

// matchIsolates finds matching isolate initiators and PDIs (BD9). For each
// matched position the result holds the position of its counterpart, -1
// otherwise. A paragraph separator terminates all open isolates.
func matchIsolates(classes []bidi.Class) []int {
	matching := make([]int, len(classes))
	open := make([]int, 0, 8)
	for i, c := range classes {
		matching[i] = -1
		switch c {
		case bidi.LRI, bidi.RLI, bidi.FSI:
			open = append(open, i)
		case bidi.PDI:
			if len(open) > 0 {
				j := open[len(open)-1]
				open = open[:len(open)-1]
				matching[i], matching[j] = j, i
			}
		case bidi.B:
			open = open[:0]
		}
	}
	return matching
}

// levelRun is a maximal substring of characters with identical embedding level
// (BD7), given as a range [from, to) of positions in p.chars.
type levelRun struct {
	from, to int
	complete bool // run is part of an isolating run sequence
}

// levelRuns splits the characters remaining after X9 into level runs.
// It returns the runs and, for every character, the index of its run.
func (p *Paragraph) levelRuns() ([]levelRun, []int) {
	runs := make([]levelRun, 0, 8)
	runOf := make([]int, len(p.chars))
	for i, ch := range p.chars {
		if i == 0 || ch.Level != p.chars[i-1].Level {
			runs = append(runs, levelRun{from: i, to: i})
		}
		runs[len(runs)-1].to = i + 1
		runOf[i] = len(runs) - 1
	}
	return runs, runOf
}

// isolatingRunSequence is the unit of application for rules W1 – I2 (BD13).
// It holds a working copy of the resolved classes of its characters.
type isolatingRunSequence struct {
	p        *Paragraph
	indices  []int        // positions of characters in p.chars
	types    []bidi.Class // working bidi classes
	level    Level        // embedding level of all characters of the sequence
	sos, eos bidi.Class   // start-of-sequence and end-of-sequence types
}

// isolatingRunSequences computes the isolating run sequences of a paragraph
// (BD13) and determines sos and eos for each of them (X10).
//
// A level run ending with an isolate initiator, whose matching PDI exists, is
// continued with the level run starting with that PDI.
func (p *Paragraph) isolatingRunSequences() []*isolatingRunSequence {
	runs, runOf := p.levelRuns()
	seqs := make([]*isolatingRunSequence, 0, len(runs))
	for r := range runs {
		if runs[r].complete {
			continue
		}
		seq := &isolatingRunSequence{p: p}
		run := &runs[r]
		for {
			run.complete = true
			for i := run.from; i < run.to; i++ {
				seq.indices = append(seq.indices, i)
			}
			last := p.chars[run.to-1]
			if !isIsolateInitiator(last.Initial) || p.matching[last.Index] < 0 {
				break
			}
			pdi := p.position[p.matching[last.Index]]
			next := &runs[runOf[pdi]]
			if next.complete || next.from != pdi {
				break
			}
			run = next
		}
		seq.setup()
		seqs = append(seqs, seq)
	}
	tracer().Debugf("paragraph has %d level runs, %d isolating run sequences", len(runs), len(seqs))
	return seqs
}

// setup copies the working classes and determines sos and eos (X10).
func (seq *isolatingRunSequence) setup() {
	p := seq.p
	seq.types = make([]bidi.Class, len(seq.indices))
	for i, inx := range seq.indices {
		seq.types[i] = p.chars[inx].Class
	}
	first, last := seq.indices[0], seq.indices[len(seq.indices)-1]
	seq.level = p.chars[first].Level
	prevLevel := p.base
	if first > 0 {
		prevLevel = p.chars[first-1].Level
	}
	seq.sos = maxLevel(seq.level, prevLevel).class()
	nextLevel := p.base
	if !isIsolateInitiator(p.chars[last].Initial) && last+1 < len(p.chars) {
		nextLevel = p.chars[last+1].Level
	}
	seq.eos = maxLevel(seq.level, nextLevel).class()
}

// commit writes the resolved classes back to the paragraph's characters.
func (seq *isolatingRunSequence) commit() {
	for i, inx := range seq.indices {
		seq.p.chars[inx].Class = seq.types[i]
	}
}

func maxLevel(a, b Level) Level {
	if a > b {
		return a
	}
	return b
}

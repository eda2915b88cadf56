package bidi

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"golang.org/x/text/unicode/bidi"
)

// ---------------------------------------------------------------------------
// 3.3.2 Explicit Levels and Directions

// dirStatus is an entry of the directional status stack. Entries are stored
// as values, i.e. pushing an entry stores a snapshot of it.
type dirStatus struct {
	level    Level      // embedding level
	override bidi.Class // directional override status: ON (neutral), L or R
	isolate  bool       // directional isolate status
}

// statusStack is the directional status stack of rules X1 – X8. Its depth
// is bounded by MaxDepth+2.
type statusStack struct {
	stack *arraystack.Stack
}

func newStatusStack(base Level) statusStack {
	st := statusStack{stack: arraystack.New()}
	st.push(dirStatus{level: base, override: bidi.ON})
	return st
}

func (st statusStack) push(s dirStatus) {
	st.stack.Push(s)
}

func (st statusStack) pop() {
	st.stack.Pop()
}

func (st statusStack) top() dirStatus {
	s, _ := st.stack.Peek()
	return s.(dirStatus)
}

func (st statusStack) depth() int {
	return st.stack.Size()
}

// resolveExplicitLevels applies rules X1 to X9. Formatting characters
// removed by X9 do not make it into p.chars.
func (p *Paragraph) resolveExplicitLevels() {
	// X1
	stack := newStatusStack(p.base)
	var overflowIsolates, overflowEmbeddings, validIsolates int
	limit := 0 // end of the current paragraph, for FSIs without matching PDI
	p.chars = make([]Char, 0, len(p.classes))
	p.position = make([]int, len(p.classes))
	for i, clz := range p.classes {
		current := stack.top()
		level, t := current.level, clz
		switch clz {
		case bidi.RLE, bidi.LRE, bidi.RLO, bidi.LRO, bidi.RLI, bidi.LRI, bidi.FSI: // X2 – X5c
			isolate := isIsolateInitiator(clz)
			rtl := clz == bidi.RLE || clz == bidi.RLO || clz == bidi.RLI
			if clz == bidi.FSI {
				if limit <= i {
					limit = nextSeparator(p.classes, i)
				}
				rtl = firstStrong(p.isolateContent(i, limit), true) == bidi.R
			}
			if isolate && current.override != bidi.ON {
				t = current.override
			}
			newLevel := current.level.leastGreaterEven()
			if rtl {
				newLevel = current.level.leastGreaterOdd()
			}
			if newLevel <= MaxDepth && overflowIsolates == 0 && overflowEmbeddings == 0 {
				if isolate {
					validIsolates++
				}
				override := bidi.ON
				switch clz {
				case bidi.LRO:
					override = bidi.L
				case bidi.RLO:
					override = bidi.R
				}
				stack.push(dirStatus{level: newLevel, override: override, isolate: isolate})
			} else if isolate {
				overflowIsolates++
			} else if overflowIsolates == 0 {
				overflowEmbeddings++
			}
		case bidi.PDI: // X6a
			if overflowIsolates > 0 {
				overflowIsolates--
			} else if validIsolates > 0 {
				overflowEmbeddings = 0
				for !stack.top().isolate {
					stack.pop()
				}
				stack.pop()
				validIsolates--
			}
			current = stack.top()
			level = current.level
			if current.override != bidi.ON {
				t = current.override
			}
		case bidi.PDF: // X7
			if overflowIsolates == 0 {
				if overflowEmbeddings > 0 {
					overflowEmbeddings--
				} else if !current.isolate && stack.depth() >= 2 {
					stack.pop()
				}
			}
		case bidi.B: // X8
			level = p.base
			stack = newStatusStack(p.base)
			overflowIsolates, overflowEmbeddings, validIsolates = 0, 0, 0
		case bidi.BN: // ignored, will be removed by X9
		default: // X6
			if current.override != bidi.ON {
				t = current.override
			}
		}
		if isRemovedByX9(clz) { // X9
			p.position[i] = -1
			continue
		}
		p.position[i] = len(p.chars)
		p.chars = append(p.chars, Char{
			Index:    i,
			Rune:     p.runeAt(i),
			Class:    t,
			Original: t,
			Initial:  clz,
			Level:    level,
		})
	}
	tracer().Debugf("explicit levels resolved, %d of %d characters remaining after X9",
		len(p.chars), len(p.classes))
}

// isolateContent returns the classes following the isolate initiator at
// position i, up to its matching PDI or, if there is none, up to limit.
func (p *Paragraph) isolateContent(i, limit int) []bidi.Class {
	if pdi := p.matching[i]; pdi >= 0 {
		return p.classes[i+1 : pdi]
	}
	return p.classes[i+1 : limit]
}

// nextSeparator returns the position of the first paragraph separator at or
// after position from, or the length of classes if there is none.
func nextSeparator(classes []bidi.Class, from int) int {
	for i := from; i < len(classes); i++ {
		if classes[i] == bidi.B {
			return i
		}
	}
	return len(classes)
}

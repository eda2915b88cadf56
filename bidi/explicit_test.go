package bidi

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/unicode/bidi"
)

func TestStatusStack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uax.bidi")
	defer teardown()
	//
	st := newStatusStack(0)
	s := dirStatus{level: 1, override: bidi.R}
	st.push(s)
	s.level = 3 // must not alter the pushed entry
	if st.top().level != 1 || st.top().override != bidi.R {
		t.Errorf("expected TOS to be (1,R), is %v", st.top())
	}
	st.pop()
	if st.depth() != 1 || st.top().level != 0 {
		t.Errorf("expected stack to contain only the paragraph entry, depth is %d", st.depth())
	}
}

func TestOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uax.bidi")
	defer teardown()
	//
	p := ResolveParagraph("\u202Eabc\u202C")
	checkLevels(t, p, []int{-1, 1, 1, 1, -1})
	if p.ReorderedString() != "cba" {
		t.Errorf("expected overridden text to be reversed, is %q", p.ReorderedString())
	}
	for _, ch := range p.Characters() {
		if ch.Class != bidi.R || ch.Initial != bidi.L {
			t.Errorf("expected %v to be overridden from L to R", ch)
		}
	}
}

func TestUnmatchedPDF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uax.bidi")
	defer teardown()
	//
	p := ResolveParagraph("a\u202Cb")
	checkLevels(t, p, []int{0, -1, 0})
}

func TestIsolates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uax.bidi")
	defer teardown()
	//
	p := ResolveParagraph("abc \u2067DEF\u2069 ghi", Testing(true))
	checkLevels(t, p, []int{0, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0, 0})
	if v := p.ReorderedString(); v != "abc \u2067FED\u2069 ghi" {
		t.Errorf("expected isolate to be reversed, have %q", v)
	}
	p = ResolveParagraph("\u2068ABC\u2069 def", Testing(true))
	if p.BaseLevel() != 0 {
		t.Errorf("expected isolate to be skipped for paragraph level, base level is %d", p.BaseLevel())
	}
	checkLevels(t, p, []int{0, 1, 1, 1, 0, 0, 0, 0, 0})
}

func TestMatchIsolates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uax.bidi")
	defer teardown()
	//
	classes := []bidi.Class{bidi.LRI, bidi.RLI, bidi.L, bidi.PDI, bidi.PDI, bidi.PDI, bidi.FSI, bidi.B, bidi.PDI}
	matching := matchIsolates(classes)
	expected := []int{4, 3, -1, 1, 0, -1, -1, -1, -1}
	for i, m := range expected {
		if matching[i] != m {
			t.Errorf("expected matching %v, have %v", expected, matching)
			break
		}
	}
}

func TestParagraphSeparatorResetsEmbeddings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uax.bidi")
	defer teardown()
	//
	p := ResolveParagraph("\u202Babc\u2029def")
	checkLevels(t, p, []int{-1, 2, 2, 2, 0, 0, 0, 0})
}

func TestDeepNesting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uax.bidi")
	defer teardown()
	//
	const n = 130
	text := strings.Repeat("\u202A", n) + "a" + strings.Repeat("\u202C", n)
	p := ResolveParagraph(text)
	levels := p.Levels()
	if levels[n] != 124 {
		t.Errorf("expected embedding to stop at level 124, 'a' is at level %d", levels[n])
	}
	for i, l := range levels {
		if i != n && l != -1 {
			t.Fatalf("expected embedding controls to be removed, position %d has level %d", i, l)
		}
	}
	text = strings.Repeat("\u2067", n) + "a" + strings.Repeat("\u2069", n)
	p = ResolveParagraph(text)
	levels = p.Levels()
	if levels[n] != MaxDepth+1 {
		t.Errorf("expected L at odd level %d to end up at %d, is at %d", MaxDepth, MaxDepth+1, levels[n])
	}
	for _, l := range levels {
		if l > MaxDepth+1 {
			t.Fatalf("level %d exceeds maximum depth", l)
		}
	}
}

func TestOverflowIsolateClosedByPDI(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uax.bidi")
	defer teardown()
	//
	const n = 62 // LREs to reach level 124
	classes := make([]bidi.Class, 0, n+7)
	for i := 0; i < n; i++ {
		classes = append(classes, bidi.LRE)
	}
	classes = append(classes, bidi.RLI, bidi.RLI, bidi.L, bidi.PDI, bidi.L, bidi.PDI, bidi.L)
	p := ResolveClasses(classes, DefaultDirection(LeftToRight))
	levels := make([]int, n, n+7)
	for i := range levels {
		levels[i] = -1
	}
	// second RLI overflows, its PDI must not close the first one
	levels = append(levels, 124, 125, 126, 126, 126, 124, 124)
	checkLevels(t, p, levels)
}

func TestFSIEndsAtParagraphSeparator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uax.bidi")
	defer teardown()
	//
	p := ResolveParagraph("\u2068 1\u2029ABC", Testing(true), DefaultDirection(LeftToRight))
	checkLevels(t, p, []int{0, 2, 2, 0, 1, 1, 1})
	p = ResolveParagraph("\u2068 1\u2069ABC", Testing(true), DefaultDirection(LeftToRight))
	if p.Levels()[1] != 2 {
		t.Errorf("expected FSI with neutral content to be LtoR, levels are %v", p.Levels())
	}
}

package bidi

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/unicode/bidi"
)

func TestSimpleParagraphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uax.bidi")
	defer teardown()
	tracing.Select("uax.bidi").SetTraceLevel(tracing.LevelError)
	//
	inputs := []struct {
		text, visual string
		dir          Direction
	}{
		{"car wash!", "car wash!", LeftToRight},
		{"car is THE CAR in arabic", "car is RAC EHT in arabic", LeftToRight},
		{"CAR IS the car IN ARABIC", "CIBARA NI the car SI RAC", RightToLeft},
		{"AB 123 CD", "DC 123 BA", RightToLeft},
		{"smith (fabrikam ARABIC) HEBREW", "smith (fabrikam CIBARA) WERBEH", LeftToRight},
		{"", "", LeftToRight},
	}
	for i, inp := range inputs {
		p := ResolveParagraph(inp.text, Testing(true))
		if p.Direction() != inp.dir {
			t.Errorf("%d: expected paragraph direction %s, is %s", i, inp.dir, p.Direction())
		}
		if v := p.ReorderedString(); v != inp.visual {
			t.Errorf("%d: expected visual order %q, have %q", i, inp.visual, v)
			t.Logf("%d: levels = %s", i, p)
		}
	}
}

func TestExplicitParagraphDirection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uax.bidi")
	defer teardown()
	//
	p := ResolveParagraph("hello", DefaultDirection(RightToLeft))
	if p.BaseLevel() != 1 {
		t.Errorf("expected base level 1, is %d", p.BaseLevel())
	}
	for _, l := range p.Levels() {
		if l != 2 {
			t.Errorf("expected L characters at level 2 in RTL paragraph, have %v", p.Levels())
			break
		}
	}
	if p.ReorderedString() != "hello" {
		t.Errorf("expected LTR text to keep its order, have %q", p.ReorderedString())
	}
	p = ResolveParagraph("שלום", DefaultDirection(LeftToRight))
	if p.BaseLevel() != 0 {
		t.Errorf("expected base level 0, is %d", p.BaseLevel())
	}
	if p.ReorderedString() != "םולש" {
		t.Errorf("expected Hebrew text to be reversed, have %q", p.ReorderedString())
	}
}

func TestDetectDirection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uax.bidi")
	defer teardown()
	//
	inputs := []struct {
		text string
		dir  Direction
	}{
		{"hello", LeftToRight},
		{"123 ABC", RightToLeft},
		{"\u2067ABC\u2069 def", LeftToRight},
		{"123", LeftToRight},
		{"", LeftToRight},
	}
	for i, inp := range inputs {
		if dir := DetectDirection(inp.text, Testing(true)); dir != inp.dir {
			t.Errorf("%d: expected direction of %q to be %s, is %s", i, inp.text, inp.dir, dir)
		}
	}
	if dir := DetectDirection("مرحبا"); dir != RightToLeft {
		t.Errorf("expected Arabic text to be detected as RtoL, is %s", dir)
	}
}

func TestMixedScripts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uax.bidi")
	defer teardown()
	//
	p := ResolveParagraph("hello שלום 123")
	levels := []int{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 2, 2, 2}
	checkLevels(t, p, levels)
	if v := p.ReorderedString(); v != "hello 123 םולש" {
		t.Errorf("expected visual order %q, have %q", "hello 123 םולש", v)
	}
}

func TestHebrewWithEnglishInBrackets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uax.bidi")
	defer teardown()
	//
	p := ResolveParagraph("The test is: אנגלית (באנגלית: English)")
	if p.Direction() != LeftToRight {
		t.Errorf("expected paragraph direction LtoR, is %s", p.Direction())
	}
	levels := make([]int, 0, 38)
	levels = append(levels, make([]int, 13)...)         // "The test is: "
	levels = append(levels, 1, 1, 1, 1, 1, 1)             // first Hebrew word
	levels = append(levels, 0, 0)                         // " ("
	levels = append(levels, 1, 1, 1, 1, 1, 1, 1)          // second Hebrew word
	levels = append(levels, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0) // ": English)"
	checkLevels(t, p, levels)
	visual := "The test is: תילגנא (תילגנאב: English)"
	if v := p.ReorderedString(); v != visual {
		t.Errorf("expected visual order %q, have %q", visual, v)
	}
	for _, inx := range []int{20, 37} {
		if ch := p.Characters()[inx]; ch.Class != bidi.L {
			t.Errorf("expected bracket %v to be resolved to L", ch)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uax.bidi")
	defer teardown()
	//
	inputs := []string{
		"car is THE CAR in arabic",
		"CAR IS the car IN ARABIC",
		"a (B [c] D) e",
		"\u202Bab\u202C CD \u2067ef 12\u2069.",
		"THE 1.5 PERCENT (AND) 10%!",
	}
	for _, inp := range inputs {
		p := ResolveParagraph(inp, Testing(true))
		order := p.VisualOrder()
		seen := make(map[int]bool, len(order))
		for _, inx := range order {
			if seen[inx] {
				t.Fatalf("input position %d appears twice in visual order of %q", inx, inp)
			}
			seen[inx] = true
		}
		for i, l := range p.Levels() {
			if (l >= 0) != seen[i] {
				t.Errorf("position %d of %q: level %d, but presence in visual order is %v", i, inp, l, seen[i])
			}
		}
		var b strings.Builder
		for _, f := range p.Fragments() {
			b.WriteString(f.Text)
		}
		if b.String() != p.ReorderedString() {
			t.Errorf("fragments of %q do not concatenate to reordered string", inp)
		}
	}
}

func TestIdempotence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uax.bidi")
	defer teardown()
	//
	text := "he said “THE VALUES ARE 123, 456, 789, OK”."
	p1 := ResolveParagraph(text, Testing(true))
	p2 := ResolveParagraph(text, Testing(true))
	if p1.String() != p2.String() || p1.ReorderedString() != p2.ReorderedString() {
		t.Errorf("resolving the same paragraph twice yields different results")
	}
}

func TestResolveClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uax.bidi")
	defer teardown()
	//
	classes := []bidi.Class{bidi.L, bidi.WS, bidi.AL, bidi.EN, bidi.WS, bidi.R}
	p := ResolveClasses(classes)
	checkLevels(t, p, []int{0, 0, 1, 2, 1, 1})
	if p.Characters()[3].Class != bidi.AN {
		t.Errorf("expected EN after AL to be resolved to AN, is %s", ClassString(p.Characters()[3].Class))
	}
	if classes[2] != bidi.AL {
		t.Errorf("input classes have been modified")
	}
}

func TestFragments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uax.bidi")
	defer teardown()
	//
	p := ResolveParagraph("car is THE CAR in arabic", Testing(true))
	fragments := p.Fragments()
	if len(fragments) != 3 {
		t.Fatalf("expected 3 fragments, have %v", fragments)
	}
	if fragments[1].Dir != RightToLeft || fragments[1].Text != "RAC EHT" {
		t.Errorf("expected middle fragment to be RtoL 'RAC EHT', is %v", fragments[1])
	}
	if fragments[1].L != 7 || fragments[1].R != 14 {
		t.Errorf("expected middle fragment to span [7,14), is [%d,%d)", fragments[1].L, fragments[1].R)
	}
	if len(ResolveParagraph("").Fragments()) != 0 {
		t.Errorf("expected empty paragraph to have no fragments")
	}
}

func checkLevels(t *testing.T, p *Paragraph, levels []int) {
	t.Helper()
	have := p.Levels()
	if len(have) != len(levels) {
		t.Fatalf("expected %d levels, have %d: %v", len(levels), len(have), have)
	}
	for i, l := range levels {
		if have[i] != l {
			t.Errorf("expected levels %v, have %v", levels, have)
			return
		}
	}
}

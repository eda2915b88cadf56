package ucdparse

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// --- BidiTest.txt ----------------------------------------------------------

// Paragraph levels to test with, as a bitset in BidiTest.txt.
const (
	AutoLTR = 1 << iota // auto-detect paragraph level
	LTR                 // force left-to-right
	RTL                 // force right-to-left
)

// BidiTestCase is a test case of BidiTest.txt: a sequence of bidi classes,
// the paragraph levels to test it with, and the expected results.
type BidiTestCase struct {
	LineNo     int
	Classes    []string // short names of bidi classes
	Paragraphs int      // bitset of AutoLTR, LTR and RTL
	Levels     []int    // resolved levels, -1 for characters removed by X9
	Reorder    []int    // visual order of positions not removed by X9
}

// ReadBidiTest reads test cases in the format of BidiTest.txt and calls f for
// every one of them. Reading stops with the first error returned by f.
func ReadBidiTest(r io.Reader, f func(tc *BidiTestCase) error) error {
	var levels, reorder []int
	return scanLines(r, func(lineno int, text, comment string) (err error) {
		if strings.HasPrefix(text, "@") {
			switch {
			case strings.HasPrefix(text, "@Levels:"):
				levels, err = parseLevels(strings.TrimPrefix(text, "@Levels:"))
			case strings.HasPrefix(text, "@Reorder:"):
				reorder, err = parseInts(strings.TrimPrefix(text, "@Reorder:"))
			}
			return err
		}
		fields := strings.Split(text, ";")
		if len(fields) != 2 {
			return fmt.Errorf("expected 2 fields, have %d", len(fields))
		}
		tc := &BidiTestCase{
			LineNo:  lineno,
			Classes: strings.Fields(fields[0]),
			Levels:  levels,
			Reorder: reorder,
		}
		if tc.Paragraphs, err = strconv.Atoi(strings.TrimSpace(fields[1])); err != nil {
			return fmt.Errorf("paragraph level bitset: %w", err)
		}
		if len(tc.Classes) != len(tc.Levels) {
			return fmt.Errorf("%d classes, but %d levels", len(tc.Classes), len(tc.Levels))
		}
		return f(tc)
	})
}

// --- BidiCharacterTest.txt -------------------------------------------------

// BidiCharacterTestCase is a test case of BidiCharacterTest.txt.
type BidiCharacterTestCase struct {
	LineNo         int
	Text           []rune
	Direction      int   // 0 = left-to-right, 1 = right-to-left, 2 = auto
	ParagraphLevel int   // resolved paragraph embedding level
	Levels         []int // resolved levels, -1 for characters removed by X9
	Reorder        []int // visual order of positions not removed by X9
}

// ReadBidiCharacterTest reads test cases in the format of BidiCharacterTest.txt
// and calls f for every one of them. Reading stops with the first error returned by f.
func ReadBidiCharacterTest(r io.Reader, f func(tc *BidiCharacterTestCase) error) error {
	return scanLines(r, func(lineno int, text, comment string) (err error) {
		fields := strings.Split(text, ";")
		if len(fields) != 5 {
			return fmt.Errorf("expected 5 fields, have %d", len(fields))
		}
		tc := &BidiCharacterTestCase{LineNo: lineno}
		for _, hex := range strings.Fields(fields[0]) {
			cp, err := ParseHexRune(hex)
			if err != nil {
				return err
			}
			tc.Text = append(tc.Text, cp)
		}
		if tc.Direction, err = strconv.Atoi(strings.TrimSpace(fields[1])); err != nil {
			return fmt.Errorf("paragraph direction: %w", err)
		}
		if tc.ParagraphLevel, err = strconv.Atoi(strings.TrimSpace(fields[2])); err != nil {
			return fmt.Errorf("paragraph level: %w", err)
		}
		if tc.Levels, err = parseLevels(fields[3]); err != nil {
			return err
		}
		if tc.Reorder, err = parseInts(fields[4]); err != nil {
			return err
		}
		if len(tc.Text) != len(tc.Levels) {
			return fmt.Errorf("%d characters, but %d levels", len(tc.Text), len(tc.Levels))
		}
		return f(tc)
	})
}

// parseLevels parses a list of levels, where 'x' denotes a removed character.
func parseLevels(s string) ([]int, error) {
	words := strings.Fields(s)
	levels := make([]int, len(words))
	for i, w := range words {
		if w == "x" {
			levels[i] = -1
			continue
		}
		l, err := strconv.Atoi(w)
		if err != nil {
			return nil, fmt.Errorf("level list: %w", err)
		}
		levels[i] = l
	}
	return levels, nil
}

func parseInts(s string) ([]int, error) {
	words := strings.Fields(s)
	ints := make([]int, len(words))
	for i, w := range words {
		n, err := strconv.Atoi(w)
		if err != nil {
			return nil, fmt.Errorf("position list: %w", err)
		}
		ints[i] = n
	}
	return ints, nil
}

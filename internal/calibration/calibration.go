// Package calibration recovers trebuchet calibration values: the two-digit
// number formed by the first and last digit found in a line, where a digit
// may be a numeral or a spelled-out English word.
package calibration

import (
	"cmp"
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/maisem/aoc2023"
)

var (
	// ErrNoDigitFound is returned for lines without any recognizable digit.
	ErrNoDigitFound = errors.New("no digit found")
	// ErrNotNumeric is returned when the joined digits do not form a number.
	ErrNotNumeric = errors.New("calibration value is not numeric")
)

type entry struct {
	key   string
	value int
}

// Lexicon is a fixed set of literal tokens that each stand for a digit.
type Lexicon struct {
	entries []entry
}

var (
	// Numerals recognizes only "1" through "9".
	Numerals = Lexicon{entries: []entry{
		{"1", 1}, {"2", 2}, {"3", 3}, {"4", 4}, {"5", 5},
		{"6", 6}, {"7", 7}, {"8", 8}, {"9", 9},
	}}

	// Words recognizes the numerals and the words "one" through "nine".
	Words = Lexicon{entries: append(slices.Clip(Numerals.entries),
		entry{"one", 1}, entry{"two", 2}, entry{"three", 3},
		entry{"four", 4}, entry{"five", 5}, entry{"six", 6},
		entry{"seven", 7}, entry{"eight", 8}, entry{"nine", 9},
	)}
)

// Token is a lexicon key found at byte offset Pos of a line.
type Token struct {
	Pos   int
	Key   string
	Value int
}

// Tokens returns every occurrence of every key in line, ordered by
// position. Keys are searched independently, so "eightwo" yields both
// "eight" and "two". Tokens starting at the same offset are ordered with
// the longer key first, then by key.
func (l Lexicon) Tokens(line string) []Token {
	var toks []Token
	for _, e := range l.entries {
		for off := 0; off < len(line); {
			i := strings.Index(line[off:], e.key)
			if i < 0 {
				break
			}
			toks = append(toks, Token{Pos: off + i, Key: e.key, Value: e.value})
			off += i + len(e.key)
		}
	}
	slices.SortFunc(toks, func(a, b Token) int {
		return cmp.Or(
			cmp.Compare(a.Pos, b.Pos),
			cmp.Compare(len(b.Key), len(a.Key)),
			strings.Compare(a.Key, b.Key),
		)
	})
	return toks
}

// Extract returns the calibration value of line: the first and last digit
// token concatenated. A line with a single token uses it twice.
func (l Lexicon) Extract(line string) (int, error) {
	toks := l.Tokens(line)
	if len(toks) == 0 {
		return 0, &aoc.ParseError{Input: line, Err: ErrNoDigitFound}
	}
	first, last := toks[0], toks[len(toks)-1]
	v, err := strconv.Atoi(strconv.Itoa(first.Value) + strconv.Itoa(last.Value))
	if err != nil {
		return 0, aoc.Errorf(line, "%w: joining %q and %q", ErrNotNumeric, first.Key, last.Key)
	}
	return v, nil
}

// Extract returns the calibration value of line using the Words lexicon.
func Extract(line string) (int, error) {
	return Words.Extract(line)
}

// The aoc2023 command solves the trebuchet calibration (day 1) and cube
// conundrum (day 2) puzzles of Advent of Code 2023.
package main

import (
	"cmp"
	"context"
	_ "embed"

	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/internal/calibration"
	"github.com/maisem/aoc2023/internal/cubes"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() (any, error) {
	return s.calibrate(calibration.Numerals)
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() (any, error) {
	return s.calibrate(calibration.Words)
}

func (s solver) calibrate(lex calibration.Lexicon) (int, error) {
	sum := 0
	err := s.ForLines(func(_ int, line string) error {
		v, err := lex.Extract(line)
		if err != nil {
			return err
		}
		s.Debugf("%s: %d", line, v)
		sum += v
		return nil
	})
	return sum, err
}

const defaultBag = "12 red, 13 green, 14 blue"

// bag is the bag games are checked against, overridable with --set bag=...
func (s solver) bag() (*cubes.Bag, error) {
	return cubes.ParseBag(cmp.Or(s.Setting("bag"), defaultBag))
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() (any, error) {
	bag, err := s.bag()
	if err != nil {
		return nil, err
	}
	sum := 0
	err = s.ForLines(func(_ int, line string) error {
		g, err := cubes.ParseGame(line)
		if err != nil {
			return err
		}
		ok := g.IsPlayable(bag)
		s.Debugf("game %d (%v): playable=%v", g.ID, g.Hash(), ok)
		if ok {
			sum += g.ID
		}
		return nil
	})
	return sum, err
}

// want=2286
func (s solver) D2p2() (any, error) {
	lines, err := s.Lines()
	if err != nil {
		return nil, err
	}
	powers, err := aoc.ParallelMap(s.Context(), lines, func(_ context.Context, line string) (int64, error) {
		g, err := cubes.ParseGame(line)
		if err != nil {
			return 0, err
		}
		return g.Power(), nil
	})
	if err != nil {
		return nil, err
	}
	return aoc.Sum(powers...), nil
}

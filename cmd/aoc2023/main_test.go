package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/internal/calibration"
	"github.com/maisem/aoc2023/internal/cubes"
)

const games = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func TestSamples(t *testing.T) {
	var out bytes.Buffer
	cmd := aoc.Command(2023, source, &solver{})
	cmd.SetArgs([]string{"--sample"})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v\n%s", err, out.String())
	}
	for _, want := range []string{
		"part 1 sample: 142 ✅",
		"part 2 sample: 281 ✅",
		"part 1 sample: 8 ✅",
		"part 2 sample: 2286 ✅",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestParts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		part  func(solver) (any, error)
		want  any
	}{
		{"D1p1", "1abc2\ntreb7uchet\n", solver.D1p1, 89},
		{"D1p2", "two1nine\nxtwone3four\n", solver.D1p2, 53},
		{"D2p1", games, solver.D2p1, 8},
		{"D2p2", games, solver.D2p2, int64(2286)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.part(solver{aoc.NewPuzzle(tt.input)})
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestPartErrors(t *testing.T) {
	_, err := solver{aoc.NewPuzzle("1abc2\nnothing\n")}.D1p2()
	if !errors.Is(err, calibration.ErrNoDigitFound) {
		t.Errorf("D1p2 error = %v, want ErrNoDigitFound", err)
	}
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("D1p2 error = %v, want line number", err)
	}

	_, err = solver{aoc.NewPuzzle("Game 1: 3 blue\nGame 2: 1 pink\n")}.D2p2()
	if !errors.Is(err, cubes.ErrUnknownColor) {
		t.Errorf("D2p2 error = %v, want ErrUnknownColor", err)
	}
}

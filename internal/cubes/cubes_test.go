package cubes

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/maisem/aoc2023"
)

func TestParseColor(t *testing.T) {
	for _, c := range []Color{Red, Green, Blue} {
		got, err := ParseColor(c.String())
		if err != nil || got != c {
			t.Errorf("ParseColor(%q) = %v, %v; want %v", c.String(), got, err, c)
		}
	}
	for _, s := range []string{"Red", "BLUE", "yellow", "", "reds"} {
		if _, err := ParseColor(s); !errors.Is(err, ErrUnknownColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrUnknownColor", s, err)
		}
	}
}

func TestCubeCompare(t *testing.T) {
	a := Cube{Color: Red, Count: 3}
	b := Cube{Color: Blue, Count: 3}
	c := Cube{Color: Red, Count: 4}
	if a.Compare(b) != 0 {
		t.Errorf("%v.Compare(%v) != 0", a, b)
	}
	if a.Compare(c) >= 0 || c.Compare(a) <= 0 {
		t.Errorf("%v and %v not ordered by count", a, c)
	}
}

func TestNewBag(t *testing.T) {
	b, err := NewBag(Cube{Red, 12}, Cube{Green, 13}, Cube{Blue, 14})
	if err != nil {
		t.Fatal(err)
	}
	want := []Cube{{Red, 12}, {Green, 13}, {Blue, 14}}
	if diff := cmp.Diff(want, b.Cubes()); diff != "" {
		t.Errorf("Cubes mismatch (-want +got):\n%s", diff)
	}

	bad := [][]Cube{
		{{Red, 1}, {Red, 2}},
		{{Green, -1}},
		{{Color(7), 1}},
	}
	for _, cubes := range bad {
		if _, err := NewBag(cubes...); err == nil {
			t.Errorf("NewBag(%v) succeeded, want error", cubes)
		}
	}
}

func TestParseBag(t *testing.T) {
	b, err := ParseBag("12 red, 13 green, 14 blue")
	if err != nil {
		t.Fatal(err)
	}
	want, _ := NewBag(Cube{Red, 12}, Cube{Green, 13}, Cube{Blue, 14})
	if diff := cmp.Diff(want.Cubes(), b.Cubes()); diff != "" {
		t.Errorf("ParseBag mismatch (-want +got):\n%s", diff)
	}
	if _, err := ParseBag("12 red, 1 red"); !errors.Is(err, ErrMalformedDraw) {
		t.Errorf("ParseBag duplicate error = %v, want ErrMalformedDraw", err)
	}
}

func TestSatisfies(t *testing.T) {
	b, _ := NewBag(Cube{Red, 12}, Cube{Green, 13})
	tests := []struct {
		d    Draw
		want bool
	}{
		{Draw{{Red, 12}}, true},
		{Draw{{Red, 12}, {Green, 13}}, true},
		{Draw{{Red, 13}}, false},
		{Draw{{Green, 0}, {Red, 0}}, true},
		{Draw{{Blue, 0}}, false},
		{Draw{}, false},
	}
	for _, tt := range tests {
		if got := b.Satisfies(tt.d); got != tt.want {
			t.Errorf("Satisfies(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestParseDraw(t *testing.T) {
	got, err := parseDraw(" 3 blue, 4  red ")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Draw{{Blue, 3}, {Red, 4}}, got); diff != "" {
		t.Errorf("parseDraw mismatch (-want +got):\n%s", diff)
	}

	tests := []struct {
		in   string
		want error
	}{
		{"", ErrMalformedDraw},
		{"3", ErrMalformedDraw},
		{"blue", ErrMalformedDraw},
		{"x blue", ErrMalformedDraw},
		{"-1 blue", ErrMalformedDraw},
		{"3 blue,", ErrMalformedDraw},
		{"3 blue, 4 blue", ErrMalformedDraw},
		{"3 purple", ErrUnknownColor},
		{"3 Blue", ErrUnknownColor},
	}
	for _, tt := range tests {
		if _, err := parseDraw(tt.in); !errors.Is(err, tt.want) {
			t.Errorf("parseDraw(%q) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func mustBag(t *testing.T) *Bag {
	t.Helper()
	return aoc.MustGet(NewBag(Cube{Red, 12}, Cube{Green, 13}, Cube{Blue, 14}))
}

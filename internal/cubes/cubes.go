// Package cubes evaluates records of colored cubes drawn from a bag.
package cubes

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/maisem/aoc2023"
)

var (
	// ErrMalformedRecord is returned for a game record without a ':'
	// separator or without an integer id.
	ErrMalformedRecord = errors.New("malformed game record")
	// ErrMalformedDraw is returned for a draw entry that is not a
	// "<count> <color>" pair.
	ErrMalformedDraw = errors.New("malformed draw")
	// ErrUnknownColor is returned for a color other than red, green or blue.
	ErrUnknownColor = errors.New("unknown color")
)

// Color is the color of a cube.
type Color int

const (
	Red Color = iota
	Green
	Blue

	numColors = iota
)

// ParseColor maps the literal spelling of a color to its Color.
func ParseColor(s string) (Color, error) {
	switch s {
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	case "blue":
		return Blue, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownColor, s)
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// Cube is a number of cubes of one color.
type Cube struct {
	Color Color
	Count int
}

func (c Cube) String() string {
	return fmt.Sprintf("%d %v", c.Count, c.Color)
}

// Compare orders cubes by count only.
func (c Cube) Compare(o Cube) int {
	return cmp.Compare(c.Count, o.Count)
}

// Draw is one handful of cubes, at most one Cube per color.
type Draw []Cube

func (d Draw) String() string {
	parts := make([]string, len(d))
	for i, c := range d {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

// parseDraw parses "<count> <color>, <count> <color>, ...". The count is
// the first whitespace-separated field of an entry and the color the last.
func parseDraw(s string) (Draw, error) {
	var seen [numColors]bool
	var d Draw
	for _, entry := range strings.Split(s, ",") {
		f := strings.Fields(entry)
		if len(f) < 2 {
			return nil, fmt.Errorf("%w: entry %q is not a count and a color", ErrMalformedDraw, strings.TrimSpace(entry))
		}
		n, err := strconv.Atoi(f[0])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: bad count %q", ErrMalformedDraw, f[0])
		}
		c, err := ParseColor(f[len(f)-1])
		if err != nil {
			return nil, err
		}
		if seen[c] {
			return nil, fmt.Errorf("%w: %v listed twice", ErrMalformedDraw, c)
		}
		seen[c] = true
		d = append(d, Cube{Color: c, Count: n})
	}
	return d, nil
}

// Bag holds the number of cubes available per color. A Bag is never
// modified after construction and may be shared by concurrent readers.
type Bag struct {
	cap [numColors]int
	has [numColors]bool
}

// NewBag returns a bag holding the given cubes. Each color may appear at
// most once.
func NewBag(cubes ...Cube) (*Bag, error) {
	b := new(Bag)
	for _, c := range cubes {
		if c.Color < 0 || c.Color >= numColors {
			return nil, fmt.Errorf("%w: %v", ErrUnknownColor, c.Color)
		}
		if c.Count < 0 {
			return nil, fmt.Errorf("negative capacity %d for %v", c.Count, c.Color)
		}
		if b.has[c.Color] {
			return nil, fmt.Errorf("duplicate capacity for %v", c.Color)
		}
		b.cap[c.Color] = c.Count
		b.has[c.Color] = true
	}
	return b, nil
}

// ParseBag parses a bag written like a draw, e.g. "12 red, 13 green, 14 blue".
func ParseBag(s string) (*Bag, error) {
	d, err := parseDraw(s)
	if err != nil {
		return nil, &aoc.ParseError{Input: s, Err: err}
	}
	return NewBag(d...)
}

// Capacity reports how many cubes of color c the bag holds, and whether
// the bag holds that color at all.
func (b *Bag) Capacity(c Color) (int, bool) {
	if c < 0 || c >= numColors {
		return 0, false
	}
	return b.cap[c], b.has[c]
}

// Cubes returns the contents of b in color order.
func (b *Bag) Cubes() []Cube {
	var out []Cube
	for c := Red; c < numColors; c++ {
		if n, ok := b.Capacity(c); ok {
			out = append(out, Cube{Color: c, Count: n})
		}
	}
	return out
}

// Satisfies reports whether every cube in d could have been drawn from b.
// An empty draw is never satisfied.
func (b *Bag) Satisfies(d Draw) bool {
	if len(d) == 0 {
		return false
	}
	for _, c := range d {
		n, ok := b.Capacity(c.Color)
		if !ok || c.Count > n {
			return false
		}
	}
	return true
}

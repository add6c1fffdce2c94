package cubes

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"tailscale.com/util/deephash"

	"github.com/maisem/aoc2023"
)

// Game is one parsed record: an id and the draws made during the game.
type Game struct {
	ID    int
	Draws []Draw
}

var idRx = regexp.MustCompile(`\d+`)

// ParseGame parses a record of the form
//
//	Game <id>: <draw>; <draw>; ...
//
// where each draw is "<count> <color>, <count> <color>, ...".
func ParseGame(line string) (*Game, error) {
	meta, body, ok := strings.Cut(line, ":")
	if !ok {
		return nil, aoc.Errorf(line, "%w: missing ':' separator", ErrMalformedRecord)
	}
	m := idRx.FindString(meta)
	if m == "" {
		return nil, aoc.Errorf(line, "%w: no id in %q", ErrMalformedRecord, meta)
	}
	id, err := strconv.Atoi(m)
	if err != nil {
		return nil, aoc.Errorf(line, "%w: id %q: %v", ErrMalformedRecord, m, err)
	}
	g := &Game{ID: id}
	for i, s := range strings.Split(body, ";") {
		d, err := parseDraw(s)
		if err != nil {
			return nil, aoc.Errorf(line, "draw %d: %w", i+1, err)
		}
		g.Draws = append(g.Draws, d)
	}
	return g, nil
}

func (g *Game) String() string {
	parts := make([]string, len(g.Draws))
	for i, d := range g.Draws {
		parts[i] = d.String()
	}
	return fmt.Sprintf("Game %d: %s", g.ID, strings.Join(parts, "; "))
}

// IsPlayable reports whether every draw of g could have come from bag.
// A game without draws is not playable.
func (g *Game) IsPlayable(bag *Bag) bool {
	if len(g.Draws) == 0 {
		return false
	}
	for _, d := range g.Draws {
		if !bag.Satisfies(d) {
			return false
		}
	}
	return true
}

// MinimumRequiredCubes returns, per color, the largest count drawn in any
// draw of g, which is the smallest bag that makes g playable. Colors that
// were never drawn are omitted. The result is in color order.
func (g *Game) MinimumRequiredCubes() []Cube {
	top := make(map[Color]Cube)
	for _, d := range g.Draws {
		for _, c := range d {
			if cur, ok := top[c.Color]; !ok || c.Compare(cur) > 0 {
				top[c.Color] = c
			}
		}
	}
	colors := slices.Sorted(maps.Keys(top))
	out := make([]Cube, 0, len(colors))
	for _, c := range colors {
		out = append(out, top[c])
	}
	return out
}

// Power is the product of the counts of MinimumRequiredCubes. It is 1 for
// a game that drew nothing.
func (g *Game) Power() int64 {
	p := int64(1)
	for _, c := range g.MinimumRequiredCubes() {
		p *= int64(c.Count)
	}
	return p
}

var hashGame = deephash.HasherForType[Game]()

// Hash returns a digest of the id and draws of g.
func (g *Game) Hash() deephash.Sum {
	return hashGame(g)
}

// Package aoc is a small harness for solving Advent of Code puzzles: it
// finds the solver methods of a struct, checks each against the sample
// embedded in its doc comment and then runs it on the real input.
// (forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"maps"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples found in the doc comments of the
// functions in src, keyed by function name. A sample without input reuses
// the input of the previous one.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// Puzzle is embedded by solvers and gives them access to the input of the
// part being solved.
type Puzzle struct {
	year       int
	day        int
	SampleMode bool

	ctx     context.Context
	cfg     *config
	log     *log.Logger
	solver  partSolver
	samples map[string]sample
	input   []byte // fixed input, for puzzles made by NewPuzzle
}

// NewPuzzle returns a Puzzle whose input is always input.
func NewPuzzle(input string) *Puzzle {
	return &Puzzle{
		ctx:   context.Background(),
		log:   log.Default(),
		input: []byte(input),
	}
}

// Context returns the context of the current run.
func (p *Puzzle) Context() context.Context {
	if p.ctx == nil {
		return context.Background()
	}
	return p.ctx
}

// Setting returns the value of a solver setting given with --set key=value
// or the AOC_<KEY> environment variable, or "" if unset.
func (p *Puzzle) Setting(key string) string {
	if p.cfg == nil {
		return ""
	}
	return p.cfg.setting(key)
}

// Input returns the input of the part being solved: its sample in sample
// mode, the day's puzzle input otherwise.
func (p *Puzzle) Input() ([]byte, error) {
	if p.input != nil {
		return p.input, nil
	}
	if p.SampleMode {
		s, err := p.Sample()
		if err != nil {
			return nil, err
		}
		return []byte(s.input), nil
	}
	return p.cfg.input(p.Context(), p.year, p.day)
}

// Lines returns the lines of the input.
func (p *Puzzle) Lines() ([]string, error) {
	var lines []string
	err := p.ForLines(func(_ int, line string) error {
		lines = append(lines, line)
		return nil
	})
	return lines, err
}

// ForLines calls onLine for each line of input.
// The y value is the row number, starting with 0. It stops at the first
// error, which is returned annotated with the line number.
func (p *Puzzle) ForLines(onLine func(y int, line string) error) error {
	in, err := p.Input()
	if err != nil {
		return err
	}
	s := bufio.NewScanner(bytes.NewReader(in))
	y := -1
	for s.Scan() {
		y++
		if err := onLine(y, s.Text()); err != nil {
			return fmt.Errorf("line %d: %w", y+1, err)
		}
	}
	return s.Err()
}

func (p *Puzzle) Debugf(format string, args ...any) {
	p.log.Debugf(format, args...)
}

func (p *Puzzle) Sample() (sample, error) {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		return sample, fmt.Errorf("no sample found for %v", p.solver.Name)
	}
	return sample, nil
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() (any, error)
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods collects the methods of the struct x points to that are
// named D{day}p{part}. The methods must have the signature
// func() (any, error).
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() (any, error))
		if !ok {
			return nil, fmt.Errorf("solver method %s: got %v; want func() (any, error)", mn, v.Method(i).Type())
		}
		d, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, fmt.Errorf("solver method %s: %w", mn, err)
		}
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

// errSampleMismatch is returned when a part disagrees with its sample.
var errSampleMismatch = errors.New("sample mismatch")

func (p *Puzzle) runDay(w io.Writer, d day) error {
	p.day = d.day
	fmt.Fprintln(w, "Running day", d.day)
	for _, ps := range d.parts {
		p.solver = ps
		if p.cfg.part != "" && ps.Part != p.cfg.part {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && p.cfg.onlySample {
				continue
			} else if sm && p.cfg.skipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				if _, err := p.Input(); err != nil {
					return err
				}
			}
			t0 := time.Now()
			got, err := ps.fn()
			if err != nil {
				return fmt.Errorf("day %d part %s (sample=%v): %w", d.day, ps.Part, sm, err)
			}
			if sm {
				sample, err := p.Sample()
				if err != nil {
					return err
				}
				if fmt.Sprint(got) != sample.want {
					fmt.Fprintf(w, "part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return fmt.Errorf("day %d part %s: %w", d.day, ps.Part, errSampleMismatch)
				}
				fmt.Fprintf(w, "part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Fprintf(w, "part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
	return nil
}

// Command returns the command that runs the solver methods of slvr, a
// pointer to a struct embedding *Puzzle. src is the source of the solver,
// from which samples are extracted.
func Command(year int, src []byte, slvr any) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "aoc",
		Short:         fmt.Sprintf("Solve Advent of Code %d puzzles", year),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
	}
	addFlags(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := newConfig(cmd.Flags())
		if err != nil {
			return err
		}
		logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "aoc"})
		if cfg.debug {
			logger.SetLevel(log.DebugLevel)
		}
		samples, err := extractSamples(src)
		if err != nil {
			return err
		}
		p := &Puzzle{
			year:    year,
			ctx:     cmd.Context(),
			cfg:     cfg,
			log:     logger,
			samples: samples,
		}
		sr := reflect.ValueOf(slvr)
		f := sr.Elem().FieldByName("Puzzle")
		if !f.IsValid() || f.Type() != reflect.TypeOf(p) {
			return fmt.Errorf("solver %T does not embed *aoc.Puzzle", slvr)
		}
		f.Set(reflect.ValueOf(p))
		days, err := extractMethods(slvr)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if cfg.day != -1 {
			d, ok := days[cfg.day]
			if !ok {
				return fmt.Errorf("no day %d", cfg.day)
			}
			return p.runDay(w, d)
		}

		for _, n := range slices.Sorted(maps.Keys(days)) {
			if err := p.runDay(w, days[n]); err != nil {
				return err
			}
			fmt.Fprintln(w)
		}
		return nil
	}
	return cmd
}

// Run runs the solver methods of slvr and exits the process on failure.
func Run(year int, src []byte, slvr any) {
	if err := Command(year, src, slvr).ExecuteContext(context.Background()); err != nil {
		log.Fatal("run failed", "err", err)
	}
}

package aoc

import "fmt"

// ParseError reports an input record that could not be interpreted.
// Err is one of the sentinel errors of the package that produced it.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Errorf returns a *ParseError for input wrapping err with extra detail.
// The format must contain a %w verb for err to remain matchable.
func Errorf(input string, format string, args ...any) error {
	return &ParseError{Input: input, Err: fmt.Errorf(format, args...)}
}

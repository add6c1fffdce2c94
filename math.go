package aoc

import (
	"context"
	"reflect"
	"runtime"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value of list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(&v).Elem().IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Fold reduces in to a single value, starting from defVal.
func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

// ParallelMap calls f on every element of in concurrently and returns the
// results in input order. If any call fails, the context passed to the
// others is canceled and the first error is returned.
func ParallelMap[I, O any](ctx context.Context, in []I, f func(context.Context, I) (O, error)) ([]O, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	out := make([]O, len(in))
	for i, v := range in {
		g.Go(func() error {
			o, err := f(ctx, v)
			if err != nil {
				return err
			}
			out[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ParallelMapFold maps in with f concurrently and folds the results with f2.
func ParallelMapFold[A, B, C any](ctx context.Context, in []A, f func(context.Context, A) (B, error), f2 func(C, B) C, defVal C) (C, error) {
	out, err := ParallelMap(ctx, in, f)
	if err != nil {
		return defVal, err
	}
	return Fold(out, f2, defVal), nil
}

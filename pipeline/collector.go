package pipeline

import (
	"context"
	"strings"
)

// Collector describes a mutable reduction: Supply creates an empty
// accumulator, Accumulate folds one value into it and Finish turns the
// accumulator into the result. All three must be set.
type Collector[T, A, R any] struct {
	Supply     func() A
	Accumulate func(A, T) A
	Finish     func(A) R
}

// CollectWith runs the pipeline through c.
func CollectWith[T, A, R any](ctx context.Context, p *Pipeline[T], c Collector[T, A, R]) (R, error) {
	acc := c.Supply()
	err := pull(ctx, p, func(v T) bool {
		acc = c.Accumulate(acc, v)
		return true
	})
	if err != nil {
		var zero R
		return zero, err
	}
	return c.Finish(acc), nil
}

// ToSlice collects values in order.
func ToSlice[T any]() Collector[T, []T, []T] {
	return Collector[T, []T, []T]{
		Supply:     func() []T { return make([]T, 0) },
		Accumulate: func(acc []T, v T) []T { return append(acc, v) },
		Finish:     func(acc []T) []T { return acc },
	}
}

// Counting counts values.
func Counting[T any]() Collector[T, int64, int64] {
	return Collector[T, int64, int64]{
		Supply:     func() int64 { return 0 },
		Accumulate: func(n int64, _ T) int64 { return n + 1 },
		Finish:     func(n int64) int64 { return n },
	}
}

// Summarizing computes the Summary of field.
func Summarizing[T any, N Number](field func(T) N) Collector[T, Summary[N], Summary[N]] {
	return Collector[T, Summary[N], Summary[N]]{
		Supply:     func() Summary[N] { return Summary[N]{} },
		Accumulate: func(s Summary[N], v T) Summary[N] { return s.add(field(v)) },
		Finish:     func(s Summary[N]) Summary[N] { return s },
	}
}

// Summing adds up field.
func Summing[T any, N Number](field func(T) N) Collector[T, Summary[N], N] {
	c := Summarizing[T](field)
	return Collector[T, Summary[N], N]{
		Supply:     c.Supply,
		Accumulate: c.Accumulate,
		Finish:     func(s Summary[N]) N { return s.Sum },
	}
}

// Averaging computes the mean of field, 0 for no values.
func Averaging[T any, N Number](field func(T) N) Collector[T, Summary[N], float64] {
	c := Summarizing[T](field)
	return Collector[T, Summary[N], float64]{
		Supply:     c.Supply,
		Accumulate: c.Accumulate,
		Finish:     func(s Summary[N]) float64 { return s.Average },
	}
}

// Mapping applies fn before handing values to downstream.
func Mapping[T, U, A, R any](fn func(T) U, downstream Collector[U, A, R]) Collector[T, A, R] {
	return Collector[T, A, R]{
		Supply:     downstream.Supply,
		Accumulate: func(acc A, v T) A { return downstream.Accumulate(acc, fn(v)) },
		Finish:     downstream.Finish,
	}
}

// Joining concatenates strings like Join.
func Joining(delimiter, prefix, suffix string) Collector[string, []string, string] {
	return Collector[string, []string, string]{
		Supply:     func() []string { return nil },
		Accumulate: func(acc []string, s string) []string { return append(acc, s) },
		Finish: func(acc []string) string {
			return prefix + strings.Join(acc, delimiter) + suffix
		},
	}
}

package pipeline

import (
	"context"
	"fmt"
)

// Integer is satisfied by every built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is satisfied by the built-in floating point types.
type Float interface {
	~float32 | ~float64
}

// Number is any integer or floating point type.
type Number interface {
	Integer | Float
}

// Identity returns v. Handy as the projection of numeric aggregates over
// pipelines that already carry numbers.
func Identity[T any](v T) T { return v }

// Summary is the count, sum, min, max and average of a numeric projection.
// The zero Summary describes an empty input.
type Summary[N Number] struct {
	Count   int64   `json:"count"`
	Sum     N       `json:"sum"`
	Min     N       `json:"min"`
	Max     N       `json:"max"`
	Average float64 `json:"average"`
}

func (s Summary[N]) add(v N) Summary[N] {
	if s.Count == 0 || v < s.Min {
		s.Min = v
	}
	if s.Count == 0 || v > s.Max {
		s.Max = v
	}
	s.Count++
	s.Sum += v
	s.Average = float64(s.Sum) / float64(s.Count)
	return s
}

// String renders the summary in one line.
func (s Summary[N]) String() string {
	return fmt.Sprintf("Summary{count=%d, sum=%v, min=%v, average=%f, max=%v}",
		s.Count, s.Sum, s.Min, s.Average, s.Max)
}

// Statistics computes the Summary of field over all values.
func Statistics[T any, N Number](ctx context.Context, p *Pipeline[T], field func(T) N) (Summary[N], error) {
	var s Summary[N]
	err := pull(ctx, p, func(v T) bool {
		s = s.add(field(v))
		return true
	})
	if err != nil {
		return Summary[N]{}, err
	}
	return s, nil
}

// Sum adds up field over all values. Empty input sums to 0.
func Sum[T any, N Number](ctx context.Context, p *Pipeline[T], field func(T) N) (N, error) {
	s, err := Statistics(ctx, p, field)
	return s.Sum, err
}

// Average is the arithmetic mean of field. Empty input averages to 0.
func Average[T any, N Number](ctx context.Context, p *Pipeline[T], field func(T) N) (float64, error) {
	s, err := Statistics(ctx, p, field)
	return s.Average, err
}

// MinOf is the smallest field value. Empty input yields 0, not an absent result.
func MinOf[T any, N Number](ctx context.Context, p *Pipeline[T], field func(T) N) (N, error) {
	s, err := Statistics(ctx, p, field)
	return s.Min, err
}

// MaxOf is the largest field value. Empty input yields 0, not an absent result.
func MaxOf[T any, N Number](ctx context.Context, p *Pipeline[T], field func(T) N) (N, error) {
	s, err := Statistics(ctx, p, field)
	return s.Max, err
}

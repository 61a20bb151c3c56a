package pipeline

import "context"

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Pipeline represents a lazy, pull-based query over a sequence of values.
// No work happens until a terminal (Collect, Drain, Count, GroupBy, ...) pulls.
// A Pipeline can be run any number of times; every run creates fresh iterators.
type Pipeline[T any] struct {
	create func(ctx context.Context) Iterator[T]
}

// Runnable is a fully-configured pipeline ready to execute.
type Runnable struct {
	run func(ctx context.Context) error
}

// Run executes the pipeline until completion or context cancellation.
func (r *Runnable) Run(ctx context.Context) error {
	return r.run(ctx)
}

// --- Constructors ---

// From creates a pipeline from an existing Iterator.
// The iterator is consumed by the first run.
func From[T any](iter Iterator[T]) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(_ context.Context) Iterator[T] {
			return iter
		},
	}
}

// FromSlice creates a pipeline from a slice of values.
// The slice is read, never written.
func FromSlice[T any](items []T) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(_ context.Context) Iterator[T] {
			return &sliceIter[T]{items: items}
		},
	}
}

// Of creates a pipeline from the given values.
func Of[T any](values ...T) *Pipeline[T] {
	return FromSlice(values)
}

// FromFunc creates a pipeline from a factory that produces an Iterator.
func FromFunc[T any](fn func(ctx context.Context) Iterator[T]) *Pipeline[T] {
	return &Pipeline[T]{create: fn}
}

// Range yields start, start+1, ..., end-1. Empty when start >= end.
func Range[N Integer](start, end N) *Pipeline[N] {
	return FromFunc(func(_ context.Context) Iterator[N] {
		return &rangeIter[N]{next: start, end: end, done: start >= end}
	})
}

// RangeClosed yields start, start+1, ..., end. Empty when start > end.
func RangeClosed[N Integer](start, end N) *Pipeline[N] {
	return FromFunc(func(_ context.Context) Iterator[N] {
		return &rangeIter[N]{next: start, end: end, closed: true, done: start > end}
	})
}

// Iterate yields seed, next(seed), next(next(seed)), ... without end.
// Bound it with Limit or a short-circuiting terminal such as FindFirst.
func Iterate[T any](seed T, next func(T) T) *Pipeline[T] {
	return FromFunc(func(_ context.Context) Iterator[T] {
		return &iterateIter[T]{current: seed, next: next}
	})
}

// --- Terminals ---

// Drain creates a Runnable that pulls all values and sends each to sink.
func Drain[T any](p *Pipeline[T], sink func(context.Context, T) error) *Runnable {
	return &Runnable{
		run: func(ctx context.Context) error {
			iter := p.create(ctx)
			defer iter.Close()
			for {
				val, ok, err := iter.Next(ctx)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				if err := sink(ctx, val); err != nil {
					return err
				}
			}
		},
	}
}

// Collect runs the pipeline and returns all values as a slice.
// On error the values pulled so far are returned alongside it.
func Collect[T any](ctx context.Context, p *Pipeline[T]) ([]T, error) {
	iter := p.create(ctx)
	defer iter.Close()
	result := make([]T, 0)
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// ForEach pulls all values and calls fn for each. Convenience wrapper around Drain.
func ForEach[T any](ctx context.Context, p *Pipeline[T], fn func(context.Context, T) error) error {
	return Drain(p, fn).Run(ctx)
}

// Iter returns the raw Iterator for this pipeline. The caller must Close() it.
func (p *Pipeline[T]) Iter(ctx context.Context) Iterator[T] {
	return p.create(ctx)
}

// pull feeds values to fn until fn returns false or the source is exhausted.
func pull[T any](ctx context.Context, p *Pipeline[T], fn func(T) bool) error {
	iter := p.create(ctx)
	defer iter.Close()
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return err
		}
		if !ok || !fn(val) {
			return nil
		}
	}
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(ctx context.Context) (T, bool, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

type rangeIter[N Integer] struct {
	next   N
	end    N
	closed bool
	done   bool
}

func (it *rangeIter[N]) Next(ctx context.Context) (N, bool, error) {
	if err := ctx.Err(); err != nil {
		var zero N
		return zero, false, err
	}
	if it.done {
		var zero N
		return zero, false, nil
	}
	val := it.next
	switch {
	case it.closed && val == it.end:
		it.done = true
	case !it.closed && val+1 >= it.end:
		it.done = true
	default:
		it.next++
	}
	return val, true, nil
}

func (it *rangeIter[N]) Close() error { return nil }

type iterateIter[T any] struct {
	current T
	next    func(T) T
	started bool
}

func (it *iterateIter[T]) Next(ctx context.Context) (T, bool, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	if it.started {
		it.current = it.next(it.current)
	}
	it.started = true
	return it.current, true, nil
}

func (it *iterateIter[T]) Close() error { return nil }

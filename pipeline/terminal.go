package pipeline

import (
	"context"
	"strings"
)

// FindFirst returns the first value. ok is false when the pipeline is empty.
// Only one value is pulled from the source.
func FindFirst[T any](ctx context.Context, p *Pipeline[T]) (T, bool, error) {
	iter := p.create(ctx)
	defer iter.Close()
	return iter.Next(ctx)
}

// FindAny returns some value of the pipeline. Evaluation is sequential, so
// this is always the first one.
func FindAny[T any](ctx context.Context, p *Pipeline[T]) (T, bool, error) {
	return FindFirst(ctx, p)
}

// Count returns the number of values.
func Count[T any](ctx context.Context, p *Pipeline[T]) (int64, error) {
	var n int64
	err := pull(ctx, p, func(T) bool {
		n++
		return true
	})
	return n, err
}

// CountWhere returns the number of values satisfying predicate.
func CountWhere[T any](ctx context.Context, p *Pipeline[T], predicate func(T) bool) (int64, error) {
	return Count(ctx, Filter(p, predicate))
}

// AnyMatch reports whether some value satisfies predicate. Stops at the first match.
func AnyMatch[T any](ctx context.Context, p *Pipeline[T], predicate func(T) bool) (bool, error) {
	_, found, err := FindFirst(ctx, Filter(p, predicate))
	return found, err
}

// AllMatch reports whether every value satisfies predicate. True for an empty pipeline.
func AllMatch[T any](ctx context.Context, p *Pipeline[T], predicate func(T) bool) (bool, error) {
	found, err := AnyMatch(ctx, p, func(v T) bool { return !predicate(v) })
	return !found, err
}

// NoneMatch reports whether no value satisfies predicate. True for an empty pipeline.
func NoneMatch[T any](ctx context.Context, p *Pipeline[T], predicate func(T) bool) (bool, error) {
	found, err := AnyMatch(ctx, p, predicate)
	return !found, err
}

// Fold reduces the pipeline left to right starting from identity.
// An empty pipeline folds to identity.
func Fold[T, R any](ctx context.Context, p *Pipeline[T], identity R, fn func(R, T) R) (R, error) {
	acc := identity
	err := pull(ctx, p, func(v T) bool {
		acc = fn(acc, v)
		return true
	})
	if err != nil {
		var zero R
		return zero, err
	}
	return acc, nil
}

// FoldFirst reduces the pipeline using its first value as the seed.
// ok is false when the pipeline is empty.
func FoldFirst[T any](ctx context.Context, p *Pipeline[T], fn func(T, T) T) (T, bool, error) {
	var acc T
	seeded := false
	err := pull(ctx, p, func(v T) bool {
		if !seeded {
			acc, seeded = v, true
			return true
		}
		acc = fn(acc, v)
		return true
	})
	if err != nil || !seeded {
		var zero T
		return zero, false, err
	}
	return acc, true, nil
}

// Min returns the smallest value according to cmp. The first of several
// equal minima wins. ok is false when the pipeline is empty.
func Min[T any](ctx context.Context, p *Pipeline[T], cmp func(a, b T) int) (T, bool, error) {
	return FoldFirst(ctx, p, func(acc, v T) T {
		if cmp(v, acc) < 0 {
			return v
		}
		return acc
	})
}

// Max returns the largest value according to cmp. The first of several
// equal maxima wins. ok is false when the pipeline is empty.
func Max[T any](ctx context.Context, p *Pipeline[T], cmp func(a, b T) int) (T, bool, error) {
	return FoldFirst(ctx, p, func(acc, v T) T {
		if cmp(v, acc) > 0 {
			return v
		}
		return acc
	})
}

// Join concatenates the values with delimiter between them and wraps the
// result in prefix and suffix. An empty pipeline yields prefix+suffix.
func Join(ctx context.Context, p *Pipeline[string], delimiter, prefix, suffix string) (string, error) {
	var b strings.Builder
	b.WriteString(prefix)
	first := true
	err := pull(ctx, p, func(s string) bool {
		if !first {
			b.WriteString(delimiter)
		}
		first = false
		b.WriteString(s)
		return true
	})
	if err != nil {
		return "", err
	}
	b.WriteString(suffix)
	return b.String(), nil
}

// ToSet collects the distinct values into a set.
func ToSet[T comparable](ctx context.Context, p *Pipeline[T]) (map[T]struct{}, error) {
	set := make(map[T]struct{})
	err := pull(ctx, p, func(v T) bool {
		set[v] = struct{}{}
		return true
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

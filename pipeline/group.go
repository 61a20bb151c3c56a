package pipeline

import (
	"context"
	"iter"
)

// Groups maps keys to values and remembers the order in which keys were
// first seen.
type Groups[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// Len returns the number of groups.
func (g *Groups[K, V]) Len() int { return len(g.keys) }

// Keys returns the keys in first-occurrence order.
func (g *Groups[K, V]) Keys() []K {
	keys := make([]K, len(g.keys))
	copy(keys, g.keys)
	return keys
}

// Get returns the value for key.
func (g *Groups[K, V]) Get(key K) (V, bool) {
	v, ok := g.values[key]
	return v, ok
}

// All iterates over the groups in key order.
func (g *Groups[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range g.keys {
			if !yield(k, g.values[k]) {
				return
			}
		}
	}
}

// GroupBy partitions the values by key. Each group keeps its members in
// source order.
func GroupBy[T any, K comparable](ctx context.Context, p *Pipeline[T], key func(T) K) (*Groups[K, []T], error) {
	return GroupingBy(ctx, p, key, ToSlice[T]())
}

// GroupingBy partitions the values by key and reduces each group with c.
func GroupingBy[T any, K comparable, A, R any](ctx context.Context, p *Pipeline[T], key func(T) K, c Collector[T, A, R]) (*Groups[K, R], error) {
	var order []K
	accs := make(map[K]A)
	err := pull(ctx, p, func(v T) bool {
		k := key(v)
		acc, ok := accs[k]
		if !ok {
			acc = c.Supply()
			order = append(order, k)
		}
		accs[k] = c.Accumulate(acc, v)
		return true
	})
	if err != nil {
		return nil, err
	}

	g := &Groups[K, R]{keys: order, values: make(map[K]R, len(order))}
	for _, k := range order {
		g.values[k] = c.Finish(accs[k])
	}
	return g, nil
}

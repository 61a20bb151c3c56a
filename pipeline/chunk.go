package pipeline

import "context"

// Chunk groups consecutive values into slices of size values.
// The last slice holds the remainder and may be shorter.
// size <= 0 is treated as size=1.
func Chunk[T any](p *Pipeline[T], size int) *Pipeline[[]T] {
	if size <= 0 {
		size = 1
	}
	return &Pipeline[[]T]{
		create: func(ctx context.Context) Iterator[[]T] {
			return &chunkIter[T]{source: p.create(ctx), size: size}
		},
	}
}

type chunkIter[T any] struct {
	source  Iterator[T]
	size    int
	pending error
	done    bool
}

func (it *chunkIter[T]) Next(ctx context.Context) (result []T, ok bool, err error) {
	if it.pending != nil {
		err, it.pending = it.pending, nil
		it.done = true
		return nil, false, err
	}
	if it.done {
		return nil, false, nil
	}

	chunk := make([]T, 0, it.size)
	for len(chunk) < it.size {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			if len(chunk) > 0 {
				// Return the partial chunk; the error surfaces on the next call.
				it.pending = err
				return chunk, true, nil
			}
			return nil, false, err
		}
		if !ok {
			it.done = true
			if len(chunk) > 0 {
				return chunk, true, nil
			}
			return nil, false, nil
		}
		chunk = append(chunk, val)
	}
	return chunk, true, nil
}

func (it *chunkIter[T]) Close() error { return it.source.Close() }

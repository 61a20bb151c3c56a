package demo

import (
	"context"

	"github.com/kbukum/gostreams/fixtures"
	"github.com/kbukum/gostreams/pipeline"
)

// Lecture 6: short-circuit searches with a fallback.
func searchCases() []Case {
	return []Case{
		{
			Name:        "find-any",
			Lecture:     6,
			Description: "Any reference number greater than 10, or 0",
			Run:         findAny,
		},
		{
			Name:        "find-first",
			Lecture:     6,
			Description: "First reference number greater than 52, or 0",
			Run:         findFirst,
		},
	}
}

func greaterThan(n int) func(int) bool {
	return func(v int) bool { return v > n }
}

func findAny(ctx context.Context, _ *fixtures.Dataset) (*Result, error) {
	v, err := orElse(0)(pipeline.FindAny(ctx, pipeline.Filter(pipeline.FromSlice(searchNumbers), greaterThan(10))))
	if err != nil {
		return nil, err
	}
	return single("any > 10", v), nil
}

func findFirst(ctx context.Context, _ *fixtures.Dataset) (*Result, error) {
	v, err := orElse(0)(pipeline.FindFirst(ctx, pipeline.Filter(pipeline.FromSlice(searchNumbers), greaterThan(52))))
	if err != nil {
		return nil, err
	}
	return single("first > 52", v), nil
}

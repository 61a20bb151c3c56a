package demo

import (
	"cmp"
	"context"
	"maps"
	"slices"

	"github.com/kbukum/gostreams/fixtures"
	"github.com/kbukum/gostreams/pipeline"
)

// Lectures 3 and 4: comparator-based min and max, and duplicate removal.
func orderingCases() []Case {
	return []Case{
		{
			Name:        "min",
			Lecture:     3,
			Description: "Smallest of the reference numbers in natural order",
			Run:         minDemo,
		},
		{
			Name:        "max",
			Lecture:     3,
			Description: "Largest of the reference numbers in natural order",
			Run:         maxDemo,
		},
		{
			Name:        "distinct",
			Lecture:     4,
			Description: "Reference numbers without duplicates, first occurrences in order",
			Run:         distinctDemo,
		},
		{
			Name:        "distinct-with-set",
			Lecture:     4,
			Description: "Reference numbers collected into a set, shown sorted",
			Run:         distinctWithSet,
		},
	}
}

func minDemo(ctx context.Context, _ *fixtures.Dataset) (*Result, error) {
	v, err := required(pipeline.Min(ctx, pipeline.FromSlice(referenceNumbers), cmp.Compare[int]))
	if err != nil {
		return nil, err
	}
	return single("min", v), nil
}

func maxDemo(ctx context.Context, _ *fixtures.Dataset) (*Result, error) {
	v, err := required(pipeline.Max(ctx, pipeline.FromSlice(referenceNumbers), cmp.Compare[int]))
	if err != nil {
		return nil, err
	}
	return single("max", v), nil
}

func distinctDemo(ctx context.Context, _ *fixtures.Dataset) (*Result, error) {
	out, err := pipeline.Collect(ctx, pipeline.Distinct(pipeline.FromSlice(referenceNumbers)))
	if err != nil {
		return nil, err
	}
	return new(Result).Add("distinct", values(out)...), nil
}

func distinctWithSet(ctx context.Context, _ *fixtures.Dataset) (*Result, error) {
	set, err := pipeline.ToSet(ctx, pipeline.FromSlice(referenceNumbers))
	if err != nil {
		return nil, err
	}
	return new(Result).Add("set", values(slices.Sorted(maps.Keys(set)))...), nil
}

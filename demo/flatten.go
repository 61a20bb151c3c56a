package demo

import (
	"context"

	"github.com/kbukum/gostreams/fixtures"
	"github.com/kbukum/gostreams/pipeline"
)

// Lecture 10: flattening nested lists.
func flattenCases() []Case {
	return []Case{
		{
			Name:        "without-flat-map",
			Lecture:     10,
			Description: "Nested word lists flattened with two loops",
			Run:         withoutFlatMap,
		},
		{
			Name:        "with-flat-map",
			Lecture:     10,
			Description: "Nested word lists flattened with FlatMapSlice",
			Run:         withFlatMap,
		},
	}
}

func withoutFlatMap(ctx context.Context, _ *fixtures.Dataset) (*Result, error) {
	var flat []string
	for _, words := range nestedWords {
		if err := checkCanceled(ctx); err != nil {
			return nil, err
		}
		for _, w := range words {
			flat = append(flat, w)
		}
	}
	return new(Result).
		Add("lists", values(nestedWords)...).
		Add("flattened", values(flat)...), nil
}

func withFlatMap(ctx context.Context, _ *fixtures.Dataset) (*Result, error) {
	flat, err := pipeline.Collect(ctx, pipeline.FlatMapSlice(pipeline.FromSlice(nestedWords), pipeline.Identity[[]string]))
	if err != nil {
		return nil, err
	}
	return new(Result).
		Add("lists", values(nestedWords)...).
		Add("flattened", values(flat)...), nil
}

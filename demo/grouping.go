package demo

import (
	"context"

	"github.com/kbukum/gostreams/fixtures"
	"github.com/kbukum/gostreams/model"
	"github.com/kbukum/gostreams/pipeline"
)

// Lectures 8 and 9: grouping and reduction.
func groupingCases() []Case {
	return []Case{
		{
			Name:        "simple-grouping",
			Lecture:     8,
			Description: "Cars grouped by make, makes in order of first appearance",
			Run:         simpleGrouping,
		},
		{
			Name:        "grouping-and-counting",
			Lecture:     8,
			Description: "Occurrences of each name in a fixed list",
			Run:         groupingAndCounting,
		},
		{
			Name:        "reduce",
			Lecture:     9,
			Description: "Sum, min and max of the search numbers by folding",
			Run:         reduceDemo,
		},
	}
}

func simpleGrouping(ctx context.Context, ds *fixtures.Dataset) (*Result, error) {
	groups, err := pipeline.GroupBy(ctx, pipeline.FromSlice(ds.Cars), model.CarMake)
	if err != nil {
		return nil, err
	}
	res := new(Result)
	for mk, cars := range groups.All() {
		res.Add(mk, values(cars)...)
	}
	return res, nil
}

func groupingAndCounting(ctx context.Context, _ *fixtures.Dataset) (*Result, error) {
	counts, err := pipeline.GroupingBy(ctx, pipeline.FromSlice(groupNames), pipeline.Identity[string], pipeline.Counting[string]())
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, counts.Len())
	for name, n := range counts.All() {
		entries = append(entries, Entry{Key: name, Value: n})
	}
	return new(Result).Add("counts", values(entries)...), nil
}

func add(a, b int) int { return a + b }

func reduceDemo(ctx context.Context, _ *fixtures.Dataset) (*Result, error) {
	src := func() *pipeline.Pipeline[int] { return pipeline.FromSlice(searchNumbers) }

	sum, err := pipeline.Fold(ctx, src(), 0, add)
	if err != nil {
		return nil, err
	}
	sum2, err := orElse(0)(pipeline.FindFirst(ctx, pipeline.Reduce(src(), 0, add)))
	if err != nil {
		return nil, err
	}
	sum3, err := pipeline.Sum(ctx, src(), pipeline.Identity[int])
	if err != nil {
		return nil, err
	}
	sum4, err := pipeline.CollectWith(ctx, src(), pipeline.Summing(pipeline.Identity[int]))
	if err != nil {
		return nil, err
	}
	lo, err := required(pipeline.FoldFirst(ctx, src(), func(a, b int) int { return min(a, b) }))
	if err != nil {
		return nil, err
	}
	hi, err := required(pipeline.FoldFirst(ctx, src(), func(a, b int) int { return max(a, b) }))
	if err != nil {
		return nil, err
	}

	return new(Result).
		Add("sum", sum).
		Add("sum2", sum2).
		Add("sum3", sum3).
		Add("sum4", sum4).
		Add("min", lo).
		Add("max", hi), nil
}

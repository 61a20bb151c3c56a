package demo

import (
	"context"

	"github.com/kbukum/gostreams/fixtures"
	"github.com/kbukum/gostreams/model"
	"github.com/kbukum/gostreams/pipeline"
)

// Lecture 2: integer ranges and infinite sources.
func sourceCases() []Case {
	return []Case{
		{
			Name:        "range",
			Lecture:     2,
			Description: "0..9 with a for loop, then Range(0, 10) and RangeClosed(0, 10)",
			Run:         rangeDemo,
		},
		{
			Name:        "range-iterating-lists",
			Lecture:     2,
			Description: "Every person, visited by index through Range",
			Run:         rangeIteratingLists,
		},
		{
			Name:        "int-stream-iterate",
			Lecture:     2,
			Description: "First 20 even numbers of the infinite sequence 0, 1, 2, ...",
			Run:         intStreamIterate,
		},
	}
}

func rangeDemo(ctx context.Context, _ *fixtures.Dataset) (*Result, error) {
	loop := make([]int, 0, 10)
	for i := 0; i < 10; i++ {
		loop = append(loop, i)
	}

	exclusive, err := pipeline.Collect(ctx, pipeline.Range(0, 10))
	if err != nil {
		return nil, err
	}
	inclusive, err := pipeline.Collect(ctx, pipeline.RangeClosed(0, 10))
	if err != nil {
		return nil, err
	}

	return new(Result).
		Add("for loop", values(loop)...).
		Add("exclusive", values(exclusive)...).
		Add("inclusive", values(inclusive)...), nil
}

func rangeIteratingLists(ctx context.Context, ds *fixtures.Dataset) (*Result, error) {
	people, err := pipeline.Collect(ctx, pipeline.MapValue(
		pipeline.Range(0, len(ds.People)),
		func(i int) model.Person { return ds.People[i] },
	))
	if err != nil {
		return nil, err
	}
	return new(Result).Add("people", values(people)...), nil
}

func intStreamIterate(ctx context.Context, _ *fixtures.Dataset) (*Result, error) {
	naturals := pipeline.Iterate(0, func(n int) int { return n + 1 })
	even := pipeline.Filter(naturals, func(n int) bool { return n%2 == 0 })

	out, err := pipeline.Collect(ctx, pipeline.Limit(even, 20))
	if err != nil {
		return nil, err
	}
	return new(Result).Add("even numbers", values(out)...), nil
}

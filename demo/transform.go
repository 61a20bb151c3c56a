package demo

import (
	"context"

	"github.com/kbukum/gostreams/fixtures"
	"github.com/kbukum/gostreams/model"
	"github.com/kbukum/gostreams/pipeline"
)

const cheapCarPrice = 20000

// Lecture 5: filter, map and a numeric average.
func transformCases() []Case {
	return []Case{
		{
			Name:        "understanding-filter",
			Lecture:     5,
			Description: "Cars priced at 20000 or less",
			Run:         understandingFilter,
		},
		{
			Name:        "out-first-mapping",
			Lecture:     5,
			Description: "Every person projected onto a PersonDTO",
			Run:         outFirstMapping,
		},
		{
			Name:        "average-car-price",
			Lecture:     5,
			Description: "Average price over all cars",
			Run:         averageCarPrice,
		},
	}
}

func understandingFilter(ctx context.Context, ds *fixtures.Dataset) (*Result, error) {
	cheap, err := pipeline.Collect(ctx, pipeline.Filter(pipeline.FromSlice(ds.Cars), model.PriceAtMost(cheapCarPrice)))
	if err != nil {
		return nil, err
	}
	return new(Result).Add("cheap cars", values(cheap)...), nil
}

func outFirstMapping(ctx context.Context, ds *fixtures.Dataset) (*Result, error) {
	dtos, err := pipeline.Collect(ctx, pipeline.MapValue(pipeline.FromSlice(ds.People), model.ToDTO))
	if err != nil {
		return nil, err
	}
	return new(Result).Add("people", values(dtos)...), nil
}

func averageCarPrice(ctx context.Context, ds *fixtures.Dataset) (*Result, error) {
	avg, err := pipeline.Average(ctx, pipeline.FromSlice(ds.Cars), model.CarPrice)
	if err != nil {
		return nil, err
	}
	return single("average price", avg), nil
}

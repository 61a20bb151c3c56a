package demo

import (
	"context"
	"fmt"
	"math"

	"github.com/kbukum/gostreams/fixtures"
	"github.com/kbukum/gostreams/model"
	"github.com/kbukum/gostreams/pipeline"
)

// Lecture 7: counting and numeric aggregates.
func aggregateCases() []Case {
	return []Case{
		{
			Name:        "count",
			Lecture:     7,
			Description: "Number of male people, gender compared case-insensitively",
			Run:         countMales,
		},
		{
			Name:        "min-without-comparator",
			Lecture:     7,
			Description: "Cheapest yellow car price, 0 when there is none",
			Run:         minYellowPrice,
		},
		{
			Name:        "max-without-comparator",
			Lecture:     7,
			Description: "Most expensive yellow car price, 0 when there is none",
			Run:         maxYellowPrice,
		},
		{
			Name:        "average-age",
			Lecture:     7,
			Description: "Average age of female people, 0 when there is none",
			Run:         averageFemaleAge,
		},
		{
			Name:        "sum",
			Lecture:     7,
			Description: "Sum of all car prices as a float and as an exact decimal",
			Run:         sumPrices,
		},
		{
			Name:        "statistics",
			Lecture:     7,
			Description: "Count, sum, min, average and max of car prices",
			Run:         priceStatistics,
		},
	}
}

func countMales(ctx context.Context, ds *fixtures.Dataset) (*Result, error) {
	n, err := pipeline.CountWhere(ctx, pipeline.FromSlice(ds.People), model.GenderIs("male"))
	if err != nil {
		return nil, err
	}
	return single("males", n), nil
}

func yellowCars(ds *fixtures.Dataset) *pipeline.Pipeline[model.Car] {
	return pipeline.Filter(pipeline.FromSlice(ds.Cars), model.ColorIs("yellow"))
}

func minYellowPrice(ctx context.Context, ds *fixtures.Dataset) (*Result, error) {
	v, err := pipeline.MinOf(ctx, yellowCars(ds), model.CarPrice)
	if err != nil {
		return nil, err
	}
	return single("min yellow price", v), nil
}

func maxYellowPrice(ctx context.Context, ds *fixtures.Dataset) (*Result, error) {
	v, err := pipeline.MaxOf(ctx, yellowCars(ds), model.CarPrice)
	if err != nil {
		return nil, err
	}
	return single("max yellow price", v), nil
}

func averageFemaleAge(ctx context.Context, ds *fixtures.Dataset) (*Result, error) {
	females := pipeline.Filter(pipeline.FromSlice(ds.People), model.GenderIs("female"))
	v, err := pipeline.Average(ctx, females, model.PersonAge)
	if err != nil {
		return nil, err
	}
	return single("average female age", v), nil
}

func priceCents(c model.Car) int64 { return int64(math.Round(c.Price * 100)) }

// formatCents renders an amount of cents with exactly two decimals.
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign, cents = "-", -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

func sumPrices(ctx context.Context, ds *fixtures.Dataset) (*Result, error) {
	total, err := pipeline.Sum(ctx, pipeline.FromSlice(ds.Cars), model.CarPrice)
	if err != nil {
		return nil, err
	}
	cents, err := pipeline.Sum(ctx, pipeline.FromSlice(ds.Cars), priceCents)
	if err != nil {
		return nil, err
	}
	return new(Result).
		Add("sum", total).
		Add("exact sum", formatCents(cents)), nil
}

func priceStatistics(ctx context.Context, ds *fixtures.Dataset) (*Result, error) {
	s, err := pipeline.Statistics(ctx, pipeline.FromSlice(ds.Cars), model.CarPrice)
	if err != nil {
		return nil, err
	}
	return new(Result).
		Add("statistics", s).
		Add("count", s.Count).
		Add("min", s.Min).
		Add("max", s.Max).
		Add("average", s.Average).
		Add("sum", s.Sum), nil
}

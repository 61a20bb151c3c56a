package demo

import (
	"context"

	"github.com/kbukum/gostreams/fixtures"
	"github.com/kbukum/gostreams/model"
	"github.com/kbukum/gostreams/pipeline"
)

const (
	adultAge   = 18
	youngLimit = 20
)

// Lecture 1: the same query written as a loop and as a pipeline.
func introCases() []Case {
	return []Case{
		{
			Name:        "imperative-approach",
			Lecture:     1,
			Description: "People aged 18 or younger, at most 20, with a hand-written loop",
			Run:         imperativeApproach,
		},
		{
			Name:        "declarative-approach",
			Lecture:     1,
			Description: "People aged 18 or younger, at most 20, with Filter and Limit",
			Run:         declarativeApproach,
		},
	}
}

func imperativeApproach(ctx context.Context, ds *fixtures.Dataset) (*Result, error) {
	var young []model.Person
	for _, p := range ds.People {
		if err := checkCanceled(ctx); err != nil {
			return nil, err
		}
		if p.Age <= adultAge {
			young = append(young, p)
			if len(young) == youngLimit {
				break
			}
		}
	}
	return new(Result).Add("young people", values(young)...), nil
}

func declarativeApproach(ctx context.Context, ds *fixtures.Dataset) (*Result, error) {
	young, err := pipeline.Collect(ctx, pipeline.Limit(
		pipeline.Filter(pipeline.FromSlice(ds.People), model.AgeAtMost(adultAge)),
		youngLimit,
	))
	if err != nil {
		return nil, err
	}
	return new(Result).Add("young people", values(young)...), nil
}

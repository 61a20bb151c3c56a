package demo

import (
	"context"
	"slices"

	"github.com/kbukum/gostreams/errors"
)

// Catalog returns a registry holding every built-in demonstration, ordered
// by lecture.
func Catalog() *Registry {
	return NewRegistry().MustRegister(slices.Concat(
		introCases(),
		sourceCases(),
		orderingCases(),
		transformCases(),
		searchCases(),
		aggregateCases(),
		groupingCases(),
		flattenCases(),
		joinCases(),
	)...)
}

// Inputs shared by the cases that do not read the fixtures.
var (
	referenceNumbers = []int{4, 65, 3, 44, 6, 74, 5, 3, 45, 4, 43, 15, 96, 563, 10, 74}
	searchNumbers    = []int{52, 46, 45, 63, 215, 43, 22, 39, 12, 89, 124, 986, 215, 723, 17, 9, 67}
	groupNames       = []string{"Remon", "Tomon", "Tonu", "Remon", "Mariam", "Nusaibah", "Muhammad", "Muhammad", "Muhammad"}
	numberWords      = []string{"one", "two", "three", "four", "five", "six", "seven"}
	nestedWords      = [][]string{
		{"one", "two", "three"},
		{"four", "five", "six"},
		{"seven", "eight", "nine"},
	}
)

// required unwraps an absent-or-value result for inputs that are never empty.
func required[T any](v T, ok bool, err error) (T, error) {
	if err != nil {
		return v, err
	}
	if !ok {
		return v, errors.New(errors.ErrCodeInternal, "no value in a non-empty input")
	}
	return v, nil
}

// orElse substitutes fallback for an absent result:
//
//	v, err := orElse(0)(pipeline.FindFirst(ctx, p))
func orElse[T any](fallback T) func(T, bool, error) (T, error) {
	return func(v T, ok bool, err error) (T, error) {
		if err != nil || ok {
			return v, err
		}
		return fallback, nil
	}
}

// single wraps one scalar in a Result.
func single(title string, v any) *Result {
	return new(Result).Add(title, v)
}

func checkCanceled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Canceled("demo", err)
	}
	return nil
}

package demo

import (
	"context"
	"strings"

	"github.com/kbukum/gostreams/fixtures"
	"github.com/kbukum/gostreams/pipeline"
)

// Lecture 11: string joining.
func joinCases() []Case {
	return []Case{
		{
			Name:        "join-string",
			Lecture:     11,
			Description: "Number words joined by hand with \", \"",
			Run:         joinString,
		},
		{
			Name:        "join-string-with-stream",
			Lecture:     11,
			Description: "Number words joined with delimiter \",\", prefix \"Hello\" and suffix \"World\"",
			Run:         joinStringWithStream,
		},
	}
}

func joinString(ctx context.Context, _ *fixtures.Dataset) (*Result, error) {
	var b strings.Builder
	for i, w := range numberWords {
		if err := checkCanceled(ctx); err != nil {
			return nil, err
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(w)
	}
	return single("joined", b.String()), nil
}

func joinStringWithStream(ctx context.Context, _ *fixtures.Dataset) (*Result, error) {
	s, err := pipeline.Join(ctx, pipeline.FromSlice(numberWords), ",", "Hello", "World")
	if err != nil {
		return nil, err
	}
	return single("joined", s), nil
}

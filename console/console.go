package console

import (
	"context"
	"io"

	"github.com/kbukum/gostreams/config"
	"github.com/kbukum/gostreams/demo"
	"github.com/kbukum/gostreams/runner"
	"github.com/kbukum/gostreams/validation"
)

// Options configures a Renderer.
type Options struct {
	Format   string
	NoColor  bool
	PageSize int
}

// Renderer writes demo output.
type Renderer interface {
	// Cases prints a catalog listing.
	Cases(cases []demo.Case) error
	// Case prints the details of one case.
	Case(c demo.Case) error
	// Outcome prints one finished case. JSON renderers defer to Report.
	Outcome(ctx context.Context, o runner.Outcome) error
	// Report prints the end-of-run summary.
	Report(ctx context.Context, r *runner.Report) error
}

// New creates the renderer for opts.Format, writing to w.
func New(w io.Writer, opts Options) (Renderer, error) {
	if opts.Format == "" {
		opts.Format = config.FormatText
	}
	v := validation.New().
		OneOf("format", opts.Format, config.Formats()).
		Min("page_size", opts.PageSize, 0)
	if err := v.Validate(); err != nil {
		return nil, err
	}

	if opts.Format == config.FormatJSON {
		return newJSONRenderer(w), nil
	}
	return newTextRenderer(w, opts), nil
}

package console

import (
	"context"
	"io"

	json "github.com/goccy/go-json"

	"github.com/kbukum/gostreams/demo"
	"github.com/kbukum/gostreams/runner"
)

type jsonRenderer struct {
	enc *json.Encoder
}

func newJSONRenderer(w io.Writer) *jsonRenderer {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &jsonRenderer{enc: enc}
}

func (j *jsonRenderer) Cases(cases []demo.Case) error {
	if cases == nil {
		cases = []demo.Case{}
	}
	return j.enc.Encode(cases)
}

func (j *jsonRenderer) Case(c demo.Case) error { return j.enc.Encode(c) }

// Outcome is a no-op: the report carries every outcome.
func (j *jsonRenderer) Outcome(context.Context, runner.Outcome) error { return nil }

func (j *jsonRenderer) Report(_ context.Context, r *runner.Report) error {
	return j.enc.Encode(r)
}

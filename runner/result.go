package runner

import (
	"time"

	"github.com/kbukum/gostreams/demo"
	"github.com/kbukum/gostreams/errors"
)

// Outcome statuses.
const (
	StatusOK       = "ok"
	StatusFailed   = "failed"
	StatusCanceled = "canceled"
)

// Outcome is the result of running one case.
type Outcome struct {
	Case     demo.Case     `json:"case"`
	Status   string        `json:"status"`
	Result   *demo.Result  `json:"result,omitempty"`
	Duration time.Duration `json:"duration_ns"`
	Err      error         `json:"-"`
	Error    string        `json:"error,omitempty"`
}

// Report holds the outcomes of one run in execution order.
type Report struct {
	RunID    string        `json:"run_id"`
	Outcomes []Outcome     `json:"outcomes"`
	Duration time.Duration `json:"duration_ns"`
}

// Failed returns the outcomes that did not succeed.
func (r *Report) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Status != StatusOK {
			out = append(out, o)
		}
	}
	return out
}

// Err returns the error of the first unsuccessful outcome, with the number
// of failures attached as a detail. It is nil when every case succeeded.
func (r *Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	return errors.Wrap(failed[0].Err).
		WithDetail("failed", len(failed)).
		WithDetail("run_id", r.RunID)
}

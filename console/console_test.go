package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/kbukum/gostreams/config"
	"github.com/kbukum/gostreams/demo"
	"github.com/kbukum/gostreams/errors"
	"github.com/kbukum/gostreams/runner"
)

var minCase = demo.Case{Name: "min", Lecture: 3, Description: "Smallest number"}

func render(t *testing.T, opts Options, fn func(Renderer) error) string {
	t.Helper()
	var buf bytes.Buffer
	r, err := New(&buf, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := fn(r); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func okOutcome(values ...any) runner.Outcome {
	return runner.Outcome{
		Case:   minCase,
		Status: runner.StatusOK,
		Result: new(demo.Result).Add("numbers", values...),
	}
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"format", Options{Format: "xml"}},
		{"page size", Options{PageSize: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(&bytes.Buffer{}, tt.opts)
			appErr, ok := errors.AsAppError(err)
			if !ok || appErr.Code != errors.ErrCodeInvalidInput {
				t.Errorf("New(%+v) = %v, want INVALID_INPUT", tt.opts, err)
			}
		})
	}
}

func TestText_Outcome(t *testing.T) {
	out := render(t, Options{NoColor: true}, func(r Renderer) error {
		return r.Outcome(context.Background(), okOutcome(3, 4))
	})
	for _, want := range []string{"[3] min", "Smallest number", "  numbers\n", "    3\n", "    4\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "page") {
		t.Errorf("unpaged output has page markers:\n%s", out)
	}
}

func TestText_Paging(t *testing.T) {
	out := render(t, Options{NoColor: true, PageSize: 2}, func(r Renderer) error {
		return r.Outcome(context.Background(), okOutcome(1, 2, 3, 4, 5))
	})
	for _, want := range []string{"page 1/3", "page 2/3", "page 3/3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "page 2/3") > strings.Index(out, "    3\n") {
		t.Errorf("value 3 should be on page 2:\n%s", out)
	}
}

func TestText_EmptySection(t *testing.T) {
	out := render(t, Options{NoColor: true}, func(r Renderer) error {
		return r.Outcome(context.Background(), okOutcome())
	})
	if !strings.Contains(out, "(empty)") {
		t.Errorf("expected empty marker:\n%s", out)
	}
}

func TestText_Failure(t *testing.T) {
	o := runner.Outcome{Case: minCase, Status: runner.StatusFailed, Error: "INTERNAL_ERROR: boom"}
	out := render(t, Options{NoColor: true}, func(r Renderer) error {
		return r.Outcome(context.Background(), o)
	})
	if !strings.Contains(out, "failed: INTERNAL_ERROR: boom") {
		t.Errorf("output = %q", out)
	}
}

func TestText_Cases(t *testing.T) {
	cases := []demo.Case{
		{Name: "range", Lecture: 2, Description: "Ranges"},
		minCase,
		{Name: "max", Lecture: 3, Description: "Largest number"},
	}
	out := render(t, Options{NoColor: true}, func(r Renderer) error { return r.Cases(cases) })
	if strings.Count(out, "Lecture ") != 2 {
		t.Errorf("expected two lecture headings:\n%s", out)
	}
	if !strings.Contains(out, "  min"+strings.Repeat(" ", nameWidth-3)+" Smallest number") {
		t.Errorf("names are not padded:\n%s", out)
	}
}

func TestText_Case(t *testing.T) {
	out := render(t, Options{NoColor: true}, func(r Renderer) error { return r.Case(minCase) })
	if !strings.Contains(out, "lecture:     3") || !strings.Contains(out, "Smallest number") {
		t.Errorf("output = %q", out)
	}
}

func TestText_Report(t *testing.T) {
	report := &runner.Report{
		RunID:    "run-1",
		Duration: 3 * time.Millisecond,
		Outcomes: []runner.Outcome{okOutcome(1), {Case: minCase, Status: runner.StatusFailed}},
	}
	out := render(t, Options{NoColor: true}, func(r Renderer) error {
		return r.Report(context.Background(), report)
	})
	if !strings.Contains(out, "2 run, 1 failed in 3ms run run-1") {
		t.Errorf("output = %q", out)
	}
}

func TestJSON_Report(t *testing.T) {
	report := &runner.Report{RunID: "run-1", Outcomes: []runner.Outcome{okOutcome(1, 2)}}
	out := render(t, Options{Format: config.FormatJSON}, func(r Renderer) error {
		if err := r.Outcome(context.Background(), report.Outcomes[0]); err != nil {
			return err
		}
		return r.Report(context.Background(), report)
	})

	var got struct {
		RunID    string `json:"run_id"`
		Outcomes []struct {
			Case   demo.Case   `json:"case"`
			Status string      `json:"status"`
			Result demo.Result `json:"result"`
		} `json:"outcomes"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.RunID != "run-1" || len(got.Outcomes) != 1 {
		t.Fatalf("got %+v", got)
	}
	o := got.Outcomes[0]
	if o.Case.Name != "min" || o.Status != runner.StatusOK || len(o.Result.Sections[0].Values) != 2 {
		t.Errorf("outcome = %+v", o)
	}
}

func TestJSON_Cases(t *testing.T) {
	out := render(t, Options{Format: config.FormatJSON}, func(r Renderer) error { return r.Cases(nil) })
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("output = %q, want []", out)
	}
}

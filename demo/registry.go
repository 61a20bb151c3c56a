package demo

import (
	"context"
	"fmt"
	"slices"

	"github.com/kbukum/gostreams/errors"
	"github.com/kbukum/gostreams/fixtures"
)

// RunFunc executes one demonstration against ds.
type RunFunc func(ctx context.Context, ds *fixtures.Dataset) (*Result, error)

// Case is one named, independently runnable demonstration.
type Case struct {
	Name        string  `json:"name"`
	Lecture     int     `json:"lecture"`
	Description string  `json:"description"`
	Run         RunFunc `json:"-"`
}

// Registry keeps cases in registration order and indexes them by name.
type Registry struct {
	cases  []Case
	byName map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Register adds c. Names must be unique and non-empty and Run must be set.
func (r *Registry) Register(c Case) error {
	switch {
	case c.Name == "":
		return errors.MissingField("name")
	case c.Run == nil:
		return errors.MissingField("run").WithDetail("case", c.Name)
	}
	if _, dup := r.byName[c.Name]; dup {
		return errors.InvalidInput("name", fmt.Sprintf("demo %q is already registered", c.Name))
	}
	r.byName[c.Name] = len(r.cases)
	r.cases = append(r.cases, c)
	return nil
}

// MustRegister registers every case and panics on the first error.
func (r *Registry) MustRegister(cases ...Case) *Registry {
	for _, c := range cases {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
	return r
}

// Get returns the case called name, or a NOT_FOUND error.
func (r *Registry) Get(name string) (Case, error) {
	i, ok := r.byName[name]
	if !ok {
		return Case{}, errors.NotFound("demo", name)
	}
	return r.cases[i], nil
}

// List returns every case in registration order.
func (r *Registry) List() []Case {
	return slices.Clone(r.cases)
}

// ByLecture returns the cases of lecture n in registration order.
func (r *Registry) ByLecture(n int) []Case {
	var out []Case
	for _, c := range r.cases {
		if c.Lecture == n {
			out = append(out, c)
		}
	}
	return out
}

// Lectures returns the distinct lecture numbers in ascending order.
func (r *Registry) Lectures() []int {
	var out []int
	for _, c := range r.cases {
		if !slices.Contains(out, c.Lecture) {
			out = append(out, c.Lecture)
		}
	}
	slices.Sort(out)
	return out
}

// Len returns the number of registered cases.
func (r *Registry) Len() int { return len(r.cases) }

package demo

import "fmt"

// Section is a titled list of values. Values are plain data (numbers,
// strings, records, Entries) that render with fmt and encode to JSON.
type Section struct {
	Title  string `json:"title"`
	Values []any  `json:"values"`
}

// Result is what a Case produces.
type Result struct {
	Sections []Section `json:"sections"`
}

// Add appends a section and returns the receiver.
func (r *Result) Add(title string, values ...any) *Result {
	if values == nil {
		values = []any{}
	}
	r.Sections = append(r.Sections, Section{Title: title, Values: values})
	return r
}

// Len is the total number of values across all sections.
func (r *Result) Len() int {
	n := 0
	for _, s := range r.Sections {
		n += len(s.Values)
	}
	return n
}

// Entry is one key of a grouped result with its aggregate.
type Entry struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

func (e Entry) String() string { return fmt.Sprintf("%s %v", e.Key, e.Value) }

// values converts a typed slice for Result.Add.
func values[T any](items []T) []any {
	out := make([]any, len(items))
	for i, v := range items {
		out[i] = v
	}
	return out
}

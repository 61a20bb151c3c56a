// Package model defines the immutable records the demos query: Person, Car
// and the PersonDTO projection, together with predicate and comparator
// values that encode their comparison rules.
//
// Gender and color comparisons are case-insensitive. That rule lives in
// the predicates (GenderIs, ColorIs), not in the records.
package model

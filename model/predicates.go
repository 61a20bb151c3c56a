package model

import (
	"cmp"
	"strings"
)

// GenderIs matches people whose gender equals g, ignoring case.
func GenderIs(g string) func(Person) bool {
	return func(p Person) bool { return strings.EqualFold(p.Gender, g) }
}

// AgeAtMost matches people no older than limit.
func AgeAtMost(limit int) func(Person) bool {
	return func(p Person) bool { return p.Age <= limit }
}

// ColorIs matches cars whose color equals c, ignoring case.
func ColorIs(c string) func(Car) bool {
	return func(car Car) bool { return strings.EqualFold(car.Color, c) }
}

// PriceAtMost matches cars priced at or below limit.
func PriceAtMost(limit float64) func(Car) bool {
	return func(c Car) bool { return c.Price <= limit }
}

// PersonAge is the age projection of a Person.
func PersonAge(p Person) int { return p.Age }

// PersonName is the name projection of a Person.
func PersonName(p Person) string { return p.Name }

// CarMake is the make projection of a Car.
func CarMake(c Car) string { return c.Make }

// CarPrice is the price projection of a Car.
func CarPrice(c Car) float64 { return c.Price }

// ByAge orders people by age.
func ByAge(a, b Person) int { return cmp.Compare(a.Age, b.Age) }

// ByPrice orders cars by price.
func ByPrice(a, b Car) int { return cmp.Compare(a.Price, b.Price) }

package model

import "fmt"

// Car is one entry of the cars fixture.
type Car struct {
	ID    int     `json:"id" validate:"required,gt=0"`
	Make  string  `json:"make" validate:"required"`
	Model string  `json:"model" validate:"required"`
	Year  int     `json:"year" validate:"gte=1886"`
	Color string  `json:"color" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

func (c Car) String() string {
	return fmt.Sprintf("Car{id=%d, make=%s, model=%s, year=%d, color=%s, price=%.2f}", c.ID, c.Make, c.Model, c.Year, c.Color, c.Price)
}

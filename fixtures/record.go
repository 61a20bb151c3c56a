package fixtures

import "github.com/kbukum/gostreams/model"

// record is the wire form of a fixture entry. Numeric fields are pointers so
// a missing key is told apart from an explicit zero.
type record[T any] interface {
	toModel() T
}

type personRecord struct {
	ID     *int   `json:"id" validate:"required"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Gender string `json:"gender"`
	Age    *int   `json:"age" validate:"required"`
}

func (r personRecord) toModel() model.Person {
	return model.Person{ID: *r.ID, Name: r.Name, Email: r.Email, Gender: r.Gender, Age: *r.Age}
}

type carRecord struct {
	ID    *int     `json:"id" validate:"required"`
	Make  string   `json:"make"`
	Model string   `json:"model"`
	Year  *int     `json:"year" validate:"required"`
	Color string   `json:"color"`
	Price *float64 `json:"price" validate:"required"`
}

func (r carRecord) toModel() model.Car {
	return model.Car{ID: *r.ID, Make: r.Make, Model: r.Model, Year: *r.Year, Color: r.Color, Price: *r.Price}
}

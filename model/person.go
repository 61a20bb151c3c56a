package model

import "fmt"

// Person is one entry of the people fixture.
type Person struct {
	ID     int    `json:"id" validate:"required,gt=0"`
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"omitempty,email"`
	Gender string `json:"gender" validate:"required"`
	Age    int    `json:"age" validate:"gte=0,lte=150"`
}

func (p Person) String() string {
	return fmt.Sprintf("Person{id=%d, name=%s, email=%s, gender=%s, age=%d}", p.ID, p.Name, p.Email, p.Gender, p.Age)
}

// PersonDTO is the public projection of a Person.
type PersonDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// ToDTO projects a Person onto a PersonDTO.
func ToDTO(p Person) PersonDTO {
	return PersonDTO{ID: p.ID, Name: p.Name, Age: p.Age}
}

func (d PersonDTO) String() string {
	return fmt.Sprintf("PersonDTO{id=%d, name=%s, age=%d}", d.ID, d.Name, d.Age)
}

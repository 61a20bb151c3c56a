// Package validation checks fixture records and command-line input.
//
// Struct tag validation (go-playground/validator) is used for records
// decoded from fixture files:
//
//	type Person struct {
//	    Name string `json:"name" validate:"required"`
//	    Age  int    `json:"age" validate:"gte=0,lte=150"`
//	}
//	err := validation.Validate(p)
//
// Programmatic validation collects field errors for values that do not live
// in a struct, such as flags:
//
//	v := validation.New().
//	    OneOf("format", format, []string{"text", "json"}).
//	    Range("lecture", lecture, 0, 11)
//	if err := v.Validate(); err != nil {
//	    return err
//	}
package validation

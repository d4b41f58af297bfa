// Package validation wires validator.v10 for the application's input
// structs and converts its errors into the domain taxonomy.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Bedlam343/socialgraph/internal/domain"
)

var validate = New()

// New builds a Validate configured to report struct field names in
// lowercase, matching the field names the domain errors carry.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.ToLower(fld.Name)
	})
	return v
}

// Struct validates in and converts the first failure into a
// domain.ValidationError carrying the offending field name.
func Struct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return domain.ValidationError{Field: verrs[0].Field()}
	}
	return err
}

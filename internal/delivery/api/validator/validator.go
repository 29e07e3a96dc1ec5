// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"moodmap/internal/domain/entity"
	"moodmap/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// New builds a validator that reports field names by their json or query tag
// and knows the "sortby" rule.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}

		return field.Name
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("sortby", func(fl validator.FieldLevel) bool {
		return entity.SortBy(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validator: v}
}

// Validate validates a struct using its `validate` tags.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Describe renders validation failures as "field: rule" pairs for clients.
func Describe(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fe.Field()+": "+rule)
	}

	return strings.Join(parts, "; ")
}

// Package validation guards handlers from malformed input.
//
// Path parameters are checked with ValidateUUID/ValidateUUIDs, JSON bodies
// against a declarative Schema with ValidateBody, and typed request structs
// with validator tags through BindAndValidate. Every failure becomes an
// *errs.HTTPError with status 400.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/urbansymbiosis/dashboard-api/internal/errs"
)

// Validatable is implemented by request payload types that know how to
// validate themselves, usually by calling Struct.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a rule that cannot be expressed with tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors satisfies error so Validate can return it.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

var validate = newValidator()

// newValidator reports fields by their json name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(f.Name)
		}
		return name
	})
	return v
}

// Struct runs the validator tags on v.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds path params and the body into payload, then runs
// payload.Validate.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), nil).WithCause(err)
	}

	if err := payload.Validate(); err != nil {
		messages := extractValidationErrors(err)
		if len(messages) == 1 {
			return errs.NewBadRequestError(messages[0], nil).WithCause(err)
		}
		return errs.ValidationError(messages).WithCause(err)
	}

	return nil
}

func bindErrorMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msg, ok := he.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return "Invalid request body"
}

// extractValidationErrors renders validator errors as "<field> <problem>".
func extractValidationErrors(err error) []string {
	var custom CustomValidationErrors
	if errors.As(err, &custom) {
		messages := make([]string, 0, len(custom))
		for _, e := range custom {
			messages = append(messages, fmt.Sprintf("%s %s", e.Field, e.Message))
		}
		return messages
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{"Validation failed"}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := fe.Field()
		var msg string

		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "min":
			if fe.Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must be >= %s", fe.Param())
			}
		case "max":
			if fe.Kind() == reflect.String {
				msg = fmt.Sprintf("must be at most %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must be <= %s", fe.Param())
			}
		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", fe.Param())
		case "email":
			msg = "must be a valid email"
		case "uuid":
			msg = "must be a valid UUID"
		default:
			if fe.Param() != "" {
				msg = fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
			} else {
				msg = fmt.Sprintf("failed %s", fe.Tag())
			}
		}

		messages = append(messages, field+" "+msg)
	}
	return messages
}

package validation

import (
	"fmt"
	"regexp"

	"github.com/labstack/echo/v4"

	"github.com/urbansymbiosis/dashboard-api/internal/errs"
)

// uuidRegex matches the canonical 8-4-4-4-12 hex form. Version and variant
// nibbles are not checked.
var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// IsValidUUID reports whether s has UUID format.
func IsValidUUID(s string) bool {
	return uuidRegex.MatchString(s)
}

// InvalidUUIDMessage is the client message for a malformed path parameter.
func InvalidUUIDMessage(param string) string {
	if param == "id" {
		return "Invalid ID format. Please provide a valid UUID."
	}
	return fmt.Sprintf("Invalid UUID format for '%s'", param)
}

// ValidateUUID rejects the request with 400 unless path parameter param is
// a UUID. Nothing downstream runs on rejection.
func ValidateUUID(param string) echo.MiddlewareFunc {
	return ValidateUUIDs(param)
}

// ValidateUUIDs checks every named path parameter and reports all bad ones
// at once: a single failure as {error}, several as {errors}.
func ValidateUUIDs(params ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := CheckUUIDParams(c, params...); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// CheckUUIDParams returns the 400 error for the invalid params, or nil.
func CheckUUIDParams(c echo.Context, params ...string) error {
	var messages []string
	for _, name := range params {
		if !IsValidUUID(c.Param(name)) {
			messages = append(messages, InvalidUUIDMessage(name))
		}
	}

	switch len(messages) {
	case 0:
		return nil
	case 1:
		return errs.NewBadRequestError(messages[0], nil)
	default:
		return errs.ValidationError(messages)
	}
}

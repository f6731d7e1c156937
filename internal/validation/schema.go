package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/urbansymbiosis/dashboard-api/internal/errs"
)

// FieldType names the kind of value a body field must hold.
type FieldType string

const (
	TypeString FieldType = "string"
	TypeNumber FieldType = "number"
	TypeEmail  FieldType = "email"
	TypeUUID   FieldType = "uuid"
	TypeDate   FieldType = "date"
)

// Rule constrains one body field. For strings Min and Max bound the length
// in characters; for numbers they bound the value. Nil means unbounded.
type Rule struct {
	Type     FieldType
	Required bool
	Min      *float64
	Max      *float64
}

// Field pairs a body key with its rule.
type Field struct {
	Name string
	Rule Rule
}

// Schema is an ordered list of field rules. Errors are reported in schema
// order.
type Schema []Field

// Bound is a helper for Rule.Min and Rule.Max.
func Bound(v float64) *float64 {
	return &v
}

// bodyValidator is only used for its email check.
var bodyValidator = validator.New()

// dateLayouts are the date string forms accepted for TypeDate.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006-01",
	"2006",
	time.RFC1123Z,
	time.RFC1123,
}

// IsValidDate reports whether s is a date string in one of the accepted
// layouts.
func IsValidDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// CheckBody validates body against schema and returns every problem found.
// An empty result means the body is acceptable.
func CheckBody(schema Schema, body map[string]any) []string {
	var problems []string

	for _, f := range schema {
		value, present := body[f.Name]

		if f.Rule.Required && (!present || value == nil || value == "") {
			problems = append(problems, fmt.Sprintf("%s is required", f.Name))
			continue
		}
		if !f.Rule.Required && (!present || value == nil) {
			continue
		}

		problems = append(problems, checkValue(f.Name, f.Rule, value)...)
	}

	return problems
}

func checkValue(name string, rule Rule, value any) []string {
	var problems []string

	switch rule.Type {
	case TypeString:
		s, ok := value.(string)
		if !ok {
			return []string{fmt.Sprintf("%s must be a string", name)}
		}
		length := float64(utf8.RuneCountInString(s))
		if rule.Min != nil && length < *rule.Min {
			problems = append(problems, fmt.Sprintf("%s must be at least %s characters", name, formatBound(*rule.Min)))
		}
		if rule.Max != nil && length > *rule.Max {
			problems = append(problems, fmt.Sprintf("%s must be at most %s characters", name, formatBound(*rule.Max)))
		}

	case TypeNumber:
		n, ok := value.(float64)
		if !ok {
			return []string{fmt.Sprintf("%s must be a number", name)}
		}
		if rule.Min != nil && n < *rule.Min {
			problems = append(problems, fmt.Sprintf("%s must be >= %s", name, formatBound(*rule.Min)))
		}
		if rule.Max != nil && n > *rule.Max {
			problems = append(problems, fmt.Sprintf("%s must be <= %s", name, formatBound(*rule.Max)))
		}

	case TypeEmail:
		s, ok := value.(string)
		if !ok || bodyValidator.Var(s, "required,email") != nil {
			problems = append(problems, fmt.Sprintf("%s must be a valid email", name))
		}

	case TypeUUID:
		s, ok := value.(string)
		if !ok || !IsValidUUID(s) {
			problems = append(problems, fmt.Sprintf("%s must be a valid UUID", name))
		}

	case TypeDate:
		s, ok := value.(string)
		if !ok || !IsValidDate(s) {
			problems = append(problems, fmt.Sprintf("%s must be a valid date string", name))
		}

	default:
		problems = append(problems, fmt.Sprintf("Unknown validation type for %s", name))
	}

	return problems
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DecodeBody reads a JSON object from the request and puts the bytes back
// so later binding still sees them. An empty body decodes as {}.
func DecodeBody(c echo.Context) (map[string]any, error) {
	req := c.Request()
	if req.Body == nil {
		return map[string]any{}, nil
	}

	raw, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	req.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil {
		return nil, errs.NewBadRequestError("Unable to read request body", nil).WithCause(err)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil || body == nil {
		return nil, errs.NewBadRequestError("Invalid JSON body", nil).WithCause(err)
	}
	return body, nil
}

// ValidateBody rejects the request with 400 {errors} when the JSON body
// breaks schema, and with 400 {error} when it is not a JSON object.
func ValidateBody(schema Schema) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			body, err := DecodeBody(c)
			if err != nil {
				return err
			}
			if problems := CheckBody(schema, body); len(problems) > 0 {
				return errs.ValidationError(problems)
			}
			return next(c)
		}
	}
}

package finance

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a form value that is not a number.
type ParseError struct {
	Field string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s must be a number", e.Field)
}

// ValidationError reports a numeric value outside its accepted range, or a
// missing required value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func rangeError(field string, min, max float64) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("must be between %s and %s", formatAmount(min), formatAmount(max)),
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseAmount converts a raw form value into a number. An empty value is a
// ValidationError, a non-numeric one a ParseError.
func ParseAmount(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &ValidationError{Field: field, Message: "is required"}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ParseError{Field: field}
	}
	return v, nil
}

// Package validation checks inbound payloads against the per-entity field
// rules and returns either a normalized record or the first field violation.
// Some rules depend on the request mode: fields like a property's sale
// details exist on the entity but may not be supplied on creation.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"rentfolio/internal/common"
)

// Mode distinguishes create from update requests. Mode-forbidden fields
// present in a payload reject the request rather than being dropped.
type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

const dateLayout = "2006-01-02"

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func requiredString(field, value string, min, max int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", common.NewFieldError(field, "is required")
	}
	if len(value) < min || len(value) > max {
		return "", common.NewFieldError(field, fmt.Sprintf("must be between %d and %d characters", min, max))
	}
	return value, nil
}

func optionalString(field string, value *string, min, max int) (*string, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if len(trimmed) < min || len(trimmed) > max {
		return nil, common.NewFieldError(field, fmt.Sprintf("must be between %d and %d characters", min, max))
	}
	return &trimmed, nil
}

func requiredEmail(field, value string, min, max int) (string, error) {
	email, err := requiredString(field, value, min, max)
	if err != nil {
		return "", err
	}
	if !emailPattern.MatchString(email) {
		return "", common.NewFieldError(field, "must be a valid email address")
	}
	return email, nil
}

func requiredDate(field, value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, common.NewFieldError(field, "is required")
	}
	date, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, common.NewFieldError(field, "must be in YYYY-MM-DD format")
	}
	return date, nil
}

func optionalDate(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	date, err := time.Parse(dateLayout, strings.TrimSpace(*value))
	if err != nil {
		return nil, common.NewFieldError(field, "must be in YYYY-MM-DD format")
	}
	return &date, nil
}

func requiredNumber(field string, value *float64, min, max float64) (float64, error) {
	if value == nil {
		return 0, common.NewFieldError(field, "is required")
	}
	if *value < min || *value > max {
		return 0, common.NewFieldError(field, fmt.Sprintf("must be between %g and %g", min, max))
	}
	return *value, nil
}

func optionalNonNegative(field string, value *float64) (*float64, error) {
	if value == nil {
		return nil, nil
	}
	if *value < 0 {
		return nil, common.NewFieldError(field, "must not be negative")
	}
	return value, nil
}

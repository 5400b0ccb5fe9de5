package service

import (
	stderrs "errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/olusolaa/ec2ctl/internal/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest checks the struct tags of a request and reports the first
// failing field as invalid input.
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !stderrs.As(err, &validationErrors) || len(validationErrors) == 0 {
		return errors.Wrap(err, errors.CodeInternal, "request validation failed")
	}
	return errors.InvalidInput(describeFieldError(validationErrors[0]))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "ipv4":
		return fmt.Sprintf("%s must be an IPv4 address, got %q", fe.Field(), fe.Value())
	case "gte", "lte":
		return fmt.Sprintf("%s must be between 0 and 100, got %v", fe.Field(), fe.Value())
	default:
		return fmt.Sprintf("%s failed the %q check", fe.Field(), fe.Tag())
	}
}

// requireID trims id and rejects it when nothing is left.
func requireID(id, what string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", errors.InvalidInput(what + " is required")
	}
	return id, nil
}

// ParseThreshold reads a CPU percentage as entered by a user.
func ParseThreshold(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errors.InvalidInput("threshold is required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.InvalidInput(fmt.Sprintf("threshold must be a number, got %q", raw))
	}
	return v, nil
}

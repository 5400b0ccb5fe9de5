package catalog

import (
	"strings"

	"github.com/olusolaa/ec2ctl/internal/core/domain"
	"github.com/olusolaa/ec2ctl/internal/errors"
)

// Matches reports whether rec satisfies c. Substring criteria compare the
// primary key case-insensitively; dimension criteria need an exact pair.
func Matches(rec domain.Record, c domain.Criterion) bool {
	switch c.Mode {
	case domain.MatchSubstring:
		return strings.Contains(strings.ToLower(rec.PrimaryKey()), strings.ToLower(c.Value))
	case domain.MatchDimension:
		for _, d := range rec.Dimensions() {
			if d.Name == c.Key && d.Value == c.Value {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// ValidateCriterion rejects criteria that would match everything or nothing
// by accident.
func ValidateCriterion(c domain.Criterion) error {
	switch c.Mode {
	case domain.MatchSubstring:
		if strings.TrimSpace(c.Value) == "" {
			return errors.InvalidInput("a type name fragment is required")
		}
	case domain.MatchDimension:
		if strings.TrimSpace(c.Key) == "" {
			return errors.InvalidInput("a dimension name is required")
		}
		if strings.TrimSpace(c.Value) == "" {
			return errors.InvalidInput("a dimension value is required")
		}
	default:
		return errors.InvalidInput("unsupported match mode")
	}
	return nil
}

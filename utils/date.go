package utils

import (
	"fmt"
	"regexp"
	"time"
)

var dateRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDate checks a YYYY-MM-DD parameter before it reaches the backend.
// The regex alone admits calendar-invalid dates like 2024-02-30, so the
// string must also parse as a real date; such input is rejected rather than
// normalized.
func ValidateDate(s string) (string, error) {
	if !dateRE.MatchString(s) {
		return "", fmt.Errorf("date must be in YYYY-MM-DD format")
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", fmt.Errorf("invalid calendar date %q", s)
	}
	return s, nil
}

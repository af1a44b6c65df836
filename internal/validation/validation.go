// Package validation holds the field-level checks run against profile
// payloads before anything touches the database. All functions are pure;
// mapping a failure onto an HTTP error code is the handler's job.
package validation

import (
	"regexp"
	"strings"
	"time"
)

var (
	phonePattern       = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$`)
	countryCodePattern = regexp.MustCompile(`^\+[0-9]{1,4}$`)
	phoneStripper      = strings.NewReplacer(" ", "", "\t", "", "-", "", "(", "", ")", "")
)

// IsValidAge reports whether n is a plausible age in whole years (1-150).
func IsValidAge(n int) bool {
	return n >= 1 && n <= 150
}

// IsValidDateString accepts "YYYY-MM-DD" or an RFC 3339 datetime. The dash
// separator is required: compact forms like "20200115" are rejected even when
// they would otherwise parse, because the dashboard and the date column both
// expect dash-separated dates.
func IsValidDateString(s string) bool {
	if !strings.Contains(s, "-") {
		return false
	}
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// IsValidPhoneNumber reports whether s is an international-dialable number:
// after stripping whitespace, hyphens and parentheses there must be an
// optional leading "+" followed by a non-zero digit and up to 15 more digits.
func IsValidPhoneNumber(s string) bool {
	return phonePattern.MatchString(phoneStripper.Replace(s))
}

// IsValidCountryCode reports whether s is a literal "+" followed by 1-4
// digits and nothing else.
func IsValidCountryCode(s string) bool {
	return countryCodePattern.MatchString(s)
}

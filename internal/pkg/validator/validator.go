package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Period validation: payroll periods are "YYYY-MM" strings.
var periodRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

func IsValidPeriod(period string) bool {
	return periodRegex.MatchString(period)
}

// ParsePeriod splits a "YYYY-MM" period into year and month.
func ParsePeriod(period string) (int, time.Month, bool) {
	if !IsValidPeriod(period) {
		return 0, 0, false
	}
	t, err := time.Parse("2006-01", period)
	if err != nil {
		return 0, 0, false
	}
	return t.Year(), t.Month(), true
}

// DNI validation: Honduran national IDs are 13 digits, optionally written
// with dashes (0801-1990-12345).
var dniRegex = regexp.MustCompile(`^\d{4}-?\d{4}-?\d{5}$`)

func IsValidDNI(dni string) bool {
	return dniRegex.MatchString(dni)
}

// NormalizeDNI strips dashes from a DNI.
func NormalizeDNI(dni string) string {
	return strings.ReplaceAll(dni, "-", "")
}

// DNISuffix returns the last five characters of a normalized identifier,
// the join key between employees and attendance records. The second
// return is false when the identifier is too short to yield a suffix.
func DNISuffix(identifier string) (string, bool) {
	normalized := NormalizeDNI(strings.TrimSpace(identifier))
	if len(normalized) < 5 {
		return "", false
	}
	return normalized[len(normalized)-5:], true
}

// Clock time validation: attendance times are "HH:MM" or "HH:MM:SS"
// local time-of-day strings.
var clockTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)

func IsValidClockTime(s string) bool {
	return clockTimeRegex.MatchString(s)
}

// ParseClockTime converts an "HH:MM[:SS]" string to minutes since
// midnight. Seconds are ignored; attendance granularity is the minute.
func ParseClockTime(s string) (int, bool) {
	if !IsValidClockTime(s) {
		return 0, false
	}
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')
	return hours*60 + minutes, true
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

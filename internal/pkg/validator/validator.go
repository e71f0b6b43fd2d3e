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

// New returns a single-entry ValidationErrors.
func New(field, message string) ValidationErrors {
	return ValidationErrors{{Field: field, Message: message}}
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

var numberRegex = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// IsNumber accepts signed integers and decimals.
func IsNumber(s string) bool {
	return numberRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Phone number validation, Indian numbering: 10 digits starting 6-9,
// optionally prefixed by 0, 91 or +91.
func IsValidPhoneNumber(phone string) bool {
	// Remove spaces and dashes
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")

	switch {
	case strings.HasPrefix(phone, "+91"):
		phone = strings.TrimPrefix(phone, "+91")
	case len(phone) == 12 && strings.HasPrefix(phone, "91"):
		phone = strings.TrimPrefix(phone, "91")
	case len(phone) == 11 && strings.HasPrefix(phone, "0"):
		phone = strings.TrimPrefix(phone, "0")
	}

	if len(phone) != 10 || !IsNumeric(phone) {
		return false
	}
	return phone[0] >= '6' && phone[0] <= '9'
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

// Today returns the current date in "YYYY-MM-DD" format.
func Today() string {
	return time.Now().Format("2006-01-02")
}

package validator

import (
	"regexp"
	"strconv"
	"strings"
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

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Landline phone validation: "(11) 3333-4444"
var landlineRegex = regexp.MustCompile(`^\(\d{2}\) \d{4}-\d{4}$`)

func IsValidLandlinePhone(phone string) bool {
	return landlineRegex.MatchString(phone)
}

// Mobile phone validation: "(11) 98888-7777"
var mobileRegex = regexp.MustCompile(`^\(\d{2}\) 9\d{4}-\d{4}$`)

func IsValidMobilePhone(phone string) bool {
	return mobileRegex.MatchString(phone)
}

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// Password strength rule. Length only, matching the portal's current policy.
func IsValidPassword(password string) bool {
	return len(password) >= MinPasswordLength
}

// Domain validation: "acme.com", "portal.acme.com.br"
var domainRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?)+$`)

func IsValidDomain(domain string) bool {
	return domainRegex.MatchString(domain)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
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

// Itoa converts an integer to a string.
func Itoa(i int) string {
	return strconv.Itoa(i)
}

// NormalizeEmail lowercases and trims an email for use as a lookup key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeDomain lowercases and trims a company domain for uniqueness checks.
func NormalizeDomain(domain string) string {
	return strings.ToLower(strings.TrimSpace(domain))
}

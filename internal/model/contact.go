package model

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	zipRe   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	digitRe = regexp.MustCompile(`\D`)
)

// ContactInfo holds the identity fields collected after qualification
type ContactInfo struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	ZipCode          string `json:"zipCode"`
	PreferredContact string `json:"preferredContact,omitempty"`
}

// Validate returns a map of field name to error message; empty map means valid
func (c ContactInfo) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(c.FirstName) == "" {
		errs["firstName"] = "First name is required"
	}
	if strings.TrimSpace(c.LastName) == "" {
		errs["lastName"] = "Last name is required"
	}
	if strings.TrimSpace(c.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailRe.MatchString(c.Email) {
		errs["email"] = "Email is invalid"
	}
	if strings.TrimSpace(c.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if len(DigitsOnly(c.Phone)) != 10 {
		errs["phone"] = "Phone number must be 10 digits"
	}
	if strings.TrimSpace(c.ZipCode) == "" {
		errs["zipCode"] = "ZIP code is required"
	} else if !zipRe.MatchString(c.ZipCode) {
		errs["zipCode"] = "ZIP code is invalid"
	}

	return errs
}

// FullName returns the trimmed "First Last" concatenation
func (c ContactInfo) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// DigitsOnly strips every non-digit character from a phone string
func DigitsOnly(phone string) string {
	return digitRe.ReplaceAllString(phone, "")
}

// FormatPhone progressively formats a phone number as it is typed:
// "2125551234" -> "(212) 555-1234", "212" -> "(212"
func FormatPhone(input string) string {
	digits := DigitsOnly(input)
	if len(digits) > 10 {
		digits = digits[:10]
	}
	switch {
	case len(digits) == 0:
		return ""
	case len(digits) <= 3:
		return "(" + digits
	case len(digits) <= 6:
		return fmt.Sprintf("(%s) %s", digits[:3], digits[3:])
	default:
		return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
	}
}

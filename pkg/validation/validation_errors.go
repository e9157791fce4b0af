package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	// Auth fields
	"Email":    "Email",
	"Password": "Password",
	"Name":     "Name",
	"Role":     "Role",

	// Job fields
	"Title":            "Job title",
	"Location":         "Location",
	"SalaryMin":        "Minimum salary",
	"SalaryMax":        "Maximum salary",
	"Currency":         "Currency",
	"JobType":          "Job type",
	"WorkMode":         "Work mode",
	"Skills":           "Skills",
	"Description":      "Description",
	"Requirements":     "Requirements",
	"Responsibilities": "Responsibilities",
	"Benefits":         "Benefits",

	// Application fields
	"CoverLetter": "Cover letter",
	"ResumeURL":   "Resume URL",
	"Status":      "Status",

	// Job seeker profile fields
	"Headline":        "Headline",
	"Phone":           "Phone number",
	"Experience":      "Years of experience",
	"CurrentSalary":   "Current salary",
	"ExpectedSalary":  "Expected salary",
	"Summary":         "Summary",
	"ProfileImageURL": "Profile image URL",
	"Institution":     "Institution",
	"Degree":          "Degree",
	"FieldOfStudy":    "Field of study",
	"Company":         "Company",

	// Employer profile fields
	"CompanyName":   "Company name",
	"Industry":      "Industry",
	"CompanySize":   "Company size",
	"FoundedYear":   "Founded year",
	"Website":       "Website",
	"About":         "About",
	"Headquarters":  "Headquarters",
	"LogoURL":       "Logo URL",
	"CoverImageURL": "Cover image URL",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// Message joins the formatted errors into a single line.
func Message(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", label, param)
		}
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("%s: must contain at least %s item(s)", label, param)
		}
		return fmt.Sprintf("%s: must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at most %s", label, param)
	case "gte":
		return fmt.Sprintf("%s: must be %s or more", label, param)
	case "lte":
		return fmt.Sprintf("%s: must be %s or less", label, param)
	case "gtefield":
		return fmt.Sprintf("%s: must be greater than or equal to %s", label, getFieldLabel(param))
	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.Join(strings.Fields(param), ", "))
	case "email":
		return fmt.Sprintf("%s: invalid email format", label)
	case "url":
		return fmt.Sprintf("%s: invalid URL format", label)
	case "valid_name":
		return fmt.Sprintf("%s: only letters, digits, spaces and common punctuation are allowed", label)
	case "valid_phone":
		return fmt.Sprintf("%s: invalid phone number (7-15 digits, optional +)", label)
	case "no_emoji":
		return fmt.Sprintf("%s: must not contain emoji or special symbols", label)
	case "max_current_year":
		return fmt.Sprintf("%s: must not be later than the current year", label)
	default:
		return fmt.Sprintf("%s: failed validation (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}

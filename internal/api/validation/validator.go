package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/halcyonworks/siteapi/internal/api/dto/v1/contact"

	"github.com/go-playground/validator/v10"
)

var (
	nameRegex    = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	companyRegex = regexp.MustCompile(`^[a-zA-Z0-9\s\-&.,()]*$`)
	nonDigit     = regexp.MustCompile(`\D`)
)

var validate = newValidator()

// newValidator builds the validator with our custom rules registered.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("person_name", validatePersonName)
	v.RegisterValidation("company_chars", validateCompanyChars)
	return v
}

// validatePersonName checks letters, spaces, hyphens and apostrophes only
func validatePersonName(fl validator.FieldLevel) bool {
	return nameRegex.MatchString(fl.Field().String())
}

// validateCompanyChars checks the restricted company character set
func validateCompanyChars(fl validator.FieldLevel) bool {
	return companyRegex.MatchString(fl.Field().String())
}

// Field length bounds for the contact form.
const (
	nameMinLen    = 2
	nameMaxLen    = 100
	emailMaxLen   = 254
	companyMaxLen = 100
	messageMinLen = 10
	messageMaxLen = 2000
)

// ValidateSubmission validates and normalizes a raw contact request.
// It is a pure transform: on success it returns the normalized submission,
// otherwise a field-keyed map of human-readable messages. It never returns
// both.
func ValidateSubmission(req contact.ContactRequest) (contact.Submission, map[string]string) {
	fields := make(map[string]string)

	firstName := validateName(strings.TrimSpace(req.FirstName), "firstName", fields)
	lastName := validateName(strings.TrimSpace(req.LastName), "lastName", fields)
	email := validateEmail(strings.ToLower(strings.TrimSpace(req.Email)), fields)
	company := validateCompany(strings.TrimSpace(req.Company), fields)
	serviceType := validateServiceType(strings.TrimSpace(req.ServiceType), fields)
	message := validateMessage(strings.TrimSpace(req.Message), fields)
	phone := FormatPhone(req.Phone)

	if len(fields) > 0 {
		return contact.Submission{}, fields
	}

	return contact.Submission{
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		Phone:       phone,
		Company:     company,
		ServiceType: serviceType,
		Message:     message,
	}, nil
}

func validateName(name, field string, fields map[string]string) string {
	switch {
	case name == "":
		fields[field] = "This field is required"
	case len(name) < nameMinLen || len(name) > nameMaxLen:
		fields[field] = fmt.Sprintf("Must be between %d and %d characters", nameMinLen, nameMaxLen)
	case validate.Var(name, "person_name") != nil:
		fields[field] = "May only contain letters, spaces, hyphens and apostrophes"
	}
	return name
}

func validateEmail(email string, fields map[string]string) string {
	switch {
	case email == "":
		fields["email"] = "This field is required"
	case len(email) > emailMaxLen:
		fields["email"] = fmt.Sprintf("Must be at most %d characters", emailMaxLen)
	case validate.Var(email, "email") != nil:
		fields["email"] = "Must be a valid email address"
	}
	return email
}

func validateCompany(company string, fields map[string]string) string {
	switch {
	case company == "":
		// optional
	case len(company) > companyMaxLen:
		fields["company"] = fmt.Sprintf("Must be at most %d characters", companyMaxLen)
	case validate.Var(company, "company_chars") != nil:
		fields["company"] = "Contains characters that are not allowed"
	}
	return company
}

func validateServiceType(serviceType string, fields map[string]string) string {
	if serviceType == "" {
		return serviceType
	}
	for _, known := range contact.ServiceTypes {
		if serviceType == known {
			return serviceType
		}
	}
	fields["serviceType"] = "Must be one of the listed service types"
	return serviceType
}

func validateMessage(message string, fields map[string]string) string {
	switch {
	case message == "":
		fields["message"] = "This field is required"
	case len(message) < messageMinLen || len(message) > messageMaxLen:
		fields["message"] = fmt.Sprintf("Must be between %d and %d characters", messageMinLen, messageMaxLen)
	case countNonWhitespace(message) < messageMinLen:
		// Rejects whitespace-padded short messages that pass the raw
		// length check.
		fields["message"] = fmt.Sprintf("Must contain at least %d non-whitespace characters", messageMinLen)
	}
	return message
}

func countNonWhitespace(s string) int {
	count := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}

// FormatPhone normalizes a phone number to a canonical display format.
// NANP numbers become "(XXX) XXX-XXXX"; anything else is returned trimmed,
// as entered. Phone numbers are formatted, never rejected.
func FormatPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	digits := nonDigit.ReplaceAllString(phone, "")
	switch {
	case len(digits) == 10:
		return fmt.Sprintf("(%s) %s-%s", digits[0:3], digits[3:6], digits[6:10])
	case len(digits) == 11 && digits[0] == '1':
		return fmt.Sprintf("+1 (%s) %s-%s", digits[1:4], digits[4:7], digits[7:11])
	default:
		return phone
	}
}

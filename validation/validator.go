// Package validation holds the portal's form rule sets.
//
// Rules are go-playground/validator tags under the "binding" key, so the same
// structs validate through gin's ShouldBind and through New() in the terminal client.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	ssnPattern     = regexp.MustCompile(`^\d{7}$`)
	phonePattern   = regexp.MustCompile(`^\d{10}$`)
	aadhaarPattern = regexp.MustCompile(`^\d{12}$`)
	panPattern     = regexp.MustCompile(`^[A-Z]{5}\d{4}[A-Z]$`)
)

var oneOf = map[string][]string{
	"accounttype": {"Current", "Savings"},
	"gender":      {"M", "F"},
	"designation": {"Clerk", "Manager", "Accountant"},
}

// New returns a standalone validator with every portal rule registered.
func New() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	if err := Register(v); err != nil {
		panic(err)
	}
	return v
}

// Register adds the portal rules to v, typically gin's binding engine.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(formName)

	rules := map[string]validator.Func{
		"ssn":     pattern(ssnPattern),
		"phone":   pattern(phonePattern),
		"aadhaar": pattern(aadhaarPattern),
		"pan":     pattern(panPattern),
		"isodate": validateISODate,
	}
	for tag, values := range oneOf {
		rules[tag] = enum(values)
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

// Empty values pass; presence is the job of "required".
func pattern(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || re.MatchString(s)
	}
}

func enum(values []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		for _, v := range values {
			if s == v {
				return true
			}
		}
		return false
	}
}

func validateISODate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

func formName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
	if name == "" || name == "-" {
		return lowerFirst(f.Name)
	}
	return name
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// FieldErrors maps a form field name to the message shown under it.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for field, msg := range fe {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// Translate turns a validation failure into per-field messages.
// Errors that are not validation failures (bad numbers, malformed bodies) land under "form".
func Translate(err error) FieldErrors {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"form": "Please check the highlighted values"}
	}
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = message(field, fe.Tag(), fe.Param(), fe.Kind())
	}
	return out
}

var labels = map[string]string{
	"ssnId":              "SSN",
	"customerName":       "Name",
	"email":              "Email",
	"password":           "Password",
	"confirmPassword":    "Confirm password",
	"contactNumber":      "Contact number",
	"initialDeposit":     "Initial deposit",
	"aadharNumber":       "Aadhaar number",
	"panNumber":          "PAN number",
	"accountNumber":      "Account number",
	"accountType":        "Account type",
	"address":            "Address",
	"city":               "City",
	"age":                "Age",
	"gender":             "Gender",
	"dateOfBirth":        "Date of birth",
	"amount":             "Amount",
	"destinationAccount": "Destination account",
	"identifier":         "Username or email",
	"firstName":          "First name",
	"lastName":           "Last name",
	"designation":        "Designation",
	"salary":             "Salary",
	"percentage":         "Percentage",
	"employeeId":         "Employee ID",
}

func label(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	return field
}

func message(field, tag, param string, kind reflect.Kind) string {
	l := label(field)
	switch tag {
	case "required":
		return l + " is required"
	case "email":
		return "Please enter a valid email address"
	case "eqfield":
		return "Passwords do not match"
	case "ssn":
		return "SSN must be 7 digits"
	case "phone":
		return l + " must be 10 digits"
	case "aadhaar":
		return "Aadhaar must be 12 digits"
	case "pan":
		return "Invalid PAN format"
	case "isodate":
		return l + " must be a date (YYYY-MM-DD)"
	case "accounttype", "gender", "designation":
		return fmt.Sprintf("%s must be one of %s", l, strings.Join(oneOf[tag], ", "))
	case "min", "gte":
		if kind == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", l, param)
		}
		return fmt.Sprintf("%s must be at least %s", l, param)
	case "max", "lte":
		if kind == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", l, param)
		}
		return fmt.Sprintf("%s must be at most %s", l, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", l, param)
	case "numeric":
		return l + " must be a number"
	default:
		return l + " is invalid"
	}
}

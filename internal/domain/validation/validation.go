// Package validation runs field rules against domain entities and reports every
// failing field at once.
package validation

import (
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	phonePattern      = regexp.MustCompile(`^\d{10}$`)
	zipPattern        = regexp.MustCompile(`^\d{5}$`)
	imageURLPattern   = regexp.MustCompile(`(?i)^(http|https)://.*\.(jpg|jpeg|png|gif)$`)
	customValidations = map[string]validator.Func{
		"phone10":  matches(phonePattern),
		"zip5":     matches(zipPattern),
		"imageurl": matches(imageURLPattern),
		"pastdate": isPastDate,
	}
)

// Violation describes one failing field.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Violations is a list of failing fields. A non-empty list is a 400 application error.
type Violations []Violation

// Error implements the error interface
func (vs Violations) Error() string {
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, v.Field+": "+v.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// HTTPCode returns the HTTP status code
func (vs Violations) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (vs Violations) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (vs Violations) Message() string {
	return "Validation failed"
}

// Details returns the failing fields
func (vs Violations) Details() any {
	return []Violation(vs)
}

// Add appends a violation and returns the extended list.
func (vs Violations) Add(field, rule, message string) Violations {
	return append(vs, Violation{Field: field, Rule: rule, Message: message})
}

// Required appends a "required" violation for field.
func (vs Violations) Required(field string) Violations {
	return vs.Add(field, "required", "is required")
}

// Err returns the list as an error, or nil when it is empty.
func (vs Violations) Err() error {
	if len(vs) == 0 {
		return nil
	}

	return vs
}

// Validator checks struct tags using the custom rules phone10, zip5, imageurl and pastdate.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})
	for tag, fn := range customValidations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register validation %q: %v", tag, err))
		}
	}

	return &Validator{validate: v}
}

// Struct validates s and returns its violations, or nil when it passes.
func (v *Validator) Struct(s any) Violations {
	return toViolations(v.validate.Struct(s), "")
}

// Var validates a single value under the given field name.
func (v *Validator) Var(field string, value any, tag string) Violations {
	return toViolations(v.validate.Var(value, tag), field)
}

func toViolations(err error, field string) Violations {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Violations{}.Add(field, "invalid", err.Error())
	}

	violations := make(Violations, 0, len(validationErrs))
	for _, fe := range validationErrs {
		name := field
		if name == "" {
			name = fieldPath(fe.Namespace())
		}
		violations = violations.Add(name, fe.Tag(), describe(fe))
	}

	return violations
}

// fieldPath drops the root struct name from a namespace such as "User.address.zipCode".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}

	return namespace
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "phone10":
		return "must be exactly 10 digits"
	case "zip5":
		return "must be exactly 5 digits"
	case "imageurl":
		return "must be an http(s) URL ending in .jpg, .jpeg, .png or .gif"
	case "pastdate":
		return "must be in the past"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	default:
		return "is invalid"
	}
}

func matches(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}

func isPastDate(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}

	return t.Before(time.Now())
}

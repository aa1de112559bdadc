package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report field names from json tags so error messages match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// email_format accepts local@domain with exactly one @, a non-empty local
	// part, a dot somewhere in the domain, and no whitespace anywhere. This is
	// deliberately looser than full RFC 5322 but strict enough to catch the
	// usual typos (missing @, missing TLD, embedded spaces).
	if err := v.RegisterValidation("email_format", func(fl validator.FieldLevel) bool {
		return IsEmailAddress(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register email_format validation: %v", err))
	}

	// max_bytes bounds the raw byte length of a string. The builtin max rule
	// counts runes, which is the wrong unit for byte-limited consumers such
	// as bcrypt.
	if err := v.RegisterValidation("max_bytes", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= n
	}); err != nil {
		panic(fmt.Sprintf("register max_bytes validation: %v", err))
	}

	return v
}

// IsEmailAddress reports whether s looks like a plausible email address.
func IsEmailAddress(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	at := strings.Index(s, "@")
	if at <= 0 || at != strings.LastIndex(s, "@") {
		return false
	}
	domain := s[at+1:]
	// The domain needs a dot, and not as its first or last character.
	return strings.Contains(domain, ".") &&
		!strings.HasPrefix(domain, ".") &&
		!strings.HasSuffix(domain, ".")
}

// Validate validates a struct using go-playground/validator tags. On failure
// it returns a *ValidationError aggregating every violated field.
func Validate(s any) error {
	if err := validate.Struct(s); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			ve := &ValidationError{}
			for _, fe := range validationErrors {
				ve.Add(fe.Field(), msgForTag(fe))
			}
			return ve
		}
		return err
	}
	return nil
}

// FieldError is a single field-level violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// ValidationError aggregates every violated field of a request. It is never
// empty when returned: at least one field error is present.
type ValidationError struct {
	Violations []FieldError
}

// Add appends a field violation, keeping insertion order.
func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, FieldError{Field: field, Message: message})
}

// Has reports whether the given field already carries a violation.
func (e *ValidationError) Has(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// Empty reports whether no violations were recorded.
func (e *ValidationError) Empty() bool {
	return len(e.Violations) == 0
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.String())
	}
	return strings.Join(msgs, "; ")
}

// List returns the violations as human-readable strings, one per field,
// in the order they were recorded.
func (e *ValidationError) List() []string {
	out := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		out = append(out, v.String())
	}
	return out
}

// Fields returns a map of field names to error messages.
func (e *ValidationError) Fields() map[string]string {
	fields := make(map[string]string, len(e.Violations))
	for _, v := range e.Violations {
		fields[v.Field] = v.Message
	}
	return fields
}

func msgForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email_format":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "max_bytes":
		return fmt.Sprintf("must be at most %s bytes", fe.Param())
	case "uuid4":
		return "must be a valid UUID"
	default:
		return fmt.Sprintf("failed on '%s' validation", fe.Tag())
	}
}

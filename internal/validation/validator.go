// Package validation wraps go-playground/validator v10 behind a
// thread-safe singleton and translates field failures into the
// messages the form templates display.
//
// Handlers declare request structs with `validate` tags and call
// ValidateStruct; on failure the returned *FormError carries one
// message per offending field.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string
	Message string
}

// FormError collects every field failure from one submission so the
// form can be re-rendered with all offending fields listed at once.
type FormError struct {
	fields []FieldError
}

// Fields returns the individual field failures in declaration order.
func (e *FormError) Fields() []FieldError { return e.fields }

// Messages returns just the display messages, for templates.
func (e *FormError) Messages() []string {
	out := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		out = append(out, f.Message)
	}
	return out
}

// Error implements the error interface.
func (e *FormError) Error() string {
	if len(e.fields) == 0 {
		return "validation failed"
	}
	return strings.Join(e.Messages(), "; ")
}

// getValidator lazily constructs the shared validator instance.  The
// instance caches struct metadata, so a singleton avoids re-parsing
// tags on every request.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateStruct validates s against its `validate` tags.  It returns
// nil when valid, a *FormError for field failures, or the underlying
// error for anything unexpected (such as passing a non-struct).
func ValidateStruct(s interface{}) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fe := &FormError{fields: make([]FieldError, 0, len(verrs))}
	for _, v := range verrs {
		fe.fields = append(fe.fields, FieldError{
			Field:   v.Field(),
			Message: messageFor(v),
		})
	}
	return fe
}

// messageFor maps a validator tag failure to a user-facing message.
func messageFor(v validator.FieldError) string {
	name := displayName(v.Field())
	switch v.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", name, v.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", name)
	case "eqfield":
		return fmt.Sprintf("%s and %s must match", displayName(v.Param()), name)
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}

// displayName splits a CamelCase struct field into words, so
// "ConfirmPassword" renders as "Confirm Password".
func displayName(field string) string {
	var b strings.Builder
	for i, r := range field {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

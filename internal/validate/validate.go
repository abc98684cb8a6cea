// Package validate turns untrusted JSON input into typed, validated values.
//
// Every write path decodes into an input struct (unknown fields are dropped
// by decoding) and then runs struct-tag validation. Failures come back as a
// single *Error listing every violated field path, so callers can report all
// problems at once instead of one per round-trip.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Violation describes a single invalid field.
type Violation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Error aggregates all violations for one input object.
type Error struct {
	Violations []Violation `json:"violations"`
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Field + ": " + v.Reason
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsError returns the *Error inside err, if any.
func AsError(err error) (*Error, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

var v = newValidator()

func newValidator() *validator.Validate {
	vd := validator.New(validator.WithRequiredStructEnabled())
	// Report violations against JSON field names, not Go struct fields.
	vd.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return vd
}

// Struct validates a typed input value, returning *Error on violations.
func Struct(in any) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return err
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	out := &Error{}
	for _, fe := range ve {
		out.Violations = append(out.Violations, Violation{
			Field:  fieldPath(fe),
			Reason: reason(fe),
		})
	}
	return out
}

// Decode reads JSON from r into dst and validates it. A type mismatch during
// decoding is reported as a violation on the offending field rather than a
// bare unmarshal error.
func Decode(r io.Reader, dst any) error {
	if err := json.NewDecoder(r).Decode(dst); err != nil {
		var ute *json.UnmarshalTypeError
		if errors.As(err, &ute) {
			return &Error{Violations: []Violation{{
				Field:  ute.Field,
				Reason: fmt.Sprintf("wrong type: expected %s", ute.Type),
			}}}
		}
		return &Error{Violations: []Violation{{Field: "(body)", Reason: "malformed JSON"}}}
	}
	return Struct(dst)
}

// fieldPath strips the struct name prefix: "CreatePostInput.Platform" →
// "platform" using the json namespace when available.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "missing"
	case "oneof":
		return "not in enum [" + fe.Param() + "]"
	case "email":
		return "not a valid email address"
	case "url":
		return "not a valid URL"
	case "dive":
		return "invalid element"
	default:
		return "failed " + fe.Tag() + " constraint"
	}
}

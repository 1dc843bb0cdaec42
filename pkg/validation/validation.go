// Package validation holds the single contact-form schema shared by the
// server handler and the form client, so the two sides cannot drift. The
// schema is declared once as struct tags on domain.ContactRequest and checked
// here with a package-owned validator instance.
package validation

import (
	"reflect"
	"regexp"
	"sort"
	"strings"

	"fluxcapital-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Field names as they appear on the wire and in error maps.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldMessage = "message"
)

// Stricter than the validator builtin "email" tag: requires a dotted domain,
// so inputs like "a@b" are rejected the same way the public form rejects them.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]{2,}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json name so client and server error maps match.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	})

	return v
}

// Errors maps a field name to a human-readable message for every field that
// failed its constraint. All fields are checked; validation never stops at
// the first failure.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, f := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f + ": " + e[f])
	}
	return b.String()
}

// Validate checks a candidate request against the contact-form schema.
// On success it returns the validated submission; otherwise it returns an
// Errors map with one message per invalid field. It has no side effects and
// never mutates the input, so validating the same value twice yields the
// same result.
func Validate(req domain.ContactRequest) (domain.ContactSubmission, error) {
	if err := validate.Struct(req); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return domain.ContactSubmission{}, err
		}

		fieldErrs := make(Errors, len(verrs))
		for _, fe := range verrs {
			fieldErrs[fe.Field()] = messageFor(fe)
		}
		return domain.ContactSubmission{}, fieldErrs
	}

	return domain.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}, nil
}

// messageFor mirrors the copy shown under each field on the public form.
func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case FieldName:
		if fe.Tag() == "max" {
			return "Name too long"
		}
		return "Name must be at least 2 characters"
	case FieldEmail:
		return "Please enter a valid email address"
	case FieldMessage:
		if fe.Tag() == "max" {
			return "Message too long"
		}
		return "Message must be at least 10 characters"
	default:
		return "Invalid value"
	}
}

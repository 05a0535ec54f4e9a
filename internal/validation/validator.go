package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"appideas/internal/catalog"
	"appideas/internal/models"
)

// FieldError describes one rejected field, named by its JSON key.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error collects the field errors of a rejected payload. It matches
// models.ErrInvalidInput under errors.Is.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return strings.Join(parts, "; ")
}

// FieldMap returns the messages keyed by field.
func (e *Error) FieldMap() map[string]string {
	m := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		m[f.Field] = f.Message
	}
	return m
}

func (e *Error) Unwrap() error {
	return models.ErrInvalidInput
}

type Validator struct {
	validate *validator.Validate
}

// New returns a validator that checks category, technology and audience
// keys against cat.
func New(cat *catalog.Catalog) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "category", func(fl validator.FieldLevel) bool {
		return cat.IsCategory(catalog.CategoryKey(fl.Field().String()))
	})
	mustRegister(v, "technology", func(fl validator.FieldLevel) bool {
		return cat.IsTechnology(catalog.TechKey(fl.Field().String()))
	})
	mustRegister(v, "audience", func(fl validator.FieldLevel) bool {
		return cat.IsAudience(catalog.AudienceKey(fl.Field().String()))
	})

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// Struct validates s and returns an *Error listing every offending field.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fieldPath(fe),
			Message: message(fe),
		})
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "max":
		switch fe.Kind() {
		case reflect.String:
			return "must not be empty"
		case reflect.Slice:
			if fe.Tag() == "min" {
				return fmt.Sprintf("must have at least %s item(s)", fe.Param())
			}
			return fmt.Sprintf("must have at most %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be between %d and %d", models.MinComplexity, models.MaxComplexity)
	case "category":
		return fmt.Sprintf("unknown category %q", fe.Value())
	case "technology":
		return fmt.Sprintf("unknown technology %q", fe.Value())
	case "audience":
		return fmt.Sprintf("unknown audience %q", fe.Value())
	case "datetime":
		return "must be an ISO-8601 timestamp"
	}
	return fmt.Sprintf("failed %q validation", fe.Tag())
}

package components

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrUnknownVariant is returned for a variant tag outside a component's enumeration.
	ErrUnknownVariant = errors.New("unknown variant")
	// ErrOptionNotFound is returned when an interaction names an option the survey does not render.
	ErrOptionNotFound = errors.New("option not found")
	// ErrInvalidProps is returned for props that fail validation for any other reason.
	ErrInvalidProps = errors.New("invalid props")
)

// VariantError reports an out-of-enumeration variant tag.
type VariantError struct {
	// Component is the component that rejected the tag (e.g. "mobile-selection").
	Component string
	// Field is the props path of the offending value (e.g. "options[2].variant").
	Field   string
	Variant string
	Allowed []string
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("%s: %s %q is not one of [%s]", e.Component, e.Field, e.Variant, strings.Join(e.Allowed, " "))
}

func (e *VariantError) Unwrap() error {
	return ErrUnknownVariant
}

// PropsError reports a props field that failed validation.
type PropsError struct {
	Component string
	Field     string
	Tag       string
	Err       error
}

func (e *PropsError) Error() string {
	return fmt.Sprintf("%s: %s failed validation for tag '%s'", e.Component, e.Field, e.Tag)
}

func (e *PropsError) Unwrap() []error {
	return []error{ErrInvalidProps, e.Err}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateProps runs struct validation and converts the first failure into a
// VariantError (for "oneof" failures) or a PropsError.
func validateProps(component string, props any) error {
	err := validate.Struct(props)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return &PropsError{Component: component, Field: "props", Tag: "struct", Err: err}
	}

	fe := ves[0]
	field := propsFieldName(fe)
	if fe.Tag() == "oneof" {
		return &VariantError{
			Component: component,
			Field:     field,
			Variant:   fmt.Sprint(fe.Value()),
			Allowed:   strings.Fields(fe.Param()),
		}
	}
	return &PropsError{Component: component, Field: field, Tag: fe.Tag(), Err: err}
}

// propsFieldName turns "SurveyProps.Options[2].Variant" into "options[2].variant".
func propsFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

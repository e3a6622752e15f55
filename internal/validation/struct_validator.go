package validation

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// StructValidator checks struct tags on configuration and content types
type StructValidator struct {
	validate *validator.Validate
}

var (
	structValidator     *StructValidator
	structValidatorOnce sync.Once
)

var contentKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Structs returns the shared struct validator.
func Structs() *StructValidator {
	structValidatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("content_key", validateContentKey)
		structValidator = &StructValidator{validate: v}
	})
	return structValidator
}

// Struct validates s and returns a single error listing every failed field.
func (v *StructValidator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	fields := FormatValidationError(err)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fields[k])
	}
	return fmt.Errorf("%w: %s", ErrInvalidValue, strings.Join(parts, "; "))
}

// ErrInvalidValue is wrapped by struct validation failures.
var ErrInvalidValue = errors.New("invalid value")

// FormatValidationError maps each failed field to a readable message
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = err.Error()
		return errs
	}

	for _, e := range validationErrors {
		field := e.Namespace()
		switch e.Tag() {
		case "required":
			errs[field] = "is required"
		case "oneof":
			errs[field] = fmt.Sprintf("must be one of [%s]", e.Param())
		case "min", "gte":
			errs[field] = fmt.Sprintf("must be at least %s", e.Param())
		case "max", "lte":
			errs[field] = fmt.Sprintf("must be at most %s", e.Param())
		case "required_without":
			errs[field] = fmt.Sprintf("is required when %s is empty", e.Param())
		case "excluded_with":
			errs[field] = fmt.Sprintf("must be empty when %s is set", e.Param())
		case "content_key":
			errs[field] = "must be a lower_snake_case key"
		default:
			errs[field] = "invalid value"
		}
	}

	return errs
}

func validateContentKey(fl validator.FieldLevel) bool {
	return contentKeyPattern.MatchString(fl.Field().String())
}

package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour/styles"
	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// ValidationError captures a configuration validation issue.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("glamour_style", func(fl validator.FieldLevel) bool {
			_, ok := styles.DefaultStyles[fl.Field().String()]
			return ok
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks every field and joins the failures.
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Message: err.Error(), Err: err}
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, &ValidationError{
			Field:   fieldName(fe),
			Message: describe(fe),
			Err:     fe,
		})
	}
	return errors.Join(errs...)
}

var fieldKeys = map[string]string{
	"Theme":          "theme",
	"ThemeFile":      "theme_file",
	"DarkStyle":      "dark_style",
	"LightStyle":     "light_style",
	"SwipeThreshold": "swipe_threshold",
	"LogLevel":       "log_level",
}

func fieldName(fe validator.FieldError) string {
	if key, ok := fieldKeys[fe.Field()]; ok {
		return key
	}
	return strings.ToLower(fe.Field())
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fmt.Sprint(fe.Value()))
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "glamour_style":
		return fmt.Sprintf("unknown glamour style %q", fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

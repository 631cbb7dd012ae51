package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	customerrors "github.com/axellelanca/linkbundles/internal/errors"
)

// vanityPattern accepts one or more slash separated segments of word
// characters and dashes. Matching is case-insensitive; storage is lowercase.
var vanityPattern = regexp.MustCompile(`(?i)^([\w-])+(/([\w-])+)*$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
		// Registration only fails on an empty tag or nil func.
		_ = validate.RegisterValidation("vanityurl", func(fl validator.FieldLevel) bool {
			return IsValidVanityURL(fl.Field().String())
		})
	})
	return validate
}

// IsValidVanityURL reports whether s matches the vanity URL pattern.
func IsValidVanityURL(s string) bool {
	return vanityPattern.MatchString(s)
}

// Validate runs field-level validation on the bundle and returns
// customerrors.ValidationErrors describing every failing field.
func (b *LinkBundle) Validate() error {
	err := structValidator().Struct(b)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate link bundle: %w", err)
	}

	out := make(customerrors.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, &customerrors.ValidationError{
			Field:   fieldPath(fe.Namespace()),
			Message: describe(fe),
		})
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "vanityurl":
		return "must match [\\w-]+(/[\\w-]+)*"
	case "lowercase":
		return "must be lowercase"
	case "url":
		return "must be an absolute URL"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

// jsonFieldName makes validation errors report the JSON name of a field.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// fieldPath drops the root struct name: "LinkBundle.links[0].url" -> "links[0].url".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

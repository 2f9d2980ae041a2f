package config

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rileyhilliard/crmdash/internal/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their YAML key so messages match the config file.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the config for errors and returns a structured error
// describing the first problem found.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but crmdash only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade crmdash or regenerate the file with 'crmdash init --force'.")
	}

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Config could not be validated",
			"Check your .crmdash.yaml.")
	}

	fe := fieldErrs[0]
	key := fieldKey(fe)
	return errors.WrapWithCode(err, errors.ErrConfig,
		describe(key, fe),
		fmt.Sprintf("Check the '%s' section in your .crmdash.yaml.", section(key)))
}

// fieldKey turns "Config.animation.fps" into "animation.fps".
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func section(key string) string {
	return strings.SplitN(key, ".", 2)[0]
}

func describe(key string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("'%s' can't be empty", key)
	case "oneof":
		return fmt.Sprintf("'%s' is %v, expected one of: %s", key, fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte", "min":
		return fmt.Sprintf("'%s' is %v, must be at least %s", key, fe.Value(), fe.Param())
	case "lte", "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("'%s' has too many entries (max %s)", key, fe.Param())
		}
		return fmt.Sprintf("'%s' is %v, must be at most %s", key, fe.Value(), fe.Param())
	case "gt":
		return fmt.Sprintf("'%s' is %v, must be greater than %s", key, fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("'%s' is invalid (%s)", key, fe.Tag())
	}
}

package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

var validate = validator.New()

// Validate checks the configuration values. Failures wrap errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig)
	}

	var details strings.Builder
	for _, fe := range verrs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch fe.Tag() {
		case "oneof":
			fmt.Fprintf(&details, "%s must be one of [%s]", fe.Namespace(), fe.Param())
		case "min":
			fmt.Fprintf(&details, "%s must be at least %s", fe.Namespace(), fe.Param())
		case "max":
			fmt.Fprintf(&details, "%s must be at most %s", fe.Namespace(), fe.Param())
		default:
			fmt.Fprintf(&details, "%s failed %s validation", fe.Namespace(), fe.Tag())
		}
	}
	return fmt.Errorf("%s: %w", details.String(), errors.ErrInvalidConfig)
}

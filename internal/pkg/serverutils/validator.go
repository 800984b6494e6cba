package serverutils

import (
	"errors"
	"fmt"

	"interview-content-be/internal/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks struct tags and converts failures into the
// ValidationError the error middleware knows how to render.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.NewValidationError("invalid request payload")
	}

	warnings := make([]string, 0, len(verrs))
	for _, f := range verrs {
		warnings = append(warnings, fmt.Sprintf("field %s failed rule %s", f.Field(), f.Tag()))
	}
	return &apperror.ValidationError{
		Message:  "request validation failed",
		Warnings: warnings,
	}
}

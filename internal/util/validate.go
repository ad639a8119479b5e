package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/apperr"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs the tag-based rules of a request struct and
// folds failures into the field map of a ValidationError.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.NewValidationError(err.Error(), nil)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		if fe.Param() != "" {
			fields[name] = fmt.Sprintf("failed %s=%s constraint", fe.Tag(), fe.Param())
		} else {
			fields[name] = fmt.Sprintf("failed %s constraint", fe.Tag())
		}
	}
	return apperr.NewValidationError("request body failed validation", fields)
}

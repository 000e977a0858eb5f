package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/studentdesk/studentdesk-go/internal/apperror"
)

// validateStruct checks the validate tags on v and reports any violation as
// INVALID_PAYLOAD. Field details only go to the debug log.
func validateStruct(validate *validator.Validate, logger zerolog.Logger, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			logger.Debug().Str("field", fe.Field()).Str("rule", fe.Tag()).Msg("validation failed")
		}
	}

	return apperror.ErrInvalidPayload
}

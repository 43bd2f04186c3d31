// Package validate wraps a standalone go-playground validator engine
// and maps field failures onto the application error taxonomy.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "invtrack/internal/errors"
)

var engine = validator.New(validator.WithRequiredStructEnabled())

// Struct validates v against its struct tags, returning an
// INVALID_INPUT AppError naming the first failed field.
func Struct(v any) error {
	err := engine.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		msg := fmt.Sprintf("invalid %s: fails %q", strings.ToLower(fe.Field()), fe.Tag())
		return apperrors.WithMessage(apperrors.ErrInvalidInput, msg)
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err)
}

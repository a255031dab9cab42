package logic

import (
	"errors"
	"fmt"
)

// ErrLocked is returned when a prediction targets a fight whose card has
// already locked.
var ErrLocked = errors.New("predictions are locked for this card")

// ValidationError rejects bad input before any write reaches the store.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Validationf builds a *ValidationError with fmt formatting.
func Validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInternalServer  = errors.New("internal server error")
	ErrBadRequest      = errors.New("bad request")
	ErrNotFound        = errors.New("resource not found")
	ErrProfileRequired = errors.New("customer profile is required")
	ErrProfileExists   = errors.New("customer profile already exists")
)

var errorMap = map[error]int{
	ErrInternalServer:  http.StatusInternalServerError,
	ErrBadRequest:      http.StatusBadRequest,
	ErrNotFound:        http.StatusNotFound,
	ErrProfileRequired: http.StatusForbidden,
	ErrProfileExists:   http.StatusConflict,
}

// ValidationError reports a single rejected input field. It is recoverable:
// the caller corrects the field and retries.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"error"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Invalid builds a ValidationError for field.
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// AsValidation unwraps err into a ValidationError when it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// StatusCode maps an error to the HTTP status the handlers answer with.
func StatusCode(err error) int {
	if _, ok := AsValidation(err); ok {
		return http.StatusUnprocessableEntity
	}
	for sentinel, code := range errorMap {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return errorMap[ErrInternalServer]
}

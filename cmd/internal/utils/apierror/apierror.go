package apierror

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the error contract between services and routes. Every
// failure a caller can observe is one of these; routes serialize the value
// as-is with the carried HTTP code.
type ErrorResponse interface {
	error
	Code() int
	Kind() string
}

const (
	KindValidation        = "validation"
	KindNotFound          = "not_found"
	KindInvalidTransition = "invalid_transition"
	KindAuthorization     = "authorization"
	KindInternal          = "internal"
)

type apiError struct {
	HTTPCode  int    `json:"-"`
	ErrorKind string `json:"kind"`
	Message   string `json:"message"`
}

func (e *apiError) Error() string { return e.Message }
func (e *apiError) Code() int     { return e.HTTPCode }
func (e *apiError) Kind() string  { return e.ErrorKind }

var (
	InternalServerError = &apiError{http.StatusInternalServerError, KindInternal, "Something went wrong"}
	MalformedBodyError  = &apiError{http.StatusBadRequest, KindValidation, "Could not understand request body"}
	NotFoundError       = &apiError{http.StatusNotFound, KindNotFound, "Resource not found"}
	AuthorizationError  = &apiError{http.StatusForbidden, KindAuthorization, "Operation not permitted"}
)

func NewSimple(code int, message string) ErrorResponse {
	return &apiError{code, KindValidation, message}
}

func NewMissingParamError(name string) ErrorResponse {
	return &apiError{http.StatusBadRequest, KindValidation, fmt.Sprintf("Missing required parameter '%s'", name)}
}

func NewValidationError(message string) ErrorResponse {
	return &apiError{http.StatusBadRequest, KindValidation, message}
}

func NewNotFoundError(what string) ErrorResponse {
	return &apiError{http.StatusNotFound, KindNotFound, fmt.Sprintf("%s not found", what)}
}

func NewInvalidTransitionError(from, to string) ErrorResponse {
	return &apiError{
		http.StatusConflict,
		KindInvalidTransition,
		fmt.Sprintf("Cannot move appointment from '%s' to '%s'", from, to),
	}
}

// FromValidationError flattens validator.ValidationErrors into a single
// caller-facing message naming the first offending field.
func FromValidationError(err error) ErrorResponse {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		f := verrs[0]
		return &apiError{
			http.StatusBadRequest,
			KindValidation,
			fmt.Sprintf("Field '%s' failed validation '%s'", f.Field(), f.Tag()),
		}
	}
	return MalformedBodyError
}

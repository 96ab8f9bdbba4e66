package constants

import "net/http"

// CodedError carries the HTTP status a failure maps to. The client builds one
// from every non-2xx response; the mockapi error handler unwraps to the first
// CodedError in a chain to pick the response code.
type CodedError struct {
	code    int
	message string
}

func NewCodedError(code int, message string) *CodedError {
	return &CodedError{code: code, message: message}
}

func (e *CodedError) Error() string {
	return e.message
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrUnauthorized   = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrAdminRequired  = NewCodedError(http.StatusForbidden, "admin access required")
	ErrUserRequired   = NewCodedError(http.StatusForbidden, "user access required")
	ErrNotFound       = NewCodedError(http.StatusNotFound, "not found")
	ErrSessionMissing = NewCodedError(http.StatusUnauthorized, "no active session")
)

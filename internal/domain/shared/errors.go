package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	cause   error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap exposes the wrapped cause, if any
func (e *DomainError) Unwrap() error {
	return e.cause
}

// Is reports whether target is a DomainError carrying the same code.
// Errors derived through Wrap therefore match their sentinel.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Wrap returns a copy of e whose message is extended with the cause
func (e *DomainError) Wrap(cause error) *DomainError {
	if cause == nil {
		return e
	}
	return &DomainError{
		Code:    e.Code,
		Message: e.Message + ": " + cause.Error(),
		cause:   cause,
	}
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound      = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput  = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrBadRequest    = NewDomainError("BAD_REQUEST", "Bad request")
	ErrInternal      = NewDomainError("INTERNAL_ERROR", "Internal error")
)

package dto

import "net/http"

// API error codes. Every code starts with ERR_ and has a status in StatusByCode.
const (
	ErrCodeBadRequest         = "ERR_BAD_REQUEST"
	ErrCodeValidation         = "ERR_VALIDATION"
	ErrCodeInvalidJSON        = "ERR_INVALID_JSON"
	ErrCodeRequestTooLarge    = "ERR_REQUEST_TOO_LARGE"
	ErrCodeNotFound           = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists      = "ERR_ALREADY_EXISTS"
	ErrCodeInternal           = "ERR_INTERNAL"
	ErrCodeServiceUnavailable = "ERR_SERVICE_UNAVAILABLE"
)

// StatusByCode is the HTTP status sent with each API error code
var StatusByCode = map[string]int{
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeInvalidJSON:        http.StatusBadRequest,
	ErrCodeRequestTooLarge:    http.StatusRequestEntityTooLarge,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeAlreadyExists:      http.StatusConflict,
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
}

// DomainCodes translates the codes carried by domain and use-case errors.
// The use-case kinds come first; the INVALID_* codes only reach the
// transport when a value object error escapes unwrapped.
var DomainCodes = map[string]string{
	"BAD_REQUEST":    ErrCodeBadRequest,
	"ALREADY_EXISTS": ErrCodeAlreadyExists,
	"NOT_FOUND":      ErrCodeNotFound,
	"INTERNAL_ERROR": ErrCodeInternal,

	"INVALID_NUMBER": ErrCodeValidation,
	"INVALID_NAME":   ErrCodeValidation,
	"INVALID_TYPES":  ErrCodeValidation,
}

// GetHTTPStatus returns the status for code, 500 when the code is unknown
func GetHTTPStatus(code string) int {
	if status, ok := StatusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// NormalizeErrorCode maps a domain code to its API code. API codes and
// unrecognized codes are returned unchanged.
func NormalizeErrorCode(code string) string {
	if apiCode, ok := DomainCodes[code]; ok {
		return apiCode
	}
	return code
}

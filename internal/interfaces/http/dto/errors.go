package dto

import (
	"net/http"
	"strings"
)

// Error codes the API emits on its own, outside the domain layer
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeValidation is used when request validation fails
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeForbidden is used when the user lacks permission
	ErrCodeForbidden = "FORBIDDEN"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeInternal:     http.StatusInternalServerError,

	"ALREADY_EXISTS": http.StatusConflict,
	"CONFLICT":       http.StatusConflict,
	"DUPLICATE_ITEM": http.StatusConflict,

	// Business rule rejections -> 422 Unprocessable Entity
	"INSUFFICIENT_STOCK": http.StatusUnprocessableEntity,
	"PROCEDURE_REJECTED": http.StatusUnprocessableEntity,
	"INVALID_INPUT":      http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Field-level INVALID_* codes from entity constructors map to 422;
// anything unknown is an internal error.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

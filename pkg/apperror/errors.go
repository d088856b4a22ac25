package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Banner (BNR) ----

func ErrMalformedJSON(err error) *AppError {
	return Wrap("BNR_001", "Banner payload is not a JSON object", http.StatusBadRequest, err)
}

func ErrMissingField(key string, err error) *AppError {
	return Wrap("BNR_002", fmt.Sprintf("Banner field %q is required", key), http.StatusUnprocessableEntity, err)
}

func ErrTypeMismatch(key string, err error) *AppError {
	return Wrap("BNR_003", fmt.Sprintf("Banner field %q has the wrong type", key), http.StatusUnprocessableEntity, err)
}

func ErrNotFound(entity string) *AppError {
	return New("BNR_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrParcelDecode(err error) *AppError {
	return Wrap("BNR_005", "Banner parcel could not be decoded", http.StatusBadRequest, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an unexpected failure as a SYS_000 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_000", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}

// PayloadTooLarge is returned when the request body exceeds the configured limit.
func PayloadTooLarge() *AppError {
	return New("REQ_002", "Request body too large", http.StatusRequestEntityTooLarge)
}

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

// ---- Device identity (DEV) ----

func ErrMissingDevice() *AppError {
	return New("DEV_001", "Device identity missing", http.StatusUnauthorized)
}

func ErrInvalidDeviceToken() *AppError {
	return New("DEV_002", "Invalid or expired device token", http.StatusUnauthorized)
}

// ---- Wallet session (WALLET) ----

func ErrNoPendingChallenge() *AppError {
	return New("WALLET_001", "No pending connection request", http.StatusConflict)
}

func ErrInvalidWalletSignature() *AppError {
	return New("WALLET_002", "Wallet signature does not match address", http.StatusUnauthorized)
}

func ErrChallengeReplayed() *AppError {
	return New("WALLET_003", "Connection challenge has already been used", http.StatusForbidden)
}

func ErrWalletProvider(err error) *AppError {
	return Wrap("WALLET_004", "Wallet provider unavailable", http.StatusBadGateway, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- Validation (VAL) ----

func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrStreamUnsupported() *AppError {
	return New("SYS_002", "Request is not a websocket upgrade", http.StatusBadRequest)
}

package errors

import "fmt"

type ErrorCode string

const (
	ErrInvalidInput               ErrorCode = "invalid_input"
	ErrInvalidRequestData         ErrorCode = "invalid_request_data"
	ErrUnauthorized               ErrorCode = "unauthorized"
	ErrPasswordRequired           ErrorCode = "password_required"
	ErrTokenExpired               ErrorCode = "token_expired"
	ErrInvalidTokenFormat         ErrorCode = "invalid_token_format"
	ErrMissingAuthorizationHeader ErrorCode = "missing_authorization_header"
	ErrForbidden                  ErrorCode = "forbidden"
	ErrNotFound                   ErrorCode = "not_found"
	ErrAlreadyExists              ErrorCode = "already_exists"
	ErrInternalServer             ErrorCode = "internal_server"
)

// AppError is the error type returned by every service method. The wrapped
// error is kept server-side only; clients see Code and Message.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

package errors

import "errors"

// Codes shared between the domain and transport layers.
const (
	CodeInvalidInput       = "invalid_input"
	CodeSubmissionInFlight = "submission_in_flight"
	CodeUnknownModel       = "unknown_model"
	CodeBackendUnavailable = "backend_unavailable"
)

// AppError encodes domain specific error details.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches AppErrors by code so sentinel values work with errors.Is.
func (e *AppError) Is(target error) bool {
	var other *AppError
	if !errors.As(target, &other) {
		return false
	}
	return other.Code != "" && other.Code == e.Code
}

// Wrap produces a new AppError instance.
func Wrap(code, message string, err error) error {
	if err == nil {
		return &AppError{Code: code, Message: message}
	}
	return &AppError{Code: code, Message: message, Err: err}
}

// IsCode helps handler differentiate failures.
func IsCode(err error, code string) bool {
	return CodeOf(err) == code
}

// CodeOf returns the code of the first AppError in the chain, or "".
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// MessageOf returns the user facing message of an AppError without the wrapped cause.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

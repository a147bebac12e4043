package pkg

import "fmt"

// AppError is the application-level error carried from use cases to the
// HTTP boundary. Code is a stable machine-readable identifier; Message is
// safe to show clients; Err (when set) holds the internal cause and is only
// ever logged, never serialized.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

// HTTPError is the uniform failure envelope returned to clients.
type HTTPError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// ToHTTPError strips internals down to the client-facing envelope.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Success: false, Message: e.Message}
}

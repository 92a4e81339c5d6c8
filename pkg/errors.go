package pkg

import "fmt"

// AppError is the application-level error carried from use cases to the
// HTTP layer. Code is a stable machine-readable identifier, Message is
// safe to return to callers, Err (optional) keeps the original cause
// for operator logs only.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// HTTPError is the JSON body rendered for failed requests.

type HTTPError struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ToHTTPError strips the internal cause so stack traces and SDK detail
// never reach the caller.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Error: e.Message, Code: e.Code}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

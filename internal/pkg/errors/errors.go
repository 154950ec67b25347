package errors

import "fmt"

// AppError is the error shape every handler renders: a stable machine code,
// a human message and the HTTP status it maps to.
type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithDetails returns a copy carrying extra context, leaving the sentinel
// value untouched.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

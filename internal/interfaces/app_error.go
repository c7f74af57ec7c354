package interfaces

import "net/http"

// AppError is the single error shape the service layer returns for expected
// failures. Handlers translate it to a JSON body; anything that is not an
// AppError is treated as an internal error and never leaks its message.
type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func Validation(message string) *AppError {
	return &AppError{Status: http.StatusUnprocessableEntity, Code: "validation_error", Message: message}
}

// Authentication deliberately carries a generic message so callers cannot
// distinguish an unknown account from a wrong password.
func Authentication() *AppError {
	return &AppError{Status: http.StatusUnauthorized, Code: "authentication_failed", Message: "Authentication failed"}
}

func Conflict(message string) *AppError {
	return &AppError{Status: http.StatusUnprocessableEntity, Code: "conflict", Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Code: "not_found", Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Status: http.StatusForbidden, Code: "forbidden", Message: message}
}

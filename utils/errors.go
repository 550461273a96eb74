package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorKind classifies application errors so handlers can map them to
// HTTP statuses in one place.
type ErrorKind int

const (
	KindAuth ErrorKind = iota
	KindForbidden
	KindValidation
	KindNotFound
	KindFile
	KindInternal
)

// AppError is the error type services return to controllers.
type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func AuthError(message string) *AppError {
	return &AppError{Kind: KindAuth, Message: message}
}

func ForbiddenError(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

func NotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func FileError(message string) *AppError {
	return &AppError{Kind: KindFile, Message: message}
}

// ValidationError collects field-level failures under one 400 response.
// A single failure surfaces its own message as the envelope message.
func ValidationError(fields ...FieldError) *AppError {
	message := "Validation error"
	if len(fields) == 1 {
		message = fields[0].Message
	}
	return &AppError{Kind: KindValidation, Message: message, Fields: fields}
}

// InternalError wraps an unexpected failure. The cause is logged when
// rendered, never returned to the client.
func InternalError(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

func httpStatus(kind ErrorKind) int {
	switch kind {
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindValidation, KindFile:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Fail renders any error through the envelope. All controller error
// paths funnel through here.
func Fail(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = InternalError("Internal server error", err)
	}

	if appErr.Kind == KindInternal {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, appErr)
		FailStatus(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	FailStatus(c, httpStatus(appErr.Kind), appErr.Message, appErr.Fields)
}

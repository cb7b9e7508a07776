// Package httperr carries the error taxonomy shared by the four services and
// translates it to the uniform JSON error body at the HTTP boundary.
package httperr

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Error struct {
	Status  int
	Message string
	Details map[string]string
}

func (e *Error) Error() string { return e.Message }

func Validation(details map[string]string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: "Validation failed", Details: details}
}

func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// Upstream signals a remote dependency that stayed down after the retry budget.
func Upstream() *Error {
	return &Error{Status: http.StatusServiceUnavailable, Message: "Service temporarily unavailable. Please try again later."}
}

func Internal() *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "An unexpected error occurred"}
}

// body is the error shape every service returns, whatever the status.
type body struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
}

// Abort writes err as the uniform error body and stops the handler chain.
// Anything that is not an *Error is treated as internal: the cause is logged,
// the response stays generic.
func Abort(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		log.Println("❌ Internal error:", err)
		e = Internal()
	}

	c.AbortWithStatusJSON(e.Status, body{
		Timestamp: time.Now().UTC(),
		Status:    e.Status,
		Error:     http.StatusText(e.Status),
		Message:   e.Message,
		Details:   e.Details,
	})
}

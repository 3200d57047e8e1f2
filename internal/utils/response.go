package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse is the error and status body shape used across the API.
type MessageResponse struct {
	Message string `json:"message"`
}

// AppError carries an HTTP status and a machine code alongside the message.
// Handlers construct it at the failure site; RespondError translates it to a
// transport response exactly once, at the boundary.
type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, code, message string) *AppError {
	return &AppError{Status: status, Code: code, Message: message}
}

// Error constructors matching the four failure classes of the API.

func ValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, "VALIDATION_ERROR", message)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, "FORBIDDEN", message)
}

func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, "NOT_FOUND", message)
}

func StorageError(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, "STORAGE_ERROR", message)
}

func RespondError(c *gin.Context, err error) {
	appErr, ok := err.(*AppError)
	if !ok {
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Internal Server Error"})
		return
	}
	c.JSON(appErr.Status, MessageResponse{Message: appErr.Message})
}

func RespondOK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse is the standard success body for operations that do not
// return a record (e.g. deletes).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the standard error body: a human-readable message plus
// the underlying error detail when one exists.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Message sends a plain message body with the given status code.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageResponse{Message: message})
}

// Error sends a standardized error response. The underlying error is
// attached when non-nil so callers can display it.
func Error(c *gin.Context, statusCode int, message string, err error) {
	body := ErrorResponse{Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	c.AbortWithStatusJSON(statusCode, body)
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, resourceName string) {
	Error(c, http.StatusNotFound, resourceName+" not found", nil)
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request payload or parameters"
	}
	Error(c, http.StatusBadRequest, message, nil)
}

// InternalServerError sends a 500 with the upstream error attached.
func InternalServerError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "An unexpected error occurred on the server"
	}
	Error(c, http.StatusInternalServerError, message, err)
}

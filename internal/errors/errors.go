// Package errors provides the HTTP error response helpers. Every error body
// has the shape {"error": <message>} with a status from 400, 401, 403, 404
// or 500.
package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func respond(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// BadRequest sends a 400 response for malformed input or a violated state
// precondition.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	respond(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Unauthorized - Please sign in"
	}
	respond(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 response.
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied"
	}
	respond(c, http.StatusForbidden, message)
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	respond(c, http.StatusNotFound, message)
}

// InternalError sends a generic 500 response. Internals are logged by the
// caller, never leaked to the client.
func InternalError(c *gin.Context) {
	respond(c, http.StatusInternalServerError, "Internal server error")
}

// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response bodies follow the API contract: a top-level object with a
// "message" (or "error" for conflicts) key, or the resource itself.

func MessageResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func CreatedMessage(c *gin.Context, message string) {
	MessageResponse(c, http.StatusCreated, message)
}

func OKMessage(c *gin.Context, message string) {
	MessageResponse(c, http.StatusOK, message)
}

func BadRequestResponse(c *gin.Context, message string) {
	MessageResponse(c, http.StatusBadRequest, message)
}

func NotFoundResponse(c *gin.Context, message string) {
	MessageResponse(c, http.StatusNotFound, message)
}

func ConflictResponse(c *gin.Context, message string) {
	// The original contract reports conflicts as 400 with an "error" key.
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

func InternalErrorResponse(c *gin.Context, message string) {
	MessageResponse(c, http.StatusInternalServerError, message)
}

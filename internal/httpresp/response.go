package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soulsyync/soulsyync-api/internal/apperr"
)

// Envelope is the uniform response wrapper used by every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func OKMessage(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message})
}

func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Message: message})
}

// Error maps an operation error to its HTTP status. Errors that carry
// no apperr kind surface as 500 with the raw message.
func Error(c *gin.Context, err error) {
	kind, ok := apperr.KindOf(err)
	if !ok {
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	status := http.StatusInternalServerError
	switch kind {
	case apperr.KindValidation, apperr.KindConflict:
		status = http.StatusBadRequest
	case apperr.KindUnauthenticated:
		status = http.StatusUnauthorized
	case apperr.KindForbidden:
		status = http.StatusForbidden
	case apperr.KindNotFound:
		status = http.StatusNotFound
	}

	Fail(c, status, err.Error())
}

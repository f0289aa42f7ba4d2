package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/finmetrics/internal/domain/dto"
)

// ErrorHandler renders errors attached with c.Error() as a dto.ErrorResponse
// when the handler chain did not already write a body.
//
// The status is the one already set on the writer when it is an error status,
// otherwise 500.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	last := c.Errors.Last()
	c.JSON(status, dto.NewErrorResponse(http.StatusText(status), last.Err))
}

// AbortWithError stops the chain and writes a standard error body.
//
// Parameters:
//   - c (*gin.Context): the request context.
//   - status (int): HTTP status to send.
//   - message (string): message shown to the caller.
//   - err (error): optional cause; recorded on the context and copied to the body.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}

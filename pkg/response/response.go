package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response wrapping data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Unavailable writes a 503 response. data carries per-dependency detail.
func Unavailable(c *gin.Context, message string, data any) {
	c.JSON(http.StatusServiceUnavailable, Resp{
		ErrorCode: ErrorCodeUnavailable,
		Message:   message,
		Data:      data,
	})
}

// InternalError writes a 500 response without leaking the cause.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: ErrorCodeInternal,
		Message:   MessageInternalError,
	})
}

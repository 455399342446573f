package util

import (
	"errors"

	"github.com/gin-gonic/gin"
)

func SuccessResponse(data interface{}) gin.H {
	return gin.H{
		"success": true,
		"data":    data,
	}
}

// FailedResponse never exposes a wrapped cause, only kind and message.
func FailedResponse(err error) gin.H {
	message := INTERNAL_ERROR
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}
	return gin.H{
		"success": false,
		"error": gin.H{
			"kind":    KindOf(err),
			"message": message,
		},
	}
}

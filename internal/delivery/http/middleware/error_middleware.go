package middleware

import (
	"errors"
	"net/http"

	"portfolio-contact-api/internal/delivery/http/response"
	"portfolio-contact-api/pkg/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(err)
		}

		// Internal details stay in the log, the client only sees the message.
		if appErr.Code >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("request_id", response.RequestID(c)),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			response.Error(c, appErr.Code, apperror.MsgInternal)
			return
		}

		response.Error(c, appErr.Code, appErr.Message)
	}
}

package middleware

import (
	"io"
	"net/http"

	"portfolio-contact-api/internal/delivery/http/response"
	"portfolio-contact-api/pkg/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns a panic anywhere below it into a 500 with the generic
// message. The panic value and stack go to the zap logger only.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			zap.String("request_id", response.RequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
			zap.Stack("stack"))
		response.Error(c, http.StatusInternalServerError, apperror.MsgInternal)
		c.Abort()
	})
}

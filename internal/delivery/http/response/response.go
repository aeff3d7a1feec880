package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the JSON body of every contact API reply. Exactly one of
// Message or Error is set.
type Response struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Message: message})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Error: message})
}

// RequestID returns the id set by the request id middleware, if any.
func RequestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}

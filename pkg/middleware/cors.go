package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var baseHeaders = []string{"Content-Type", "Authorization", TraceIDHeader}

// CORSMiddleware answers preflight requests itself. An origin list containing "*"
// allows every origin. extraHeaders are allowed on top of the base set.
func CORSMiddleware(allowedOrigins []string, extraHeaders ...string) gin.HandlerFunc {
	allowedHeaders := strings.Join(append(append([]string(nil), baseHeaders...), extraHeaders...), ", ")
	allowAll := len(allowedOrigins) == 0
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowAll || allowed[origin]) {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
			h.Set("Access-Control-Allow-Headers", allowedHeaders)
			h.Set("Access-Control-Expose-Headers", TraceIDHeader+", Content-Disposition")
			h.Add("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

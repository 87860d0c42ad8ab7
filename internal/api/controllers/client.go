package controllers

import (
	"github.com/gin-gonic/gin"

	"safesteps/internal/capability"
)

const clientKey = "client"

// ClientMiddleware records what the caller's browser can do, as declared in the
// X-Client-Capabilities header.
func ClientMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(clientKey, capability.Parse(c.GetHeader("User-Agent"), c.GetHeader(capability.Header)))
		c.Next()
	}
}

// requestClient returns the capabilities recorded by ClientMiddleware. Without the
// middleware the client is treated as a desktop browser with no optional capabilities.
func requestClient(c *gin.Context) capability.Client {
	if v, ok := c.Get(clientKey); ok {
		if client, ok := v.(capability.Client); ok {
			return client
		}
	}
	return capability.Parse(c.GetHeader("User-Agent"), "")
}

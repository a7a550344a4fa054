package readonly

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message is returned for every blocked request.
const Message = "This action is disabled in read-only mode"

// Middleware blocks write operations when read-only mode is on.
// GET, HEAD and OPTIONS always pass, as do the health endpoints.
type Middleware struct {
	enabled bool
}

// NewMiddleware creates a read-only mode middleware.
func NewMiddleware(enabled bool) *Middleware {
	return &Middleware{enabled: enabled}
}

// IsEnabled returns whether read-only mode is active.
func (m *Middleware) IsEnabled() bool {
	return m.enabled
}

// Handler returns a Gin middleware that blocks write operations.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if isAllowedPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":     Message,
			"read_only": true,
		})
	}
}

func isAllowedPath(path string) bool {
	switch path {
	case "/health", "/ping":
		return true
	}
	return false
}

// ContextKeyReadOnly is the Gin context key holding the read-only flag.
const ContextKeyReadOnly = "read_only"

// InjectContext adds the read-only flag to the Gin context.
func (m *Middleware) InjectContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyReadOnly, m.enabled)
		c.Next()
	}
}

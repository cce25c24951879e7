package middleware

import (
	"strings"

	"broadcast-srv/pkg/response"
	"broadcast-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// token extracts the session token from the auth cookie, falling back to a
// Bearer Authorization header. The cookie is primary: the demo runs in a
// browser.
func (m Middleware) token(c *gin.Context) string {
	if cookie, err := c.Cookie(m.cookieConfig.Name); err == nil && cookie != "" {
		return cookie
	}

	const bearerPrefix = "Bearer "
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, bearerPrefix) {
		return strings.TrimSpace(authHeader[len(bearerPrefix):])
	}

	return ""
}

// Auth validates the session token and sets the payload in context.
// Unauthenticated requests get the 401 envelope.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := m.verify(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := scope.SetPayloadToContext(c.Request.Context(), payload)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// AuthRedirect validates the session token and redirects unauthenticated
// requests to the login route instead of returning 401.
func (m Middleware) AuthRedirect(location string) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := m.verify(c)
		if !ok {
			response.Redirect(c, location)
			c.Abort()
			return
		}

		ctx := scope.SetPayloadToContext(c.Request.Context(), payload)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func (m Middleware) verify(c *gin.Context) (scope.Payload, bool) {
	tokenString := m.token(c)
	if tokenString == "" {
		m.l.Warnf(c.Request.Context(), "Missing session token | Path: %s", c.Request.URL.Path)
		return scope.Payload{}, false
	}

	payload, err := m.jwtManager.Verify(tokenString)
	if err != nil {
		m.l.Warnf(c.Request.Context(), "Token verification failed: %v | Path: %s", err, c.Request.URL.Path)
		return scope.Payload{}, false
	}

	return payload, true
}

package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/axellelanca/linkbundles/internal/logger"
)

// Authenticate validates a bearer token when one is sent and stores the
// caller handle in the request context. Requests without a valid token
// continue anonymously; each operation decides whether that is enough.
func Authenticate(tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.Next()
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			logger.WithContext(c.Request.Context()).Debugf("ignoring bearer token: %v", err)
			c.Next()
			return
		}

		handle := Handle(claims.Provider, claims.Principal())
		c.Request = c.Request.WithContext(WithUserHandle(c.Request.Context(), handle))
		c.Set("user_handle", handle)
		c.Next()
	}
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"paletto-cards.backend/pkg/jwt"
	"paletto-cards.backend/pkg/logger"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// SessionIDKey is the context key for the admin session id
	SessionIDKey = "sessionId"
)

// SessionValidator checks a bearer token and its backing session record
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (*jwt.Claims, error)
}

// SessionAuthMiddleware gates admin routes: the bearer token must carry a
// valid signature and its session must still exist in the session store,
// so revocation takes effect before token expiry.
func SessionAuthMiddleware(validator SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header is required",
			})
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization format. Use: Bearer <token>",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := validator.ValidateSession(c.Request.Context(), tokenString)
		if err != nil {
			logger.Warn(c.Request.Context(), "rejected admin request",
				zap.String("path", c.Request.URL.Path), zap.Error(err))
			if errors.Is(err, jwt.ErrExpiredToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token has expired",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token",
			})
			return
		}

		c.Set(SessionIDKey, claims.SessionID)
		c.Next()
	}
}

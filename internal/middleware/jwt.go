package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xxxsen/accountd/internal/pkg/jwt"
	"github.com/xxxsen/accountd/internal/pkg/response"
)

const (
	ContextUserIDKey    = "user_id"
	ContextUserEmailKey = "user_email"
)

// JWTAuth validates the bearer token and, on success, unconditionally
// reissues a fresh token for the same subject in the response Authorization
// header. Every authenticated call therefore slides the session window.
func JWTAuth(secret []byte, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, http.StatusUnauthorized, "unauthorized", "missing authorization")
			c.Abort()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, http.StatusUnauthorized, "unauthorized", "invalid authorization")
			c.Abort()
			return
		}
		claims, err := jwt.ParseToken(parts[1], secret)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "unauthorized", "invalid token")
			c.Abort()
			return
		}
		renewed, err := jwt.GenerateToken(claims.UserID, claims.Email, secret, ttl)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "internal", "internal error")
			c.Abort()
			return
		}
		c.Writer.Header().Set("Authorization", "Bearer "+renewed)
		c.Set(ContextUserIDKey, claims.UserID)
		if claims.Email != "" {
			c.Set(ContextUserEmailKey, claims.Email)
		}
		c.Next()
	}
}

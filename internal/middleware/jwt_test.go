package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/xxxsen/accountd/internal/middleware"
	"github.com/xxxsen/accountd/internal/pkg/jwt"
)

func setupAuthRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.JWTAuth(secret, time.Hour))
	r.GET("/ping", func(c *gin.Context) {
		userID, _ := c.Get(middleware.ContextUserIDKey)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func TestJWTAuthMissingHeader(t *testing.T) {
	r := setupAuthRouter([]byte("test-secret"))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	r := setupAuthRouter([]byte("test-secret"))
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Basic abc")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestJWTAuthInvalidToken(t *testing.T) {
	r := setupAuthRouter([]byte("test-secret"))
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	secret := []byte("test-secret")
	r := setupAuthRouter(secret)
	token, err := jwt.GenerateToken(42, "a@x.com", secret, -time.Minute)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestJWTAuthReissuesToken(t *testing.T) {
	secret := []byte("test-secret")
	r := setupAuthRouter(secret)
	token, err := jwt.GenerateToken(42, "a@x.com", secret, time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	renewedHeader := resp.Header().Get("Authorization")
	require.True(t, strings.HasPrefix(renewedHeader, "Bearer "))
	claims, err := jwt.ParseToken(strings.TrimPrefix(renewedHeader, "Bearer "), secret)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "a@x.com", claims.Email)
	require.True(t, claims.ExpiresAt.After(time.Now().Add(59*time.Minute)))
}

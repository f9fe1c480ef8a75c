package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"paletto-cards.backend/pkg/jwt"
)

type stubValidator struct {
	claims *jwt.Claims
	err    error
	token  string
}

func (s *stubValidator) ValidateSession(_ context.Context, token string) (*jwt.Claims, error) {
	s.token = token
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

func protectedRouter(v SessionValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionAuthMiddleware(v))
	r.GET("/secret", func(c *gin.Context) {
		id, _ := c.Get(SessionIDKey)
		c.JSON(http.StatusOK, gin.H{"session": id})
	})
	return r
}

func TestSessionAuthMiddleware_MissingHeader(t *testing.T) {
	r := protectedRouter(&stubValidator{})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/secret", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuthMiddleware_BadFormat(t *testing.T) {
	r := protectedRouter(&stubValidator{})
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set(AuthorizationHeader, "Basic abc")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuthMiddleware_ExpiredToken(t *testing.T) {
	r := protectedRouter(&stubValidator{err: jwt.ErrExpiredToken})
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set(AuthorizationHeader, BearerPrefix+"stale")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "expired")
}

func TestSessionAuthMiddleware_InvalidToken(t *testing.T) {
	r := protectedRouter(&stubValidator{err: errors.New("bad signature")})
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set(AuthorizationHeader, BearerPrefix+"junk")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuthMiddleware_ValidTokenPasses(t *testing.T) {
	sessionID := uuid.New()
	v := &stubValidator{claims: &jwt.Claims{SessionID: sessionID, Role: jwt.AdminRole}}
	r := protectedRouter(v)
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set(AuthorizationHeader, BearerPrefix+"good-token")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "good-token", v.token)
	assert.Contains(t, rec.Body.String(), sessionID.String())
}

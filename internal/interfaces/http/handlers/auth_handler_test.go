package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"paletto-cards.backend/internal/domain/entities"
	domainerrors "paletto-cards.backend/internal/domain/errors"
	"paletto-cards.backend/internal/usecases"
	"paletto-cards.backend/pkg/jwt"
	"paletto-cards.backend/pkg/redis"
)

type settingRepoStub struct {
	values map[string]string
}

func (s *settingRepoStub) Get(_ context.Context, key string) (*entities.AdminSetting, error) {
	v, ok := s.values[key]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return &entities.AdminSetting{Key: key, Value: v}, nil
}

func (s *settingRepoStub) Upsert(_ context.Context, key, value string) error {
	if s.values == nil {
		s.values = map[string]string{}
	}
	s.values[key] = value
	return nil
}

type sessionStoreStub struct {
	sessions map[string]*redis.SessionData
}

func (s *sessionStoreStub) CreateSession(_ context.Context, id string, data *redis.SessionData, _ time.Duration) error {
	if s.sessions == nil {
		s.sessions = map[string]*redis.SessionData{}
	}
	s.sessions[id] = data
	return nil
}

func (s *sessionStoreStub) GetSession(_ context.Context, id string) (*redis.SessionData, error) {
	data, ok := s.sessions[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return data, nil
}

func (s *sessionStoreStub) DeleteSession(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func authRouter(settings *settingRepoStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := jwt.NewJWTService("test-secret", time.Hour)
	u := usecases.NewAuthUsecase(settings, svc, &sessionStoreStub{}, "paletto2024", time.Hour)
	h := NewAuthHandler(u)

	r := gin.New()
	r.POST("/api/auth", h.Login)
	r.PUT("/api/auth", h.ChangePassword)
	return r
}

func TestAuthHandler_LoginSuccess(t *testing.T) {
	rec := doJSON(t, authRouter(&settingRepoStub{}), http.MethodPost, "/api/auth", map[string]string{
		"password": "paletto2024",
	})
	expectStatus(t, rec, http.StatusOK)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])
}

func TestAuthHandler_LoginWrongPassword(t *testing.T) {
	rec := doJSON(t, authRouter(&settingRepoStub{}), http.MethodPost, "/api/auth", map[string]string{
		"password": "nope",
	})
	expectStatus(t, rec, http.StatusUnauthorized)
	assert.Equal(t, "UNAUTHORIZED", decodeBody(t, rec)["code"])
}

func TestAuthHandler_LoginMissingPassword(t *testing.T) {
	rec := doJSON(t, authRouter(&settingRepoStub{}), http.MethodPost, "/api/auth", map[string]string{})
	expectStatus(t, rec, http.StatusBadRequest)
}

func TestAuthHandler_LoginUsesStoredHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("rotated"), bcrypt.MinCost)
	require.NoError(t, err)
	settings := &settingRepoStub{values: map[string]string{
		entities.AdminSettingKeyPasswordHash: string(hash),
	}}
	r := authRouter(settings)

	rec := doJSON(t, r, http.MethodPost, "/api/auth", map[string]string{"password": "rotated"})
	expectStatus(t, rec, http.StatusOK)

	// The fallback no longer authenticates once a hash is stored.
	rec = doJSON(t, r, http.MethodPost, "/api/auth", map[string]string{"password": "paletto2024"})
	expectStatus(t, rec, http.StatusUnauthorized)
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	settings := &settingRepoStub{}
	r := authRouter(settings)

	rec := doJSON(t, r, http.MethodPut, "/api/auth", map[string]string{
		"currentPassword": "paletto2024",
		"newPassword":     "much-stronger-secret",
	})
	expectStatus(t, rec, http.StatusOK)
	assert.Contains(t, settings.values, entities.AdminSettingKeyPasswordHash)

	rec = doJSON(t, r, http.MethodPost, "/api/auth", map[string]string{"password": "much-stronger-secret"})
	expectStatus(t, rec, http.StatusOK)
}

func TestAuthHandler_ChangePasswordWrongCurrent(t *testing.T) {
	rec := doJSON(t, authRouter(&settingRepoStub{}), http.MethodPut, "/api/auth", map[string]string{
		"currentPassword": "guess",
		"newPassword":     "much-stronger-secret",
	})
	expectStatus(t, rec, http.StatusUnauthorized)
}

func TestAuthHandler_ChangePasswordTooShort(t *testing.T) {
	rec := doJSON(t, authRouter(&settingRepoStub{}), http.MethodPut, "/api/auth", map[string]string{
		"currentPassword": "paletto2024",
		"newPassword":     "short",
	})
	expectStatus(t, rec, http.StatusBadRequest)
}

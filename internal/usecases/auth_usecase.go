package usecases

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"paletto-cards.backend/internal/domain/entities"
	domainerrors "paletto-cards.backend/internal/domain/errors"
	"paletto-cards.backend/internal/domain/repositories"
	"paletto-cards.backend/pkg/crypto"
	"paletto-cards.backend/pkg/jwt"
	"paletto-cards.backend/pkg/logger"
	"paletto-cards.backend/pkg/redis"
)

// SessionStore abstracts the redis-backed session store for testing
type SessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// AuthUsecase implements the admin access gate: a single shared secret
// resolved from the settings store (bcrypt hash) with an
// operator-configured fallback, issuing signed session tokens on accept.
type AuthUsecase struct {
	settings         repositories.SettingRepository
	jwtService       *jwt.JWTService
	sessions         SessionStore
	fallbackPassword string
	sessionTTL       time.Duration
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	settings repositories.SettingRepository,
	jwtService *jwt.JWTService,
	sessions SessionStore,
	fallbackPassword string,
	sessionTTL time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		settings:         settings,
		jwtService:       jwtService,
		sessions:         sessions,
		fallbackPassword: fallbackPassword,
		sessionTTL:       sessionTTL,
	}
}

// Login validates the candidate secret and issues a session token
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput, clientIP string) (*entities.AuthResponse, error) {
	if !u.verifySecret(ctx, input.Password) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	sessionID := uuid.New()
	token, expiresAt, err := u.jwtService.GenerateToken(sessionID)
	if err != nil {
		return nil, err
	}

	data := &redis.SessionData{CreatedAt: time.Now(), ClientIP: clientIP}
	if err := u.sessions.CreateSession(ctx, sessionID.String(), data, u.sessionTTL); err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// ChangePassword validates the current secret via the same priority
// chain as Login, then stores a fresh bcrypt hash, overwriting any prior
// one. After rotation the old secret no longer authenticates.
func (u *AuthUsecase) ChangePassword(ctx context.Context, input *entities.ChangePasswordInput) error {
	if !u.verifySecret(ctx, input.CurrentPassword) {
		return domainerrors.ErrInvalidCredentials
	}

	hash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	if err := u.settings.Upsert(ctx, entities.AdminSettingKeyPasswordHash, hash); err != nil {
		return domainerrors.NewAppError(http.StatusInternalServerError, domainerrors.CodeInternalError, "failed to store new password", err)
	}
	return nil
}

// ValidateSession checks a bearer token and its backing session record
func (u *AuthUsecase) ValidateSession(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	if _, err := u.sessions.GetSession(ctx, claims.SessionID.String()); err != nil {
		return nil, domainerrors.ErrUnauthorized
	}
	return claims, nil
}

// verifySecret resolves the accepted secret in priority order: the
// stored bcrypt hash when present, otherwise the operator fallback. A
// stored hash disables the fallback, so rotation invalidates prior
// secrets.
func (u *AuthUsecase) verifySecret(ctx context.Context, candidate string) bool {
	setting, err := u.settings.Get(ctx, entities.AdminSettingKeyPasswordHash)
	if err == nil {
		return crypto.CheckPassword(candidate, setting.Value)
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		logger.Warn(ctx, "settings store unavailable, using fallback admin secret", zap.Error(err))
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(u.fallbackPassword)) == 1
}

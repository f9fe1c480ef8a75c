package repositories

import (
	"context"

	"paletto-cards.backend/internal/domain/entities"
)

// MemberRepository defines member aggregate data operations. Implementations
// exist for the relational store and for the file-backed local store; the
// backend is chosen at composition time.
type MemberRepository interface {
	// List returns all members in creation order (oldest first).
	List(ctx context.Context) ([]*entities.Member, error)
	// GetByID returns the member aggregate or domainerrors.ErrNotFound.
	GetByID(ctx context.Context, id string) (*entities.Member, error)
	Create(ctx context.Context, member *entities.Member) error
	// Update performs full replacement of the scalar profile row and of the
	// skill and social link child sets.
	Update(ctx context.Context, member *entities.Member) error
	// Delete removes the member and cascades to its children.
	Delete(ctx context.Context, id string) error
}

// SettingRepository defines access to the admin settings store
type SettingRepository interface {
	// Get returns the setting for key or domainerrors.ErrNotFound.
	Get(ctx context.Context, key string) (*entities.AdminSetting, error)
	// Upsert inserts or overwrites the setting for key.
	Upsert(ctx context.Context, key, value string) error
}

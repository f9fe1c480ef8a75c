package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"paletto-cards.backend/internal/domain/entities"
	domainerrors "paletto-cards.backend/internal/domain/errors"
)

func TestSettingRepository_GetMissing(t *testing.T) {
	db := newTestDB(t)
	createAdminSettingTable(t, db)
	repo := NewSettingRepository(db)

	_, err := repo.Get(context.Background(), entities.AdminSettingKeyPasswordHash)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestSettingRepository_UpsertInsertThenOverwrite(t *testing.T) {
	db := newTestDB(t)
	createAdminSettingTable(t, db)
	repo := NewSettingRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, entities.AdminSettingKeyPasswordHash, "hash-v1"))

	got, err := repo.Get(ctx, entities.AdminSettingKeyPasswordHash)
	require.NoError(t, err)
	assert.Equal(t, "hash-v1", got.Value)
	assert.True(t, got.UpdatedAt.Valid)

	require.NoError(t, repo.Upsert(ctx, entities.AdminSettingKeyPasswordHash, "hash-v2"))

	got, err = repo.Get(ctx, entities.AdminSettingKeyPasswordHash)
	require.NoError(t, err)
	assert.Equal(t, "hash-v2", got.Value, "upsert must overwrite the prior hash")
}

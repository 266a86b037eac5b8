package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberias/internal/auth"
	"github.com/BruksfildServices01/barberias/internal/infra/memstore"
)

func TestSeedDemo(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	require.NoError(t, SeedDemo(ctx, store.Tenants(), store.Barbers(), store.Services(), "clave", zap.NewNop()))

	tn, err := store.Tenants().FindActiveBySlug(ctx, "principal")
	require.NoError(t, err)

	list, err := store.Barbers().ListActive(ctx, tn.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana", list[0].Name)
	assert.NotNil(t, list[0].Weekly())

	admin, err := store.Barbers().FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())
	assert.NoError(t, auth.VerifyPassword("clave", admin.PasswordHash))

	services, err := store.Services().ListActiveByBarber(ctx, tn.ID, list[1].ID)
	require.NoError(t, err)
	assert.Len(t, services, 3)

	// slugs are unique
	assert.Error(t, SeedDemo(ctx, store.Tenants(), store.Barbers(), store.Services(), "clave", zap.NewNop()))
}

package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-agro/internal/infrastructure/sqlite"
)

func TestStateStore_UpsertYCarga(t *testing.T) {
	ctx := context.Background()
	s, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.Load(ctx, "movimientos")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save(ctx, "movimientos", []byte(`[]`)))
	require.NoError(t, s.Save(ctx, "movimientos", []byte(`[{"id":1}]`)))

	got, ok, err := s.Load(ctx, "movimientos")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, string(got))
}

func TestStateStore_SaveAllPersisteEntreAperturas(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "datos", "inventario.db")

	s, err := sqlite.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveAll(ctx, map[string][]byte{
		"productos": []byte(`[{"codigo":"H01"}]`),
		"alertas":   []byte(`[]`),
	}))
	require.NoError(t, s.Close())

	s, err = sqlite.Open(path)
	require.NoError(t, err)
	defer s.Close()
	for _, key := range []string{"productos", "alertas"} {
		_, ok, err := s.Load(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok, key)
	}
}

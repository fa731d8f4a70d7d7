package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-agro/internal/infrastructure/memory"
)

func TestStateStore_GuardaCopias(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStateStore()

	_, ok, err := s.Load(ctx, "productos")
	require.NoError(t, err)
	assert.False(t, ok)

	value := []byte(`[1]`)
	require.NoError(t, s.Save(ctx, "productos", value))
	value[1] = '9'

	got, ok, err := s.Load(ctx, "productos")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[1]`, string(got), "el store no comparte el slice del llamador")
	assert.Equal(t, []string{"productos"}, s.Keys())
}

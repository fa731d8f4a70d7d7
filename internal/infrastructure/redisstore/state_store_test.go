package redisstore_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-agro/internal/infrastructure/redisstore"
)

// Requiere un Redis real: REDIS_TEST_ADDR=localhost:6379 go test ./internal/infrastructure/redisstore/
func TestStateStore_Redis(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR no definido")
	}
	ctx := context.Background()
	s, err := redisstore.Connect(ctx, redisstore.Options{Addr: addr, Prefix: "inventario-test:" + t.Name() + ":"})
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.Load(ctx, "productos")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SaveAll(ctx, map[string][]byte{"productos": []byte(`[]`), "alertas": []byte(`[1]`)}))
	got, ok, err := s.Load(ctx, "alertas")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[1]`, string(got))
}

func TestConnect_SinDireccion(t *testing.T) {
	_, err := redisstore.Connect(context.Background(), redisstore.Options{})
	assert.Error(t, err)
}

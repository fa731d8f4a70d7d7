package objectstore_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-agro/internal/infrastructure/objectstore"
)

// Requiere un MinIO real:
// MINIO_TEST_ENDPOINT=localhost:9000 MINIO_TEST_ACCESS_KEY=minioadmin MINIO_TEST_SECRET_KEY=minioadmin go test ./internal/infrastructure/objectstore/
func TestStateStore_MinIO(t *testing.T) {
	endpoint := os.Getenv("MINIO_TEST_ENDPOINT")
	if endpoint == "" {
		t.Skip("MINIO_TEST_ENDPOINT no definido")
	}
	ctx := context.Background()
	s, err := objectstore.Connect(ctx, objectstore.Options{
		Endpoint:  endpoint,
		AccessKey: os.Getenv("MINIO_TEST_ACCESS_KEY"),
		SecretKey: os.Getenv("MINIO_TEST_SECRET_KEY"),
		Bucket:    "inventario-test",
		Prefix:    t.Name() + "/",
	})
	require.NoError(t, err)

	_, ok, err := s.Load(ctx, "inexistente")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save(ctx, "movimientos", []byte(`[{"id":1}]`)))
	require.NoError(t, s.Save(ctx, "movimientos", []byte(`[{"id":2}]`)))
	got, ok, err := s.Load(ctx, "movimientos")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":2}]`, string(got))
}

func TestConnect_SinEndpointOBucket(t *testing.T) {
	_, err := objectstore.Connect(context.Background(), objectstore.Options{Bucket: "b"})
	assert.Error(t, err)
	_, err = objectstore.Connect(context.Background(), objectstore.Options{Endpoint: "localhost:9000"})
	assert.Error(t, err)
}

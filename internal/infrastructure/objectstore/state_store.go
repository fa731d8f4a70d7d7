// Package objectstore StateStore sobre un bucket S3/MinIO: un objeto <prefijo><clave>.json por clave.
package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jhoicas/inventario-agro/internal/domain/repository"
)

var _ repository.StateStore = (*StateStore)(nil)

// Options conexión a MinIO.
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Prefix    string
}

// StateStore guarda cada clave como objeto JSON.
type StateStore struct {
	client *minio.Client
	bucket string
	prefix string
}

// Connect crea el cliente y el bucket si no existe.
func Connect(ctx context.Context, opts Options) (*StateStore, error) {
	if opts.Endpoint == "" || opts.Bucket == "" {
		return nil, fmt.Errorf("objectstore: MINIO_ENDPOINT y MINIO_BUCKET son obligatorios")
	}
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("objectstore: cliente: %w", err)
	}
	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("objectstore: verificar bucket %s: %w", opts.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("objectstore: crear bucket %s: %w", opts.Bucket, err)
		}
	}
	return &StateStore{client: client, bucket: opts.Bucket, prefix: opts.Prefix}, nil
}

// Save sube el objeto completo.
func (s *StateStore) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.object(key), bytes.NewReader(value), int64(len(value)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("objectstore: put %s: %w", key, err)
	}
	return nil
}

// Load descarga el objeto; ok=false si no existe (NoSuchKey).
func (s *StateStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object(key), minio.GetObjectOptions{})
	if err != nil {
		return nil, false, fmt.Errorf("objectstore: get %s: %w", key, err)
	}
	defer func() { _ = obj.Close() }()
	b, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("objectstore: leer %s: %w", key, err)
	}
	return b, true, nil
}

func (s *StateStore) object(key string) string {
	return s.prefix + key + ".json"
}

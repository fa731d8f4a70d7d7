// Package statestore elige el adaptador de persistencia según STORE_DRIVER.
package statestore

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-agro/internal/domain/repository"
	"github.com/jhoicas/inventario-agro/internal/infrastructure/filestore"
	"github.com/jhoicas/inventario-agro/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-agro/internal/infrastructure/objectstore"
	"github.com/jhoicas/inventario-agro/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-agro/internal/infrastructure/redisstore"
	"github.com/jhoicas/inventario-agro/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-agro/pkg/config"
)

// Open construye el StateStore configurado. close libera conexiones; nunca es nil.
func Open(ctx context.Context, cfg *config.Config) (store repository.StateStore, close func() error, err error) {
	noop := func() error { return nil }

	switch cfg.Store.Driver {
	case config.StoreMemory:
		return memory.NewStateStore(), noop, nil

	case config.StoreFile:
		s, err := filestore.NewStateStore(cfg.Store.Dir)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil

	case config.StoreSQLite:
		s, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, noop, fmt.Errorf("postgres: %w", err)
		}
		s, err := postgres.NewStateRepository(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, noop, err
		}
		return s, func() error { pool.Close(); return nil }, nil

	case config.StoreRedis:
		s, err := redisstore.Connect(ctx, redisstore.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil

	case config.StoreMinio:
		s, err := objectstore.Connect(ctx, objectstore.Options{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			Bucket:    cfg.Minio.Bucket,
			UseSSL:    cfg.Minio.UseSSL,
		})
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	}
	return nil, noop, fmt.Errorf("store driver %q no soportado", cfg.Store.Driver)
}

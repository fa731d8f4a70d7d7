// Package redisstore StateStore sobre Redis: SET/GET de cada clave bajo un prefijo.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/inventario-agro/internal/domain/repository"
)

var (
	_ repository.StateStore      = (*StateStore)(nil)
	_ repository.StateBatchSaver = (*StateStore)(nil)
)

// Options conexión a Redis.
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string // ej: "inventario:"
}

// StateStore guarda cada clave como string Redis sin expiración.
type StateStore struct {
	client redis.UniversalClient
	prefix string
}

// Connect crea el cliente y verifica la conexión con PING.
func Connect(ctx context.Context, opts Options) (*StateStore, error) {
	if opts.Addr == "" {
		return nil, fmt.Errorf("redisstore: REDIS_ADDR no configurado")
	}
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     4,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redisstore: no se pudo conectar a %s: %w", opts.Addr, err)
	}
	return New(client, opts.Prefix), nil
}

// New envuelve un cliente existente.
func New(client redis.UniversalClient, prefix string) *StateStore {
	return &StateStore{client: client, prefix: prefix}
}

// Save SET sin TTL.
func (s *StateStore) Save(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redisstore: set %s: %w", key, err)
	}
	return nil
}

// SaveAll escribe todas las claves en un MULTI/EXEC.
func (s *StateStore) SaveAll(ctx context.Context, values map[string][]byte) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for key, value := range values {
			pipe.Set(ctx, s.prefix+key, value, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redisstore: multi set: %w", err)
	}
	return nil
}

// Load GET; ok=false ante redis.Nil.
func (s *StateStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redisstore: get %s: %w", key, err)
	}
	return b, true, nil
}

// Close cierra el cliente.
func (s *StateStore) Close() error {
	return s.client.Close()
}

package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-agro/internal/domain/entity"
	"github.com/jhoicas/inventario-agro/internal/domain/repository"
)

var (
	_ repository.StateStore      = (*StateRepo)(nil)
	_ repository.StateBatchSaver = (*StateRepo)(nil)
	_ repository.StockTotaler    = (*StateRepo)(nil)
)

// Querier lo que comparten *pgxpool.Pool y pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const schema = `
CREATE TABLE IF NOT EXISTS state (
	key         TEXT PRIMARY KEY,
	payload     BYTEA NOT NULL,
	stock_total NUMERIC(18,2),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const upsert = `
INSERT INTO state (key, payload, stock_total, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (key) DO UPDATE
SET payload = EXCLUDED.payload, stock_total = EXCLUDED.stock_total, updated_at = now()`

// StateRepo StateStore sobre la tabla state. stock_total solo se llena para la clave de productos
// y permite consultar el total de stock desde SQL sin decodificar el JSON.
type StateRepo struct {
	pool *pgxpool.Pool
}

// NewStateRepository construye el adaptador y asegura el esquema.
func NewStateRepository(ctx context.Context, pool *pgxpool.Pool) (*StateRepo, error) {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("crear tabla state: %w", err)
	}
	return &StateRepo{pool: pool}, nil
}

// Save inserta o actualiza la clave.
func (r *StateRepo) Save(ctx context.Context, key string, value []byte) error {
	return save(ctx, r.pool, key, value)
}

// SaveAll guarda varias claves en una sola transacción (Commit o Rollback).
func (r *StateRepo) SaveAll(ctx context.Context, values map[string][]byte) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for key, value := range values {
		if err := save(ctx, tx, key, value); err != nil {
			return err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Load lee la clave; ok=false si no existe.
func (r *StateRepo) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx, `SELECT payload FROM state WHERE key = $1`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get state %s: %w", key, err)
	}
	return payload, true, nil
}

// StockTotal total guardado junto al último snapshot de productos.
func (r *StateRepo) StockTotal(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.pool.QueryRow(ctx, `SELECT stock_total FROM state WHERE key = $1`, repository.KeyProducts).Scan(&total)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, fmt.Errorf("get stock_total: %w", err)
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func save(ctx context.Context, q Querier, key string, value []byte) error {
	var total *decimal.Decimal
	if key == repository.KeyProducts {
		total = stockTotal(value)
	}
	if _, err := q.Exec(ctx, upsert, key, value, total); err != nil {
		return fmt.Errorf("upsert state %s: %w", key, err)
	}
	return nil
}

// stockTotal suma el stock del snapshot; nil si el JSON no es una lista de productos.
func stockTotal(raw []byte) *decimal.Decimal {
	var products []entity.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil
	}
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(decimal.NewFromFloat(p.Stock))
	}
	total = total.Round(2)
	return &total
}

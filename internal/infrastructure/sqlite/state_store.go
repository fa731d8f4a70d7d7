// Package sqlite StateStore sobre una tabla SQLite (sqlx + driver modernc, sin cgo).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // driver sqlite en Go puro

	"github.com/jhoicas/inventario-agro/internal/domain/repository"
)

var (
	_ repository.StateStore      = (*StateStore)(nil)
	_ repository.StateBatchSaver = (*StateStore)(nil)
)

const upsert = `INSERT INTO state (key, payload, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`

const schema = `CREATE TABLE IF NOT EXISTS state (
	key        TEXT PRIMARY KEY,
	payload    BLOB NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

// StateStore una fila por clave en la tabla state.
type StateStore struct {
	db *sqlx.DB
}

// Open abre (o crea) la base en path y asegura el esquema. ":memory:" sirve para tests.
func Open(path string) (*StateStore, error) {
	if path == "" {
		path = "inventario.db"
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("sqlite: crear directorios: %w", err)
		}
	}
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: abrir %s: %w", path, err)
	}
	// una sola conexión: ":memory:" es por conexión y la sesión ya serializa las escrituras
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: crear tabla state: %w", err)
	}
	return &StateStore{db: db}, nil
}

// Save inserta o reemplaza el valor de la clave.
func (s *StateStore) Save(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, upsert, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("sqlite: guardar %s: %w", key, err)
	}
	return nil
}

// SaveAll guarda varias claves en una transacción.
func (s *StateStore) SaveAll(ctx context.Context, values map[string][]byte) (retErr error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	now := time.Now().UTC()
	for key, value := range values {
		if _, err := tx.ExecContext(ctx, upsert, key, value, now); err != nil {
			return fmt.Errorf("sqlite: guardar %s: %w", key, err)
		}
	}
	return tx.Commit()
}

// Load devuelve el valor de la clave; ok=false si no hay fila.
func (s *StateStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := s.db.GetContext(ctx, &payload, `SELECT payload FROM state WHERE key = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("sqlite: cargar %s: %w", key, err)
	}
	return payload, true, nil
}

// Close cierra la base.
func (s *StateStore) Close() error {
	return s.db.Close()
}

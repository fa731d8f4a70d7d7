// Package filestore StateStore sobre archivos: un <clave>.json por clave en un directorio.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/jhoicas/inventario-agro/internal/domain"
	"github.com/jhoicas/inventario-agro/internal/domain/repository"
)

var _ repository.StateStore = (*StateStore)(nil)

var validKey = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// StateStore guarda cada clave en dir/<clave>.json. La escritura es atómica (archivo temporal + rename).
type StateStore struct {
	dir string
}

// NewStateStore crea el directorio si no existe.
func NewStateStore(dir string) (*StateStore, error) {
	if dir == "" {
		dir = "state"
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("filestore: crear directorio %s: %w", dir, err)
	}
	return &StateStore{dir: dir}, nil
}

// Save escribe el valor completo de la clave.
func (s *StateStore) Save(_ context.Context, key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("filestore: temporal: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("filestore: escribir %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("filestore: cerrar %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("filestore: rename %s: %w", key, err)
	}
	return nil
}

// Load lee la clave; ok=false si el archivo no existe.
func (s *StateStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, false, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("filestore: leer %s: %w", key, err)
	}
	return b, true, nil
}

func (s *StateStore) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("%w: clave %q", domain.ErrInvalidInput, key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

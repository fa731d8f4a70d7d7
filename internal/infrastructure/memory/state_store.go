// Package memory StateStore en memoria para tests y ejecuciones efímeras.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/inventario-agro/internal/domain/repository"
)

var _ repository.StateStore = (*StateStore)(nil)

// StateStore mapa clave → bytes protegido por mutex.
type StateStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewStateStore construye un store vacío.
func NewStateStore() *StateStore {
	return &StateStore{values: make(map[string][]byte)}
}

// Save guarda una copia del valor.
func (s *StateStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Load devuelve una copia del valor; ok=false si la clave no existe.
func (s *StateStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Keys claves guardadas (orden no definido).
func (s *StateStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.values))
	for k := range s.values {
		out = append(out, k)
	}
	return out
}

package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/inventario-agro/internal/application/dto"
	"github.com/jhoicas/inventario-agro/internal/domain"
	"github.com/jhoicas/inventario-agro/internal/domain/entity"
	"github.com/jhoicas/inventario-agro/internal/domain/repository"
)

// Backup respaldo completo: productos, movimientos y alertas.
func (s *Session) Backup() dto.BackupDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	return dto.BackupDTO{
		Products:  s.store.Snapshot(),
		Movements: s.ledger.Movements(),
		Alerts:    s.alertsCopy(),
		Date:      s.opts.Now(),
	}
}

// BackupFilename nombre de descarga del respaldo (respaldo_inventario_YYYY-MM-DD.json).
func (s *Session) BackupFilename() string {
	return fmt.Sprintf("respaldo_inventario_%s.json", s.opts.Now().Format("2006-01-02"))
}

// RestoreResult colecciones reemplazadas por la restauración.
type RestoreResult struct {
	Products  int  `json:"productos"`
	Movements int  `json:"movimientos"`
	Alerts    int  `json:"alertas"`
	Replaced  bool `json:"reemplazado"`
}

// Restore sobrescribe el estado con las colecciones presentes en el respaldo y persiste las tres claves.
// Sin confirm devuelve ErrConfirmationRequired y no cambia nada.
func (s *Session) Restore(ctx context.Context, in dto.RestoreBackupRequest, confirm bool) (RestoreResult, error) {
	if !confirm {
		return RestoreResult{}, domain.ErrConfirmationRequired
	}

	var (
		products  []entity.Product
		movements []entity.Movement
		alerts    []entity.Alert
	)
	hasProducts, err := decodeSection(repository.KeyProducts, in.Products, &products)
	if err != nil {
		return RestoreResult{}, err
	}
	hasMovements, err := decodeSection(repository.KeyMovements, in.Movements, &movements)
	if err != nil {
		return RestoreResult{}, err
	}
	hasAlerts, err := decodeSection(repository.KeyAlerts, in.Alerts, &alerts)
	if err != nil {
		return RestoreResult{}, err
	}

	var store *Store
	if hasProducts {
		if store, err = NewStore(products); err != nil {
			return RestoreResult{}, fmt.Errorf("%w: respaldo con productos repetidos o sin clave: %v", domain.ErrInvalidInput, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if store != nil {
		s.store = store
	}
	if hasMovements {
		s.ledger.Replace(movements)
	}
	if hasAlerts {
		s.alerts = alerts
	}
	s.opts.Metrics.AlertsRecomputed(len(s.alerts), s.unreadCount())
	s.saveState(ctx, repository.KeyProducts, repository.KeyMovements, repository.KeyAlerts)

	s.log.Info().
		Int("productos", s.store.Len()).
		Int("movimientos", s.ledger.Len()).
		Int("alertas", len(s.alerts)).
		Msg("respaldo restaurado")

	return RestoreResult{
		Products:  s.store.Len(),
		Movements: s.ledger.Len(),
		Alerts:    len(s.alerts),
		Replaced:  hasProducts || hasMovements || hasAlerts,
	}, nil
}

// decodeSection ok=false si la sección no viene o es null.
func decodeSection(key string, raw json.RawMessage, dst any) (bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return false, nil
	}
	if err := decodeState(key, trimmed, dst); err != nil {
		return false, err
	}
	return true, nil
}

package dto

import (
	"encoding/json"
	"time"

	"github.com/jhoicas/inventario-agro/internal/domain/entity"
)

// BackupDTO respaldo completo de la sesión.
type BackupDTO struct {
	Products  []entity.Product  `json:"productos"`
	Movements []entity.Movement `json:"movimientos"`
	Alerts    []entity.Alert    `json:"alertas"`
	Date      time.Time         `json:"fecha"`
}

// RestoreBackupRequest respaldo a restaurar; solo se reemplazan las colecciones presentes.
type RestoreBackupRequest struct {
	Products  json.RawMessage `json:"productos"`
	Movements json.RawMessage `json:"movimientos"`
	Alerts    json.RawMessage `json:"alertas"`
	Date      json.RawMessage `json:"fecha"`
}

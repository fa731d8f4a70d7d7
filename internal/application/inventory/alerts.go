package inventory

import (
	"context"

	"github.com/jhoicas/inventario-agro/internal/application/dto"
	"github.com/jhoicas/inventario-agro/internal/domain/entity"
	"github.com/jhoicas/inventario-agro/internal/domain/repository"
)

// Alerts alertas vigentes en orden de inventario y contador de no leídas.
func (s *Session) Alerts() dto.AlertListResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return dto.AlertListResponse{Unread: s.unreadCount(), Items: s.alertsCopy()}
}

// UnreadCount número de alertas con Read=false.
func (s *Session) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unreadCount()
}

// MarkAllAlertsRead marca todas las alertas como leídas y persiste. Devuelve cuántas cambiaron.
func (s *Session) MarkAllAlertsRead(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := 0
	for i := range s.alerts {
		if !s.alerts[i].Read {
			s.alerts[i].Read = true
			changed++
		}
	}
	s.saveState(ctx, repository.KeyAlerts)
	s.opts.Metrics.AlertsRecomputed(len(s.alerts), 0)
	return changed
}

// RecentAlerts primeras n alertas (el tablero muestra 5).
func (s *Session) RecentAlerts(n int) []entity.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n > len(s.alerts) {
		n = len(s.alerts)
	}
	out := make([]entity.Alert, n)
	copy(out, s.alerts[:n])
	return out
}

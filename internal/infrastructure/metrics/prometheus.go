// Package metrics métricas Prometheus de la sesión de inventario.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/inventario-agro/internal/domain/entity"
)

// Recorder implementa inventory.MetricsRecorder sobre collectors Prometheus.
type Recorder struct {
	movements    *prometheus.CounterVec
	rejected     *prometheus.CounterVec
	alertsTotal  prometheus.Gauge
	alertsUnread prometheus.Gauge
}

// NewRecorder registra los collectors en reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		movements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inventario",
			Name:      "movements_total",
			Help:      "Movimientos registrados por tipo y almacén.",
		}, []string{"tipo", "almacen"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inventario",
			Name:      "movements_rejected_total",
			Help:      "Movimientos rechazados por motivo.",
		}, []string{"reason"}),
		alertsTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "inventario",
			Name:      "alerts",
			Help:      "Alertas vigentes tras el último recálculo.",
		}),
		alertsUnread: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "inventario",
			Name:      "alerts_unread",
			Help:      "Alertas no leídas.",
		}),
	}
	reg.MustRegister(r.movements, r.rejected, r.alertsTotal, r.alertsUnread)
	return r
}

// MovementRecorded incrementa el contador del tipo y almacén.
func (r *Recorder) MovementRecorded(kind entity.MovementKind, warehouse entity.Warehouse) {
	r.movements.WithLabelValues(string(kind), string(warehouse)).Inc()
}

// MovementRejected incrementa el contador del motivo.
func (r *Recorder) MovementRejected(reason string) {
	r.rejected.WithLabelValues(reason).Inc()
}

// AlertsRecomputed fija los gauges de alertas.
func (r *Recorder) AlertsRecomputed(total, unread int) {
	r.alertsTotal.Set(float64(total))
	r.alertsUnread.Set(float64(unread))
}

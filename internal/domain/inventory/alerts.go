package inventory

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/inventario-agro/internal/domain/entity"
)

// alertNamespace raíz de los UUIDv5 de alertas; el mismo (tipo, almacén, código) produce el mismo ID.
var alertNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:inventario-agro:alertas"))

// AlertID devuelve el identificador estable de la alerta de un producto.
func AlertID(kind entity.AlertKind, warehouse entity.Warehouse, code string) string {
	return uuid.NewSHA1(alertNamespace, []byte(string(kind)+"|"+string(warehouse)+"|"+code)).String()
}

// BuildAlerts recorre los productos en orden y emite una alerta por cada producto Agotado o Bajo.
// Exceso y OK no generan alerta. El resultado reemplaza por completo la colección anterior.
func BuildAlerts(products []entity.Product, now time.Time) []entity.Alert {
	alerts := make([]entity.Alert, 0)
	for _, p := range products {
		var kind entity.AlertKind
		var msg string
		switch Classify(p.Stock, p.StockMin, p.StockMax) {
		case StatusDepleted:
			kind = entity.AlertOutOfStock
			msg = fmt.Sprintf("El producto %s - %s está agotado.", p.Code, p.Name)
		case StatusLow:
			kind = entity.AlertLowStock
			msg = fmt.Sprintf("El producto %s - %s tiene stock bajo (%s %s).", p.Code, p.Name, FormatQuantity(p.Stock), p.Unit)
		default:
			continue
		}
		alerts = append(alerts, entity.Alert{
			ID:          AlertID(kind, p.Warehouse, p.Code),
			Kind:        kind,
			Message:     msg,
			Date:        now,
			Warehouse:   p.Warehouse,
			ProductCode: p.Code,
		})
	}
	return alerts
}

// CarryReadFlags copia el flag Read de las alertas previas a las nuevas con el mismo ID.
func CarryReadFlags(previous, next []entity.Alert) {
	read := make(map[string]bool, len(previous))
	for _, a := range previous {
		if a.Read && a.ID != "" {
			read[a.ID] = true
		}
	}
	for i := range next {
		if read[next[i].ID] {
			next[i].Read = true
		}
	}
}

// FormatQuantity imprime una cantidad sin ceros sobrantes (7, 2.5, 0.125).
func FormatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

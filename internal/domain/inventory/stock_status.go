package inventory

import (
	"math"

	"github.com/jhoicas/inventario-agro/internal/domain"
	"github.com/jhoicas/inventario-agro/internal/domain/entity"
)

// StockStatus clasificación del nivel de stock de un producto.
type StockStatus string

// Estados posibles (las etiquetas son las que muestra el tablero).
const (
	StatusDepleted StockStatus = "Agotado"
	StatusLow      StockStatus = "Bajo"
	StatusExcess   StockStatus = "Exceso"
	StatusOK       StockStatus = "OK"
)

// Classify implementa la clasificación de stock (servicio de dominio, sin efectos).
// El orden importa: stock <= 0 es Agotado aunque stockMin sea <= 0.
func Classify(stock, stockMin, stockMax float64) StockStatus {
	switch {
	case stock <= 0:
		return StatusDepleted
	case stock < stockMin:
		return StatusLow
	case stock > stockMax:
		return StatusExcess
	default:
		return StatusOK
	}
}

// ApplyQuantity calcula el nuevo stock para un movimiento sin modificar nada.
//   - entrada: stock + cantidad
//   - salida:  stock - cantidad; ErrInsufficientStock si cantidad > stock
//   - ajuste:  cantidad (valor absoluto)
func ApplyQuantity(current float64, kind entity.MovementKind, quantity float64) (float64, error) {
	if !IsValidQuantity(quantity) {
		return current, domain.ErrInvalidInput
	}
	switch kind {
	case entity.MovementIn:
		return current + quantity, nil
	case entity.MovementOut:
		if quantity > current {
			return current, domain.ErrInsufficientStock
		}
		return current - quantity, nil
	case entity.MovementAdjust:
		return quantity, nil
	}
	return current, domain.ErrInvalidInput
}

// IsValidQuantity cantidad finita y no negativa.
func IsValidQuantity(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

package inventory

import (
	"time"

	"github.com/jhoicas/inventario-agro/internal/domain/entity"
)

// Ledger libro de movimientos: solo agrega, en orden de inserción.
type Ledger struct {
	movements []entity.Movement
	lastID    int64
}

// NewLedger construye el libro a partir de movimientos ya registrados.
func NewLedger(movements []entity.Movement) *Ledger {
	l := &Ledger{}
	l.Replace(movements)
	return l
}

// Record asigna ID al movimiento y lo agrega al final.
// El ID es el instante en milisegundos, o el anterior + 1 si ya fue usado.
func (l *Ledger) Record(m entity.Movement, now time.Time) entity.Movement {
	id := now.UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	m.ID = id
	l.lastID = id
	l.movements = append(l.movements, m)
	return m
}

// Replace sustituye el libro completo (restauración de respaldo, carga inicial).
func (l *Ledger) Replace(movements []entity.Movement) {
	l.movements = append([]entity.Movement(nil), movements...)
	l.lastID = 0
	for _, m := range l.movements {
		if m.ID > l.lastID {
			l.lastID = m.ID
		}
	}
}

// Movements copia el libro en orden de inserción.
func (l *Ledger) Movements() []entity.Movement {
	return append([]entity.Movement(nil), l.movements...)
}

// Len número de movimientos.
func (l *Ledger) Len() int { return len(l.movements) }

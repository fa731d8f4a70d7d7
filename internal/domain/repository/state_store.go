package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// Claves del estado persistido; cada valor es un arreglo JSON.
const (
	KeyMovements = "movimientos"
	KeyAlerts    = "alertas"
	KeyProducts  = "productos"
)

// StateStore puerto de persistencia clave → bytes (equivalente a localStorage).
// Load devuelve ok=false cuando la clave no existe.
type StateStore interface {
	Save(ctx context.Context, key string, value []byte) error
	Load(ctx context.Context, key string) (value []byte, ok bool, err error)
}

// StateBatchSaver lo implementan los stores que pueden guardar varias claves de forma atómica.
type StateBatchSaver interface {
	SaveAll(ctx context.Context, values map[string][]byte) error
}

// StockTotaler lo implementan los stores que guardan el stock total junto al snapshot de productos.
type StockTotaler interface {
	StockTotal(ctx context.Context) (decimal.Decimal, error)
}

package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-agro/internal/domain/entity"
	"github.com/jhoicas/inventario-agro/internal/domain/inventory"
)

var fixedNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func TestBuildAlerts_OrdenYTipos(t *testing.T) {
	products := []entity.Product{
		{Code: "H01", Name: "Glifosato", Unit: "L", Warehouse: entity.WarehouseConventional, Stock: 2, StockMin: 5, StockMax: 50},
		{Code: "H02", Name: "Paraquat", Unit: "L", Warehouse: entity.WarehouseConventional, Stock: 20, StockMin: 5, StockMax: 50},
		{Code: "O01", Name: "Neem", Unit: "kg", Warehouse: entity.WarehouseOrganic, Stock: 0, StockMin: 1, StockMax: 10},
		{Code: "O02", Name: "Compost", Unit: "kg", Warehouse: entity.WarehouseOrganic, Stock: 90, StockMin: 1, StockMax: 10},
	}

	alerts := inventory.BuildAlerts(products, fixedNow)
	require.Len(t, alerts, 2)

	assert.Equal(t, entity.AlertLowStock, alerts[0].Kind)
	assert.Equal(t, "El producto H01 - Glifosato tiene stock bajo (2 L).", alerts[0].Message)
	assert.Equal(t, "H01", alerts[0].ProductCode)
	assert.False(t, alerts[0].Read)
	assert.Equal(t, fixedNow, alerts[0].Date)

	assert.Equal(t, entity.AlertOutOfStock, alerts[1].Kind)
	assert.Equal(t, "El producto O01 - Neem está agotado.", alerts[1].Message)
}

func TestBuildAlerts_MinimoExactoNoAlerta(t *testing.T) {
	products := []entity.Product{{Code: "H01", Stock: 5, StockMin: 5, StockMax: 50}}
	assert.Empty(t, inventory.BuildAlerts(products, fixedNow))
}

func TestBuildAlerts_AjusteACeroEsAgotadoNoBajo(t *testing.T) {
	products := []entity.Product{{Code: "H01", Name: "Glifosato", Stock: 0, StockMin: 5, StockMax: 50}}
	alerts := inventory.BuildAlerts(products, fixedNow)
	require.Len(t, alerts, 1)
	assert.Equal(t, entity.AlertOutOfStock, alerts[0].Kind)
}

func TestAlertID_Estable(t *testing.T) {
	a := inventory.AlertID(entity.AlertLowStock, entity.WarehouseConventional, "H01")
	b := inventory.AlertID(entity.AlertLowStock, entity.WarehouseConventional, "H01")
	c := inventory.AlertID(entity.AlertLowStock, entity.WarehouseOrganic, "H01")
	d := inventory.AlertID(entity.AlertOutOfStock, entity.WarehouseConventional, "H01")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
}

func TestCarryReadFlags(t *testing.T) {
	prev := []entity.Alert{{ID: "a", Read: true}, {ID: "b", Read: false}}
	next := []entity.Alert{{ID: "b"}, {ID: "a"}, {ID: "c"}}
	inventory.CarryReadFlags(prev, next)
	assert.False(t, next[0].Read)
	assert.True(t, next[1].Read)
	assert.False(t, next[2].Read)
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "7", inventory.FormatQuantity(7))
	assert.Equal(t, "2.5", inventory.FormatQuantity(2.5))
	assert.Equal(t, "0.125", inventory.FormatQuantity(0.125))
}

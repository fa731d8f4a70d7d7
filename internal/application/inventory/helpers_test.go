package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-agro/internal/application/inventory"
	"github.com/jhoicas/inventario-agro/internal/domain"
	"github.com/jhoicas/inventario-agro/internal/domain/entity"
	"github.com/jhoicas/inventario-agro/internal/infrastructure/memory"
)

var fixedNow = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

// fakeSource ProductSource en memoria; un almacén en failing devuelve ErrFetchFailure.
type fakeSource struct {
	products map[entity.Warehouse][]entity.Product
	failing  map[entity.Warehouse]bool
}

func (f fakeSource) LoadProducts(_ context.Context, wh entity.Warehouse) ([]entity.Product, error) {
	if f.failing[wh] {
		return nil, errors.Join(domain.ErrFetchFailure, errors.New("404"))
	}
	return f.products[wh], nil
}

func ptr(v float64) *float64 { return &v }

func baseCatalog() fakeSource {
	return fakeSource{products: map[entity.Warehouse][]entity.Product{
		entity.WarehouseConventional: {
			{Code: "H01", Name: "Glifosato", Unit: "L", ActiveIngredient: "glifosato", Stock: 10, StockMin: 5, StockMax: 20},
			{Code: "H02", Name: "Paraquat", Unit: "L", Stock: 3, StockMin: 5, StockMax: 20},
			{Code: "F01", Name: "Mancozeb", Unit: "kg", Category: "fungicida", Stock: 40, StockMin: 5, StockMax: 30},
		},
		entity.WarehouseOrganic: {
			{Code: "O01", Name: "Compost", Unit: "kg", Stock: 50, StockMin: 10, StockMax: 100, Differences: ptr(-45), FinalStock: ptr(5)},
			{Code: "H01", Name: "Extracto de neem", Unit: "L", Stock: 12, StockMin: 2, StockMax: 15},
		},
	}}
}

type fixture struct {
	session *inventory.Session
	store   *memory.StateStore
}

func newFixture(t *testing.T, opts inventory.Options) fixture {
	t.Helper()
	store := memory.NewStateStore()
	return newFixtureWithStore(t, store, opts)
}

func newFixtureWithStore(t *testing.T, store *memory.StateStore, opts inventory.Options) fixture {
	t.Helper()
	if opts.Now == nil {
		opts.Now = func() time.Time { return fixedNow }
	}
	s := inventory.NewSession(store, nil, opts)
	_, err := s.Bootstrap(context.Background(), baseCatalog())
	require.NoError(t, err)
	return fixture{session: s, store: store}
}

func (f fixture) stockOf(t *testing.T, wh entity.Warehouse, code string) float64 {
	t.Helper()
	p, err := f.session.Product(wh, code)
	require.NoError(t, err)
	return p.Stock
}

func out(code string, qty float64) inventory.MovementInput {
	return inventory.MovementInput{
		Warehouse:   entity.WarehouseConventional,
		Kind:        entity.MovementOut,
		ProductCode: code,
		Quantity:    qty,
		Date:        fixedNow,
	}
}

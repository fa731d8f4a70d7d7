package inventory_test

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-agro/internal/application/dto"
	"github.com/jhoicas/inventario-agro/internal/application/inventory"
	"github.com/jhoicas/inventario-agro/internal/domain"
	"github.com/jhoicas/inventario-agro/internal/domain/entity"
	"github.com/jhoicas/inventario-agro/internal/domain/repository"
	"github.com/jhoicas/inventario-agro/internal/infrastructure/memory"
)

func TestBootstrap_CargaAmbosAlmacenesYCalculaAlertas(t *testing.T) {
	store := memory.NewStateStore()
	s := inventory.NewSession(store, nil, inventory.Options{Now: func() time.Time { return fixedNow }})

	report, err := s.Bootstrap(context.Background(), baseCatalog())
	require.NoError(t, err)

	assert.Equal(t, 3, report.Loaded[entity.WarehouseConventional])
	assert.Equal(t, 2, report.Loaded[entity.WarehouseOrganic])
	assert.Empty(t, report.FailedWarehouses)
	assert.False(t, report.RestoredProducts)

	products := s.Products("", "")
	require.Len(t, products, 5)
	assert.Equal(t, "herbicida", products[0].Category, "categoría por defecto del convencional")
	assert.Equal(t, "fungicida", products[2].Category, "la categoría del CSV se respeta")
	assert.Equal(t, "organico", products[3].Category)

	alerts := s.Alerts()
	require.Len(t, alerts.Items, 1, "solo H02 está bajo mínimo")
	assert.Equal(t, entity.AlertLowStock, alerts.Items[0].Kind)
	assert.Equal(t, 1, alerts.Unread)
}

func TestBootstrap_AlmacenQueFallaQuedaVacio(t *testing.T) {
	src := baseCatalog()
	src.failing = map[entity.Warehouse]bool{entity.WarehouseOrganic: true}
	s := inventory.NewSession(nil, nil, inventory.Options{})

	report, err := s.Bootstrap(context.Background(), src)
	require.NoError(t, err, "un CSV que no carga no detiene el arranque")

	assert.Equal(t, []entity.Warehouse{entity.WarehouseOrganic}, report.FailedWarehouses)
	assert.Empty(t, s.Products(entity.WarehouseOrganic, ""))
	assert.Len(t, s.Products(entity.WarehouseConventional, ""), 3)
}

func TestBootstrap_CodigoRepetidoEnCSVSeOmite(t *testing.T) {
	src := baseCatalog()
	src.products[entity.WarehouseConventional] = append(src.products[entity.WarehouseConventional],
		entity.Product{Code: "H01", Name: "Duplicado", Stock: 1})
	s := inventory.NewSession(nil, nil, inventory.Options{})

	report, err := s.Bootstrap(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Loaded[entity.WarehouseConventional])

	p, err := s.Product(entity.WarehouseConventional, "H01")
	require.NoError(t, err)
	assert.Equal(t, "Glifosato", p.Name, "gana la primera aparición")
}

func TestBootstrap_EstadoCorruptoSeIgnora(t *testing.T) {
	store := memory.NewStateStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, repository.KeyMovements, []byte("{no es json")))
	require.NoError(t, store.Save(ctx, repository.KeyAlerts, []byte(`[{"tipo":`)))

	s := inventory.NewSession(store, nil, inventory.Options{})
	report, err := s.Bootstrap(ctx, baseCatalog())
	require.NoError(t, err)

	assert.Zero(t, report.RestoredMovements)
	assert.False(t, report.RestoredAlerts)
	assert.Empty(t, s.Movements(""))
	assert.Len(t, s.Alerts().Items, 1, "sin alertas válidas guardadas se recalculan")
}

func TestPersistencia_EstadoSobreviveAlReinicio(t *testing.T) {
	f := newFixture(t, inventory.Options{})
	ctx := context.Background()

	_, err := f.session.RegisterMovement(ctx, out("H01", 6))
	require.NoError(t, err)
	f.session.MarkAllAlertsRead(ctx)

	for _, key := range []string{repository.KeyMovements, repository.KeyAlerts, repository.KeyProducts} {
		raw, ok, err := f.store.Load(ctx, key)
		require.NoError(t, err)
		require.True(t, ok, "clave %s persistida", key)
		assert.True(t, json.Valid(raw))
	}

	restarted := newFixtureWithStore(t, f.store, inventory.Options{})
	assert.Equal(t, 4.0, restarted.stockOf(t, entity.WarehouseConventional, "H01"), "el snapshot de productos gana sobre el CSV")
	assert.Len(t, restarted.session.Movements(""), 1)
	assert.Zero(t, restarted.session.UnreadCount(), "las alertas guardadas se cargan tal cual")
}

func TestMovimientos_JSONRoundTrip(t *testing.T) {
	f := newFixture(t, inventory.Options{})
	ctx := context.Background()
	_, err := f.session.RegisterMovement(ctx, inventory.MovementInput{
		Warehouse:   entity.WarehouseOrganic,
		Kind:        entity.MovementIn,
		ProductCode: "O01",
		Quantity:    2.5,
		Date:        fixedNow,
		Comment:     "compra",
	})
	require.NoError(t, err)

	raw, ok, err := f.store.Load(ctx, repository.KeyMovements)
	require.NoError(t, err)
	require.True(t, ok)

	var decoded []entity.Movement
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, f.session.Movements(""), decoded)
	assert.Contains(t, string(raw), `"codigoProducto":"O01"`)
	assert.Contains(t, string(raw), `"usuario":"Usuario Actual"`)
}

func TestProductos_AltaYEdicion(t *testing.T) {
	f := newFixture(t, inventory.Options{})
	ctx := context.Background()

	req := dto.CreateProductRequest{
		Code: "I01", Name: "Cipermetrina", Category: "insecticida", Unit: "L",
		Warehouse: "convencional", Stock: ptr(0), StockMin: ptr(2), StockMax: ptr(10),
	}
	p, err := f.session.CreateProduct(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, entity.WarehouseConventional, p.Warehouse)

	_, err = f.session.CreateProduct(ctx, req)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	req.Code = "I02"
	req.StockMax = nil
	_, err = f.session.CreateProduct(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stockMax es obligatorio")

	name := "Cipermetrina 25 EC"
	updated, err := f.session.UpdateProduct(ctx, "convencional", "I01", dto.UpdateProductRequest{Name: &name, StockMax: ptr(12)})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, 12.0, updated.StockMax)
	assert.Equal(t, "insecticida", updated.Category, "los campos no enviados se conservan")

	_, err = f.session.UpdateProduct(ctx, "organico", "I01", dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	assert.Len(t, f.session.Alerts().Items, 1, "alta y edición no recalculan alertas")
}

func TestProductos_Busqueda(t *testing.T) {
	f := newFixture(t, inventory.Options{})

	assert.Len(t, f.session.Products("", "h01"), 2, "el mismo código existe en ambos almacenes")
	assert.Len(t, f.session.Products(entity.WarehouseOrganic, "neem"), 1)
	assert.Empty(t, f.session.Products(entity.WarehouseConventional, "neem"))
}

func TestInventario_OrganicoUsaStockFinal(t *testing.T) {
	f := newFixture(t, inventory.Options{})

	list, err := f.session.Inventory(entity.WarehouseOrganic, "")
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "Bajo", list.Items[0].Status, "O01 tiene stock 50 pero stockFinal 5 < 10")
	assert.Equal(t, "OK", list.Items[1].Status)

	conv, err := f.session.Inventory(entity.WarehouseConventional, "exceso")
	require.NoError(t, err)
	require.Len(t, conv.Items, 1)
	assert.Equal(t, "F01", conv.Items[0].Code)

	_, err = f.session.Inventory("bodega", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRestore_RequiereConfirmacion(t *testing.T) {
	f := newFixture(t, inventory.Options{})
	_, err := f.session.Restore(context.Background(), dto.RestoreBackupRequest{Products: json.RawMessage(`[]`)}, false)
	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)
	assert.Len(t, f.session.Products("", ""), 5, "sin confirmación no cambia nada")
}

func TestRestore_ReemplazaSoloLoPresente(t *testing.T) {
	f := newFixture(t, inventory.Options{})
	ctx := context.Background()
	_, err := f.session.RegisterMovement(ctx, out("H01", 1))
	require.NoError(t, err)

	backup := dto.RestoreBackupRequest{
		Products: json.RawMessage(`[{"codigo":"X1","nombre":"Azufre","unidad":"kg","almacen":"organico","categoria":"organico","stock":4,"stockMin":1,"stockMax":9}]`),
		Alerts:   json.RawMessage(`null`),
	}
	res, err := f.session.Restore(ctx, backup, true)
	require.NoError(t, err)
	assert.True(t, res.Replaced)
	assert.Equal(t, 1, res.Products)
	assert.Equal(t, 1, res.Movements, "movimientos no venían en el respaldo")

	raw, ok, err := f.store.Load(ctx, repository.KeyProducts)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(raw), `"X1"`)

	_, err = f.session.Restore(ctx, dto.RestoreBackupRequest{Movements: json.RawMessage(`{"x":1}`)}, true)
	assert.ErrorIs(t, err, domain.ErrParseFailure)
}

func TestBackup_IncluyeTodoYNombreConFecha(t *testing.T) {
	f := newFixture(t, inventory.Options{})
	b := f.session.Backup()
	assert.Len(t, b.Products, 5)
	assert.Empty(t, b.Movements)
	assert.Len(t, b.Alerts, 1)
	assert.Equal(t, fixedNow, b.Date)
	assert.Equal(t, "respaldo_inventario_2026-03-10.json", f.session.BackupFilename())
}

func TestReposicion_PrioridadYCantidadSugerida(t *testing.T) {
	f := newFixture(t, inventory.Options{})
	_, err := f.session.RegisterMovement(context.Background(), inventory.MovementInput{
		Warehouse: entity.WarehouseConventional, Kind: entity.MovementAdjust,
		ProductCode: "H01", Quantity: 0, Date: fixedNow,
	})
	require.NoError(t, err)

	list := f.session.Replenishment("")
	require.Len(t, list, 2)
	assert.Equal(t, "H01", list[0].Code, "agotado primero")
	assert.Equal(t, 20.0, list[0].SuggestedQty)
	assert.Equal(t, 1, list[0].Priority)
	assert.Equal(t, "H02", list[1].Code)
	assert.Equal(t, 17.0, list[1].SuggestedQty)
	assert.Equal(t, 2, list[1].Priority)

	assert.Empty(t, f.session.Replenishment(entity.WarehouseOrganic), "O01 tiene stock vivo 50 aunque stockFinal sea 5")
}

func TestBootstrap_ProductoConCantidadNoFinitaSeOmite(t *testing.T) {
	src := baseCatalog()
	src.products[entity.WarehouseConventional] = append(src.products[entity.WarehouseConventional],
		entity.Product{Code: "N01", Name: "Sin dato", Stock: math.NaN(), StockMax: 10},
		entity.Product{Code: "N02", Name: "Tope roto", Stock: 1, StockMax: math.Inf(1)})
	store := memory.NewStateStore()
	s := inventory.NewSession(store, nil, inventory.Options{Now: func() time.Time { return fixedNow }})

	report, err := s.Bootstrap(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Loaded[entity.WarehouseConventional])
	_, err = s.Product(entity.WarehouseConventional, "N01")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = s.RegisterMovement(context.Background(), out("H01", 2))
	require.NoError(t, err)
	for _, key := range []string{repository.KeyProducts, repository.KeyMovements, repository.KeyAlerts} {
		raw, ok, err := store.Load(context.Background(), key)
		require.NoError(t, err)
		require.True(t, ok, "clave %s persistida", key)
		assert.True(t, json.Valid(raw))
	}
}

func TestNewStore_RechazaCantidadesNoFinitas(t *testing.T) {
	_, err := inventory.NewStore([]entity.Product{
		{Code: "O01", Warehouse: entity.WarehouseOrganic, Stock: 5, FinalStock: ptr(math.Inf(-1))},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	store, err := inventory.NewStore(nil)
	require.NoError(t, err)
	err = store.Add(entity.Product{Code: "H01", Warehouse: entity.WarehouseConventional, StockMin: math.NaN()})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, store.Len())
}

// totalStore memory.StateStore que además informa un stock total guardado.
type totalStore struct {
	*memory.StateStore
	total decimal.Decimal
	err   error
}

func (s totalStore) StockTotal(context.Context) (decimal.Decimal, error) { return s.total, s.err }

func TestPersistedStockTotal(t *testing.T) {
	ctx := context.Background()

	plain := newFixture(t, inventory.Options{})
	_, ok, err := plain.session.PersistedStockTotal(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "el store en memoria no lleva total")

	s := inventory.NewSession(totalStore{StateStore: memory.NewStateStore(), total: decimal.RequireFromString("115.50")}, nil, inventory.Options{})
	total, ok, err := s.PersistedStockTotal(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "115.5", total.String())

	s = inventory.NewSession(totalStore{StateStore: memory.NewStateStore(), err: errors.New("conexión rechazada")}, nil, inventory.Options{})
	_, ok, err = s.PersistedStockTotal(ctx)
	assert.True(t, ok)
	assert.ErrorContains(t, err, "conexión rechazada")
}

// alertMetrics registra cada llamada a AlertsRecomputed.
type alertMetrics struct {
	calls [][2]int
}

func (m *alertMetrics) MovementRecorded(entity.MovementKind, entity.Warehouse) {}
func (m *alertMetrics) MovementRejected(string)                               {}
func (m *alertMetrics) AlertsRecomputed(total, unread int) {
	m.calls = append(m.calls, [2]int{total, unread})
}

func TestMetricas_AlertasRestauradasSeInforman(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, inventory.Options{})
	f.session.MarkAllAlertsRead(ctx)

	m := &alertMetrics{}
	restarted := newFixtureWithStore(t, f.store, inventory.Options{Metrics: m})
	require.Len(t, m.calls, 1, "alertas cargadas del store")
	assert.Equal(t, [2]int{1, 0}, m.calls[0])

	backup := dto.RestoreBackupRequest{
		Alerts: json.RawMessage(`[{"id":"a1","tipo":"stock-cero","mensaje":"sin stock","fecha":"2026-03-09T08:00:00Z","leida":false,"almacen":"convencional","codigoProducto":"H02"},` +
			`{"id":"a2","tipo":"stock-bajo","mensaje":"bajo","fecha":"2026-03-09T08:00:00Z","leida":true,"almacen":"organico","codigoProducto":"O01"}]`),
	}
	_, err := restarted.session.Restore(ctx, backup, true)
	require.NoError(t, err)
	require.Len(t, m.calls, 2)
	assert.Equal(t, [2]int{2, 1}, m.calls[1])
}

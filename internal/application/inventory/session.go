package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-agro/internal/domain"
	"github.com/jhoicas/inventario-agro/internal/domain/entity"
	stock "github.com/jhoicas/inventario-agro/internal/domain/inventory"
	"github.com/jhoicas/inventario-agro/internal/domain/repository"
	"github.com/jhoicas/inventario-agro/pkg/logger"
)

// DefaultOperator usuario asignado a los movimientos cuando el request no trae uno.
const DefaultOperator = "Usuario Actual"

// Options ajustes de la sesión de inventario.
type Options struct {
	Operator      string
	KeepReadFlags bool // conservar "leída" en alertas que sobreviven al recálculo
	Now           func() time.Time
	Metrics       MetricsRecorder
}

// Session estado en memoria del inventario (productos, movimientos, alertas).
// Todas las operaciones se serializan con un mutex; el estado en memoria manda
// y cada mutación se replica al StateStore.
type Session struct {
	mu      sync.Mutex
	store   *Store
	ledger  *Ledger
	alerts  []entity.Alert
	persist repository.StateStore
	log     *logger.Logger
	opts    Options
}

// NewSession construye una sesión vacía. persist nil deja la sesión sin persistencia.
func NewSession(persist repository.StateStore, log *logger.Logger, opts Options) *Session {
	if opts.Operator == "" {
		opts.Operator = DefaultOperator
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Metrics == nil {
		opts.Metrics = nopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Session{
		store:   &Store{},
		ledger:  NewLedger(nil),
		persist: persist,
		log:     log.Component("inventario"),
		opts:    opts,
	}
}

// StartupReport resumen de la carga inicial.
type StartupReport struct {
	Loaded            map[entity.Warehouse]int
	FailedWarehouses  []entity.Warehouse
	RestoredProducts  bool
	RestoredMovements int
	RestoredAlerts    bool
}

// Bootstrap carga el catálogo base de ambos almacenes y luego el estado persistido.
// Un almacén que no carga queda vacío; un valor persistido corrupto se ignora.
// Solo devuelve error si falla el acceso al StateStore.
func (s *Session) Bootstrap(ctx context.Context, source ProductSource) (StartupReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := StartupReport{Loaded: make(map[entity.Warehouse]int, len(entity.Warehouses))}
	store := &Store{}
	for _, wh := range entity.Warehouses {
		products, err := source.LoadProducts(ctx, wh)
		if err != nil {
			s.log.Warn().Err(err).Str("almacen", string(wh)).Msg("no se pudo cargar el catálogo base; el almacén queda vacío")
			report.FailedWarehouses = append(report.FailedWarehouses, wh)
			continue
		}
		for _, p := range products {
			p.Warehouse = wh
			if p.Category == "" {
				p.Category = wh.DefaultCategory()
			}
			if err := store.Add(p); err != nil {
				s.log.Warn().Err(err).Str("almacen", string(wh)).Str("codigo", p.Code).Msg("producto omitido")
				continue
			}
			report.Loaded[wh]++
		}
	}
	s.store = store

	if s.persist == nil {
		s.recomputeAlerts()
		return report, nil
	}

	var products []entity.Product
	ok, err := s.loadKey(ctx, repository.KeyProducts, &products)
	if err != nil {
		return report, err
	}
	if ok {
		restored, err := NewStore(products)
		if err != nil {
			s.log.Warn().Err(err).Str("key", repository.KeyProducts).Msg("productos guardados inválidos; se usa el catálogo base")
		} else {
			s.store = restored
			report.RestoredProducts = true
		}
	}

	var movements []entity.Movement
	ok, err = s.loadKey(ctx, repository.KeyMovements, &movements)
	if err != nil {
		return report, err
	}
	if ok {
		s.ledger.Replace(movements)
		report.RestoredMovements = len(movements)
	}

	var alerts []entity.Alert
	ok, err = s.loadKey(ctx, repository.KeyAlerts, &alerts)
	if err != nil {
		return report, err
	}
	if ok {
		s.alerts = alerts
		report.RestoredAlerts = true
		s.opts.Metrics.AlertsRecomputed(len(s.alerts), s.unreadCount())
	} else {
		s.recomputeAlerts()
	}
	return report, nil
}

// loadKey decodifica la clave en dst. ok=false si la clave no existe o su contenido es inválido.
func (s *Session) loadKey(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := s.persist.Load(ctx, key)
	if err != nil {
		return false, fmt.Errorf("cargar %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := decodeState(key, raw, dst); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("estado guardado ignorado")
		return false, nil
	}
	return true, nil
}

func decodeState(key string, raw []byte, dst any) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrParseFailure, key, err)
	}
	return nil
}

// saveState serializa y guarda las claves indicadas; en una sola escritura si el store lo soporta.
// Un fallo se registra y no revierte la mutación en memoria.
func (s *Session) saveState(ctx context.Context, keys ...string) {
	if s.persist == nil {
		return
	}
	values := make(map[string][]byte, len(keys))
	for _, key := range keys {
		raw, err := json.Marshal(s.stateValue(key))
		if err != nil {
			s.log.Error().Err(err).Str("key", key).Msg("no se pudo serializar el estado")
			continue
		}
		values[key] = raw
	}

	if batch, ok := s.persist.(repository.StateBatchSaver); ok && len(values) > 1 {
		if err := batch.SaveAll(ctx, values); err != nil {
			s.log.Error().Err(err).Strs("keys", keys).Msg("no se pudo persistir el estado")
		}
		return
	}
	for _, key := range keys {
		raw, ok := values[key]
		if !ok {
			continue
		}
		if err := s.persist.Save(ctx, key, raw); err != nil {
			s.log.Error().Err(err).Str("key", key).Msg("no se pudo persistir el estado")
		}
	}
}

// PersistedStockTotal stock total del último snapshot guardado. ok=false si el store no lo lleva.
func (s *Session) PersistedStockTotal(ctx context.Context) (total decimal.Decimal, ok bool, err error) {
	totaler, ok := s.persist.(repository.StockTotaler)
	if !ok {
		return decimal.Zero, false, nil
	}
	total, err = totaler.StockTotal(ctx)
	if err != nil {
		return decimal.Zero, true, fmt.Errorf("stock persistido: %w", err)
	}
	return total, true, nil
}

func (s *Session) stateValue(key string) any {
	switch key {
	case repository.KeyMovements:
		return s.ledger.Movements()
	case repository.KeyAlerts:
		return s.alertsCopy()
	default:
		return s.store.Snapshot()
	}
}

// recomputeAlerts reconstruye las alertas desde el stock actual.
func (s *Session) recomputeAlerts() {
	next := stock.BuildAlerts(s.store.Snapshot(), s.opts.Now())
	if s.opts.KeepReadFlags {
		stock.CarryReadFlags(s.alerts, next)
	}
	s.alerts = next
	s.opts.Metrics.AlertsRecomputed(len(next), s.unreadCount())
}

func (s *Session) unreadCount() int {
	n := 0
	for _, a := range s.alerts {
		if !a.Read {
			n++
		}
	}
	return n
}

func (s *Session) alertsCopy() []entity.Alert {
	out := make([]entity.Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	default:
		return "other"
	}
}

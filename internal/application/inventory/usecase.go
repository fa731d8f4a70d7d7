package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/inventario-agro/internal/domain"
	"github.com/jhoicas/inventario-agro/internal/domain/entity"
	"github.com/jhoicas/inventario-agro/internal/domain/repository"
)

// MovementInput entrada para registrar un movimiento individual.
type MovementInput struct {
	Warehouse   entity.Warehouse
	Kind        entity.MovementKind
	ProductCode string
	Quantity    float64
	Date        time.Time
	Operator    string
	Comment     string
}

// BatchInput movimientos múltiples: tipo, almacén, fecha y comentario compartidos.
type BatchInput struct {
	Warehouse entity.Warehouse
	Kind      entity.MovementKind
	Date      time.Time
	Operator  string
	Comment   string
	Rows      []BatchRow
}

// BatchRow fila de un lote.
type BatchRow struct {
	ProductCode string
	Quantity    float64
}

// BatchFailure fila omitida. Row es 1-based.
type BatchFailure struct {
	Row         int
	ProductCode string
	Err         error
}

// BatchResult movimientos aplicados y filas omitidas de un lote.
type BatchResult struct {
	Applied  []entity.Movement
	Failures []BatchFailure
}

// RegisterMovement aplica el movimiento sobre el stock y, solo si tuvo éxito, lo agrega al libro,
// recalcula las alertas y persiste el estado.
func (s *Session) RegisterMovement(ctx context.Context, in MovementInput) (entity.Movement, error) {
	if strings.TrimSpace(in.ProductCode) == "" || in.Date.IsZero() {
		s.opts.Metrics.MovementRejected(rejectReason(domain.ErrInvalidInput))
		return entity.Movement{}, fmt.Errorf("%w: código de producto y fecha requeridos", domain.ErrInvalidInput)
	}
	if err := validateTarget(in.Warehouse, in.Kind); err != nil {
		s.opts.Metrics.MovementRejected(rejectReason(err))
		return entity.Movement{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.apply(in)
	if err != nil {
		s.opts.Metrics.MovementRejected(rejectReason(err))
		return entity.Movement{}, err
	}
	s.afterMovements(ctx)
	return m, nil
}

// RegisterBatch aplica cada fila de forma independiente. Las filas inválidas se omiten y se informan.
// Si al menos una fila se aplica, recalcula alertas y persiste una sola vez.
func (s *Session) RegisterBatch(ctx context.Context, in BatchInput) (BatchResult, error) {
	if in.Date.IsZero() || len(in.Rows) == 0 {
		return BatchResult{}, fmt.Errorf("%w: fecha y al menos una fila requeridas", domain.ErrInvalidInput)
	}
	if err := validateTarget(in.Warehouse, in.Kind); err != nil {
		return BatchResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var res BatchResult
	for i, row := range in.Rows {
		code := strings.TrimSpace(row.ProductCode)
		var (
			m   entity.Movement
			err error
		)
		if code == "" {
			err = fmt.Errorf("%w: código de producto vacío", domain.ErrInvalidInput)
		} else {
			m, err = s.apply(MovementInput{
				Warehouse:   in.Warehouse,
				Kind:        in.Kind,
				ProductCode: code,
				Quantity:    row.Quantity,
				Date:        in.Date,
				Operator:    in.Operator,
				Comment:     in.Comment,
			})
		}
		if err != nil {
			s.opts.Metrics.MovementRejected(rejectReason(err))
			s.log.Warn().Err(err).Int("fila", i+1).Str("codigo", code).Msg("fila de lote omitida")
			res.Failures = append(res.Failures, BatchFailure{Row: i + 1, ProductCode: code, Err: err})
			continue
		}
		res.Applied = append(res.Applied, m)
	}
	if len(res.Applied) > 0 {
		s.afterMovements(ctx)
	}
	return res, nil
}

// Movements devuelve el libro en orden de inserción, filtrado por texto si query no está vacío.
func (s *Session) Movements(query string) []entity.Movement {
	s.mu.Lock()
	all := s.ledger.Movements()
	s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all
	}
	out := make([]entity.Movement, 0, len(all))
	for _, m := range all {
		if movementMatches(m, q) {
			out = append(out, m)
		}
	}
	return out
}

// apply muta el stock y registra el movimiento. Requiere s.mu.
func (s *Session) apply(in MovementInput) (entity.Movement, error) {
	if _, err := s.store.ApplyMovement(in.ProductCode, in.Warehouse, in.Kind, in.Quantity); err != nil {
		return entity.Movement{}, fmt.Errorf("%s %s/%s: %w", in.Kind, in.Warehouse, in.ProductCode, err)
	}
	operator := in.Operator
	if operator == "" {
		operator = s.opts.Operator
	}
	m := s.ledger.Record(entity.Movement{
		Date:        in.Date,
		Kind:        in.Kind,
		Warehouse:   in.Warehouse,
		ProductCode: in.ProductCode,
		Quantity:    in.Quantity,
		Operator:    operator,
		Comment:     in.Comment,
	}, s.opts.Now())
	s.opts.Metrics.MovementRecorded(m.Kind, m.Warehouse)
	return m, nil
}

// afterMovements recalcula alertas y persiste productos, movimientos y alertas. Requiere s.mu.
func (s *Session) afterMovements(ctx context.Context) {
	s.recomputeAlerts()
	s.saveState(ctx, repository.KeyMovements, repository.KeyProducts, repository.KeyAlerts)
}

func validateTarget(wh entity.Warehouse, kind entity.MovementKind) error {
	if !wh.Valid() {
		return fmt.Errorf("%w: almacén %q", domain.ErrInvalidInput, wh)
	}
	if !kind.Valid() {
		return fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidInput, kind)
	}
	return nil
}

func movementMatches(m entity.Movement, q string) bool {
	for _, field := range []string{m.ProductCode, string(m.Kind), string(m.Warehouse), m.Operator, m.Comment} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

package inventory

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/jhoicas/inventario-agro/internal/application/dto"
	"github.com/jhoicas/inventario-agro/internal/domain"
	"github.com/jhoicas/inventario-agro/internal/domain/entity"
)

// RegisterMovementFromRequest adapta el request HTTP a RegisterMovement.
func (s *Session) RegisterMovementFromRequest(ctx context.Context, in dto.RegisterMovementRequest) (entity.Movement, error) {
	wh, kind, err := parseTarget(in.Warehouse, in.Kind)
	if err != nil {
		return entity.Movement{}, err
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return entity.Movement{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if in.Quantity == nil {
		return entity.Movement{}, fmt.Errorf("%w: cantidad requerida", domain.ErrInvalidInput)
	}
	return s.RegisterMovement(ctx, MovementInput{
		Warehouse:   wh,
		Kind:        kind,
		ProductCode: strings.TrimSpace(in.ProductCode),
		Quantity:    *in.Quantity,
		Date:        date,
		Operator:    strings.TrimSpace(in.Operator),
		Comment:     in.Comment,
	})
}

// RegisterBatchFromRequest adapta el request HTTP a RegisterBatch y arma la respuesta con los motivos por fila.
func (s *Session) RegisterBatchFromRequest(ctx context.Context, in dto.BatchMovementRequest) (dto.BatchMovementResponse, error) {
	wh, kind, err := parseTarget(in.Warehouse, in.Kind)
	if err != nil {
		return dto.BatchMovementResponse{}, err
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return dto.BatchMovementResponse{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	rows := make([]BatchRow, len(in.Rows))
	for i, r := range in.Rows {
		q := math.NaN() // cantidad ausente: la fila se rechaza como inválida
		if r.Quantity != nil {
			q = *r.Quantity
		}
		rows[i] = BatchRow{ProductCode: r.ProductCode, Quantity: q}
	}

	res, err := s.RegisterBatch(ctx, BatchInput{
		Warehouse: wh,
		Kind:      kind,
		Date:      date,
		Operator:  strings.TrimSpace(in.Operator),
		Comment:   in.Comment,
		Rows:      rows,
	})
	if err != nil {
		return dto.BatchMovementResponse{}, err
	}

	out := dto.BatchMovementResponse{
		Applied:   len(res.Applied),
		Movements: res.Applied,
		Failures:  make([]dto.BatchRowFailureDTO, 0, len(res.Failures)),
	}
	if out.Movements == nil {
		out.Movements = []entity.Movement{}
	}
	for _, f := range res.Failures {
		out.Failures = append(out.Failures, dto.BatchRowFailureDTO{
			Row:         f.Row,
			ProductCode: f.ProductCode,
			Code:        dto.ErrorCode(f.Err),
			Message:     f.Err.Error(),
		})
	}
	return out, nil
}

func parseTarget(warehouse, kind string) (entity.Warehouse, entity.MovementKind, error) {
	wh, ok := entity.ParseWarehouse(warehouse)
	if !ok {
		return "", "", fmt.Errorf("%w: almacén %q", domain.ErrInvalidInput, warehouse)
	}
	k := entity.MovementKind(strings.ToLower(strings.TrimSpace(kind)))
	if !k.Valid() {
		return "", "", fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidInput, kind)
	}
	return wh, k, nil
}

package inventory

import (
	"sort"

	"github.com/jhoicas/inventario-agro/internal/application/dto"
	"github.com/jhoicas/inventario-agro/internal/domain/entity"
	stock "github.com/jhoicas/inventario-agro/internal/domain/inventory"
)

// Replenishment lista de reposición: productos Agotado o Bajo con la cantidad para llegar a stockMax.
// warehouse vacío considera ambos almacenes.
//
// Prioridad: primero los agotados, luego por cobertura (stock / stockMin) ascendente.
func (s *Session) Replenishment(warehouse entity.Warehouse) []dto.ReplenishmentSuggestionDTO {
	products := s.Products(warehouse, "")

	type candidate struct {
		dto      dto.ReplenishmentSuggestionDTO
		coverage float64
	}
	candidates := make([]candidate, 0)
	for _, p := range products {
		current := p.Stock
		status := stock.Classify(current, p.StockMin, p.StockMax)
		if status != stock.StatusDepleted && status != stock.StatusLow {
			continue
		}
		suggested := p.StockMax - current
		if suggested < 0 {
			suggested = 0
		}
		coverage := 0.0
		if p.StockMin > 0 && current > 0 {
			coverage = current / p.StockMin
		}
		candidates = append(candidates, candidate{
			dto: dto.ReplenishmentSuggestionDTO{
				Code:         p.Code,
				Name:         p.Name,
				Warehouse:    p.Warehouse,
				Unit:         p.Unit,
				CurrentStock: current,
				StockMin:     p.StockMin,
				StockMax:     p.StockMax,
				SuggestedQty: suggested,
				Status:       string(status),
			},
			coverage: coverage,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].coverage < candidates[j].coverage
	})

	out := make([]dto.ReplenishmentSuggestionDTO, len(candidates))
	for i, c := range candidates {
		c.dto.Priority = i + 1
		out[i] = c.dto
	}
	return out
}

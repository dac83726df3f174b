package request

import (
	"strings"

	"calcplanner/internal/domain/entities"
)

type LineItemRequest struct {
	MaterialID string `json:"material_id" binding:"required"`
	Quantity   Amount `json:"quantity"`
	Selected   bool   `json:"selected"`
}

// EstimateDraftRequest is the entry form as the client holds it. It is used
// by create, preview and draft export.
type EstimateDraftRequest struct {
	Name             string            `json:"name"`
	LineItems        []LineItemRequest `json:"line_items" binding:"dive"`
	LaborRatePerUnit Amount            `json:"labor_rate_per_unit"`
	FinishingCost    Amount            `json:"finishing_cost"`
}

func (r EstimateDraftRequest) ToDraft() entities.EstimateDraft {
	items := make([]entities.LineItem, 0, len(r.LineItems))
	for _, it := range r.LineItems {
		items = append(items, entities.LineItem{
			MaterialID: strings.TrimSpace(it.MaterialID),
			Quantity:   it.Quantity.Float(),
			Selected:   it.Selected,
		})
	}
	return entities.EstimateDraft{
		Name:             strings.TrimSpace(r.Name),
		LineItems:        items,
		LaborRatePerUnit: r.LaborRatePerUnit.Float(),
		FinishingCost:    r.FinishingCost.Float(),
	}
}

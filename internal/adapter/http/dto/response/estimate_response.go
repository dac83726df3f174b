package response

import (
	"time"

	"calcplanner/internal/domain/entities"
)

type LineItemResponse struct {
	MaterialID string  `json:"material_id"`
	Quantity   float64 `json:"quantity"`
	Selected   bool    `json:"selected"`
}

type EstimateResponse struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	LineItems        []LineItemResponse `json:"line_items"`
	LaborRatePerUnit float64            `json:"labor_rate_per_unit"`
	FinishingCost    float64            `json:"finishing_cost"`
	CreatedAt        time.Time          `json:"created_at"`
	Total            float64            `json:"total"`
}

type EstimateListResponse struct {
	Estimates []EstimateResponse `json:"estimates"`
	Source    string             `json:"source"`
}

// DraftResponse is an entry form ready to fill in. FromEstimateID is set when
// the form was loaded from a saved estimate.
type DraftResponse struct {
	Name             string             `json:"name"`
	LineItems        []LineItemResponse `json:"line_items"`
	LaborRatePerUnit float64            `json:"labor_rate_per_unit"`
	FinishingCost    float64            `json:"finishing_cost"`
	FromEstimateID   string             `json:"from_estimate_id,omitempty"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:               e.ID,
		Name:             e.Name,
		LineItems:        fromLineItems(e.LineItems),
		LaborRatePerUnit: e.LaborRatePerUnit,
		FinishingCost:    e.FinishingCost,
		CreatedAt:        e.CreatedAt,
		Total:            e.Total,
	}
}

func FromEstimateSet(set entities.EstimateSet) EstimateListResponse {
	out := make([]EstimateResponse, 0, len(set.Estimates))
	for _, e := range set.Estimates {
		out = append(out, FromEstimate(e))
	}
	return EstimateListResponse{Estimates: out, Source: string(set.Source)}
}

func FromDraft(d entities.EstimateDraft, fromEstimateID string) DraftResponse {
	return DraftResponse{
		Name:             d.Name,
		LineItems:        fromLineItems(d.LineItems),
		LaborRatePerUnit: d.LaborRatePerUnit,
		FinishingCost:    d.FinishingCost,
		FromEstimateID:   fromEstimateID,
	}
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemResponse{
			MaterialID: it.MaterialID,
			Quantity:   it.Quantity,
			Selected:   it.Selected,
		})
	}
	return out
}

package response

import "calcplanner/internal/domain/entities"

type BreakdownLineResponse struct {
	MaterialID      string  `json:"material_id"`
	Name            string  `json:"name"`
	Unit            string  `json:"unit"`
	UnitPrice       float64 `json:"unit_price"`
	Quantity        float64 `json:"quantity"`
	MaterialCost    float64 `json:"material_cost"`
	LaborCost       float64 `json:"labor_cost"`
	MaterialMissing bool    `json:"material_missing"`
}

type BreakdownResponse struct {
	Lines            []BreakdownLineResponse `json:"lines"`
	LaborRatePerUnit float64                 `json:"labor_rate_per_unit"`
	MaterialsCost    float64                 `json:"materials_cost"`
	LaborCost        float64                 `json:"labor_cost"`
	FinishingCost    float64                 `json:"finishing_cost"`
	Total            float64                 `json:"total"`
}

func FromBreakdown(b entities.Breakdown) BreakdownResponse {
	lines := make([]BreakdownLineResponse, 0, len(b.Lines))
	for _, l := range b.Lines {
		lines = append(lines, BreakdownLineResponse(l))
	}
	return BreakdownResponse{
		Lines:            lines,
		LaborRatePerUnit: b.LaborRatePerUnit,
		MaterialsCost:    b.MaterialsCost,
		LaborCost:        b.LaborCost,
		FinishingCost:    b.FinishingCost,
		Total:            b.Total,
	}
}

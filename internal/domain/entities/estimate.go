package entities

import "time"

// LineItem is one material row of an estimate in progress.
//
// A line only contributes cost when Selected is true; a zero Quantity
// contributes nothing either way.
type LineItem struct {
	MaterialID string  `json:"material_id"`
	Quantity   float64 `json:"quantity"`
	Selected   bool    `json:"selected"`
}

// EstimateDraft is what the entry form submits.
type EstimateDraft struct {
	Name             string     `json:"name"`
	LineItems        []LineItem `json:"line_items"`
	LaborRatePerUnit float64    `json:"labor_rate_per_unit"`
	FinishingCost    float64    `json:"finishing_cost"`
}

// Estimate is a persisted, named cost calculation (orçamento).
//
// Storage model:
//   - one JSON array under the "estimates" key, rewritten on every change
//   - CreatedAt serialized as an ISO-8601 string
//
// Total is computed once at creation with the catalog prices of that moment
// and never recomputed afterwards. Estimates are never edited in place.
type Estimate struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	LineItems        []LineItem `json:"line_items"`
	LaborRatePerUnit float64    `json:"labor_rate_per_unit"`
	FinishingCost    float64    `json:"finishing_cost"`
	CreatedAt        time.Time  `json:"created_at"`
	Total            float64    `json:"total"`
}

// Draft returns the inputs the estimate was created from.
func (e Estimate) Draft() EstimateDraft {
	items := make([]LineItem, len(e.LineItems))
	copy(items, e.LineItems)
	return EstimateDraft{
		Name:             e.Name,
		LineItems:        items,
		LaborRatePerUnit: e.LaborRatePerUnit,
		FinishingCost:    e.FinishingCost,
	}
}

// EstimateSet is the result of loading all estimates.
type EstimateSet struct {
	Estimates []Estimate
	Source    CatalogSource
}

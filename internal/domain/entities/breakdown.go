package entities

import "time"

// BreakdownLine is the resolved cost of one selected line item.
//
// Name and Unit are empty and UnitPrice is zero when the material is no
// longer in the catalog.
type BreakdownLine struct {
	MaterialID      string  `json:"material_id"`
	Name            string  `json:"name"`
	Unit            string  `json:"unit"`
	UnitPrice       float64 `json:"unit_price"`
	Quantity        float64 `json:"quantity"`
	MaterialCost    float64 `json:"material_cost"`
	LaborCost       float64 `json:"labor_cost"`
	MaterialMissing bool    `json:"material_missing"`
}

// Breakdown is the itemized view of a total.
type Breakdown struct {
	Lines            []BreakdownLine `json:"lines"`
	LaborRatePerUnit float64         `json:"labor_rate_per_unit"`
	MaterialsCost    float64         `json:"materials_cost"`
	LaborCost        float64         `json:"labor_cost"`
	FinishingCost    float64         `json:"finishing_cost"`
	Total            float64         `json:"total"`
}

// ExportFormat names a printable document format.
type ExportFormat string

const (
	ExportFormatPDF  ExportFormat = "pdf"
	ExportFormatHTML ExportFormat = "html"
)

// ExportInput is everything a renderer needs. Renderers print Breakdown.Total
// as given and never recompute it.
type ExportInput struct {
	Name        string
	CreatedAt   time.Time
	GeneratedAt time.Time
	Currency    string
	Breakdown   Breakdown
}

// ExportDocument is a rendered, self-contained document.
type ExportDocument struct {
	FileName    string
	ContentType string
	Body        []byte
}

package usecase

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"calcplanner/internal/domain/entities"
)

// ComputeTotal is the pricing engine: materials + labor + finishing.
//
//	materials = Σ selected && quantity > 0 : unit price * quantity
//	labor     = Σ selected                 : labor rate * quantity
//
// A selected line whose material is missing from the catalog adds no material
// cost but still adds labor cost.
func ComputeTotal(items []entities.LineItem, catalog []entities.Material, laborRatePerUnit, finishingCost float64) float64 {
	return ComputeBreakdown(items, catalog, laborRatePerUnit, finishingCost).Total
}

// ComputeBreakdown itemizes ComputeTotal. Only selected lines are listed.
func ComputeBreakdown(items []entities.LineItem, catalog []entities.Material, laborRatePerUnit, finishingCost float64) entities.Breakdown {
	prices := make(map[string]entities.Material, len(catalog))
	for _, m := range catalog {
		prices[m.ID] = m
	}

	b := entities.Breakdown{
		Lines:            make([]entities.BreakdownLine, 0, len(items)),
		LaborRatePerUnit: laborRatePerUnit,
		FinishingCost:    finishingCost,
	}
	for _, it := range items {
		if !it.Selected {
			continue
		}
		line := entities.BreakdownLine{
			MaterialID: it.MaterialID,
			Quantity:   it.Quantity,
			LaborCost:  laborRatePerUnit * it.Quantity,
		}
		if m, ok := prices[it.MaterialID]; ok {
			line.Name = m.Name
			line.Unit = m.Unit
			line.UnitPrice = m.UnitPrice
			if it.Quantity > 0 {
				line.MaterialCost = m.UnitPrice * it.Quantity
			}
		} else {
			line.MaterialMissing = true
		}
		b.MaterialsCost += line.MaterialCost
		b.LaborCost += line.LaborCost
		b.Lines = append(b.Lines, line)
	}
	b.Total = b.MaterialsCost + b.LaborCost + finishingCost
	return b
}

// NewDraftLineItems returns one blank line per catalog material.
func NewDraftLineItems(catalog []entities.Material) []entities.LineItem {
	items := make([]entities.LineItem, 0, len(catalog))
	for _, m := range catalog {
		items = append(items, entities.LineItem{MaterialID: m.ID})
	}
	return items
}

// DraftFromEstimate prefills an entry form from a saved estimate. The record's
// lines come first, followed by a blank line for every catalog material the
// record does not mention.
func DraftFromEstimate(e entities.Estimate, catalog []entities.Material) entities.EstimateDraft {
	d := e.Draft()
	seen := make(map[string]struct{}, len(d.LineItems))
	for _, it := range d.LineItems {
		seen[it.MaterialID] = struct{}{}
	}
	for _, m := range catalog {
		if _, ok := seen[m.ID]; !ok {
			d.LineItems = append(d.LineItems, entities.LineItem{MaterialID: m.ID})
		}
	}
	return d
}

// CoercePrice maps NaN, infinities and negatives to zero.
func CoercePrice(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// leadingNumber matches the numeric prefix of a form value.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseAmount reads a form value the way the entry form does: the leading
// number is taken and the rest ignored ("12abc" is 12). Blank text, text
// without a leading number, and infinities are 0. A comma decimal separator
// is accepted.
func ParseAmount(raw string) float64 {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	m := leadingNumber.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

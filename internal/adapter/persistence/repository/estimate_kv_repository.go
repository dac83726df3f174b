package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"calcplanner/internal/domain/entities"
	"calcplanner/internal/usecase/interfaces"
)

type lineItemRecord struct {
	MaterialID string  `json:"materialId"`
	Quantity   float64 `json:"quantity"`
	Selected   bool    `json:"selected"`
}

type estimateRecord struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	LineItems        []lineItemRecord `json:"lineItems"`
	LaborRatePerUnit float64          `json:"laborRatePerUnit"`
	FinishingCost    float64          `json:"finishingCost"`
	CreatedAt        string           `json:"createdAt"`
	Total            float64          `json:"total"`
}

// EstimateKVRepository persists the estimate collection as one JSON array.
//
// Document layout (key "estimates"):
//
//	[{"id", "name", "lineItems": [{"materialId", "quantity", "selected"}],
//	  "laborRatePerUnit", "finishingCost", "createdAt", "total"}]

type EstimateKVRepository struct {
	store interfaces.IKeyValueStore
	key   string
}

var _ interfaces.IEstimateRepository = (*EstimateKVRepository)(nil)

func NewEstimateKVRepository(store interfaces.IKeyValueStore, keyPrefix string) *EstimateKVRepository {
	return &EstimateKVRepository{
		store: store,
		key:   storageKey(keyPrefix, KeyEstimates),
	}
}

func (r *EstimateKVRepository) LoadAll(ctx context.Context) ([]entities.Estimate, error) {
	raw, found, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return decodeEstimates(raw)
}

func (r *EstimateKVRepository) SaveAll(ctx context.Context, estimates []entities.Estimate) error {
	raw, err := encodeEstimates(estimates)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, r.key, raw)
}

func (r *EstimateKVRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, r.key)
}

func encodeEstimates(estimates []entities.Estimate) ([]byte, error) {
	records := make([]estimateRecord, 0, len(estimates))
	for _, e := range estimates {
		records = append(records, toEstimateRecord(e))
	}
	return json.Marshal(records)
}

func decodeEstimates(raw []byte) ([]entities.Estimate, error) {
	var records []estimateRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode estimates: %w", err)
	}
	out := make([]entities.Estimate, 0, len(records))
	for _, rec := range records {
		e, err := fromEstimateRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func toEstimateRecord(e entities.Estimate) estimateRecord {
	items := make([]lineItemRecord, 0, len(e.LineItems))
	for _, it := range e.LineItems {
		items = append(items, lineItemRecord{
			MaterialID: it.MaterialID,
			Quantity:   it.Quantity,
			Selected:   it.Selected,
		})
	}
	return estimateRecord{
		ID:               e.ID,
		Name:             e.Name,
		LineItems:        items,
		LaborRatePerUnit: e.LaborRatePerUnit,
		FinishingCost:    e.FinishingCost,
		CreatedAt:        e.CreatedAt.UTC().Format(isoTimestampLayout),
		Total:            e.Total,
	}
}

func fromEstimateRecord(rec estimateRecord) (entities.Estimate, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	if err != nil {
		return entities.Estimate{}, fmt.Errorf("decode estimate %q createdAt: %w", rec.ID, err)
	}
	items := make([]entities.LineItem, 0, len(rec.LineItems))
	for _, it := range rec.LineItems {
		items = append(items, entities.LineItem{
			MaterialID: it.MaterialID,
			Quantity:   it.Quantity,
			Selected:   it.Selected,
		})
	}
	return entities.Estimate{
		ID:               rec.ID,
		Name:             rec.Name,
		LineItems:        items,
		LaborRatePerUnit: rec.LaborRatePerUnit,
		FinishingCost:    rec.FinishingCost,
		CreatedAt:        createdAt.UTC(),
		Total:            rec.Total,
	}, nil
}

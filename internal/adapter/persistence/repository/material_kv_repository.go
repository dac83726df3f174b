package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"calcplanner/internal/domain/entities"
	"calcplanner/internal/usecase/interfaces"
)

type materialRecord struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Unit      string  `json:"unit"`
}

// MaterialKVRepository persists the catalog as one JSON array under the
// "materials" key. Every save rewrites the full collection.

type MaterialKVRepository struct {
	store interfaces.IKeyValueStore
	key   string
}

var _ interfaces.IMaterialRepository = (*MaterialKVRepository)(nil)

func NewMaterialKVRepository(store interfaces.IKeyValueStore, keyPrefix string) *MaterialKVRepository {
	return &MaterialKVRepository{
		store: store,
		key:   storageKey(keyPrefix, KeyMaterials),
	}
}

func (r *MaterialKVRepository) Load(ctx context.Context) ([]entities.Material, bool, error) {
	raw, found, err := r.store.Get(ctx, r.key)
	if err != nil || !found {
		return nil, false, err
	}

	var records []materialRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, false, fmt.Errorf("decode materials: %w", err)
	}
	out := make([]entities.Material, 0, len(records))
	for _, rec := range records {
		out = append(out, entities.Material{
			ID:        rec.ID,
			Name:      rec.Name,
			UnitPrice: rec.UnitPrice,
			Unit:      rec.Unit,
		})
	}
	return out, true, nil
}

func (r *MaterialKVRepository) SaveAll(ctx context.Context, materials []entities.Material) error {
	records := make([]materialRecord, 0, len(materials))
	for _, m := range materials {
		records = append(records, materialRecord{
			ID:        m.ID,
			Name:      m.Name,
			UnitPrice: m.UnitPrice,
			Unit:      m.Unit,
		})
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, r.key, raw)
}

package interfaces

import (
	"context"

	"calcplanner/internal/domain/entities"
)

// IEstimateRepository abstracts persistence of the estimate collection.
//
// The collection is stored as a single document:
//   - LoadAll returns (nil, nil) when nothing was saved yet
//   - SaveAll replaces the whole collection (no partial update)
//   - Clear removes the document; LoadAll then returns (nil, nil) again

type IEstimateRepository interface {
	LoadAll(ctx context.Context) ([]entities.Estimate, error)
	SaveAll(ctx context.Context, estimates []entities.Estimate) error
	Clear(ctx context.Context) error
}

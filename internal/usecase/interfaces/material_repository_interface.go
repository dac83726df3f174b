package interfaces

import (
	"context"

	"calcplanner/internal/domain/entities"
)

// IMaterialRepository abstracts persistence of the catalog.
//
// found is false when no catalog was ever saved, which callers must tell
// apart from a read or decode failure.

type IMaterialRepository interface {
	Load(ctx context.Context) (materials []entities.Material, found bool, err error)
	SaveAll(ctx context.Context, materials []entities.Material) error
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"calcplanner/internal/domain/entities"
	"calcplanner/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidMaterialID = errors.New("invalid material id")
	ErrMaterialNotFound  = errors.New("material not found")
	ErrPersistence       = errors.New("persistence failure")
)

// ICatalogUseCase exposes the material catalog.
//
//   - Load never fails: it falls back to the seed set and says so in Source
//   - UpdatePrice rewrites the whole collection and notifies observers

type ICatalogUseCase interface {
	Load(ctx context.Context) entities.CatalogSnapshot
	UpdatePrice(ctx context.Context, materialID string, price float64) (entities.Material, error)
	Subscribe(fn func([]entities.Material)) (cancel func())
}

// CatalogReader is the read side of the catalog, used by other use cases.
type CatalogReader interface {
	Load(ctx context.Context) entities.CatalogSnapshot
}

type CatalogUseCase struct {
	repo     interfaces.IMaterialRepository
	defaults []entities.Material
	log      *zap.Logger
	metrics  interfaces.IMetricsRecorder

	mu        sync.Mutex
	observers observerList[[]entities.Material]
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

// NewCatalogUseCase builds the catalog. An empty defaults slice selects
// entities.DefaultMaterials.
func NewCatalogUseCase(repo interfaces.IMaterialRepository, defaults []entities.Material, log *zap.Logger, metrics interfaces.IMetricsRecorder) *CatalogUseCase {
	if len(defaults) == 0 {
		defaults = entities.DefaultMaterials()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogUseCase{
		repo:     repo,
		defaults: cloneMaterials(defaults),
		log:      log.Named("catalog"),
		metrics:  metrics,
	}
}

func (u *CatalogUseCase) Load(ctx context.Context) entities.CatalogSnapshot {
	materials, found, err := u.repo.Load(ctx)
	if err != nil {
		u.log.Warn("catalog load failed; using seed materials", zap.Error(err))
		u.storageError("load_materials")
		return entities.CatalogSnapshot{Materials: cloneMaterials(u.defaults), Source: entities.SourceFallback}
	}
	if !found {
		u.log.Debug("no stored catalog; using seed materials", zap.Int("count", len(u.defaults)))
		return entities.CatalogSnapshot{Materials: cloneMaterials(u.defaults), Source: entities.SourceDefault}
	}
	u.log.Debug("catalog loaded", zap.Int("count", len(materials)))
	return entities.CatalogSnapshot{Materials: materials, Source: entities.SourceStored}
}

// UpdatePrice rewrites the stored catalog with one changed price. Observers
// run while the catalog lock is held, so they see updates in write order and
// must not call UpdatePrice themselves.
func (u *CatalogUseCase) UpdatePrice(ctx context.Context, materialID string, price float64) (entities.Material, error) {
	materialID = strings.TrimSpace(materialID)
	if materialID == "" {
		return entities.Material{}, ErrInvalidMaterialID
	}
	price = CoercePrice(price)

	u.mu.Lock()
	defer u.mu.Unlock()

	// a failed read must not turn into a write of the seed prices
	current, found, err := u.repo.Load(ctx)
	if err != nil {
		u.log.Error("price update aborted: stored catalog unreadable", zap.String("material_id", materialID), zap.Error(err))
		u.storageError("load_materials")
		return entities.Material{}, fmt.Errorf("%w: load materials: %w", ErrPersistence, err)
	}
	if !found {
		current = u.defaults
	}

	updated := cloneMaterials(current)
	idx := -1
	for i := range updated {
		if updated[i].ID == materialID {
			updated[i].UnitPrice = price
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.Material{}, ErrMaterialNotFound
	}
	if err := u.repo.SaveAll(ctx, updated); err != nil {
		u.log.Error("save materials failed", zap.String("material_id", materialID), zap.Error(err))
		u.storageError("save_materials")
		return entities.Material{}, fmt.Errorf("%w: save materials: %w", ErrPersistence, err)
	}

	u.log.Info("material price updated",
		zap.String("material_id", materialID),
		zap.Float64("unit_price", price),
	)
	if u.metrics != nil {
		u.metrics.PriceUpdated()
	}
	u.observers.notify(cloneMaterials(updated))
	return updated[idx], nil
}

func (u *CatalogUseCase) Subscribe(fn func([]entities.Material)) (cancel func()) {
	return u.observers.add(fn)
}

func (u *CatalogUseCase) storageError(op string) {
	if u.metrics != nil {
		u.metrics.StorageError(op)
	}
}

func cloneMaterials(in []entities.Material) []entities.Material {
	out := make([]entities.Material, len(in))
	copy(out, in)
	return out
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"calcplanner/internal/domain/entities"
	"calcplanner/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEstimateNotFound    = errors.New("estimate not found")
	ErrInvalidEstimateID   = errors.New("invalid estimate id")
	ErrInvalidEstimateName = errors.New("estimate name is required")
	ErrNoMaterialSelected  = errors.New("no material selected")
	ErrNoQuantityEntered   = errors.New("no quantity entered for a selected material")
)

// IEstimateUseCase exposes the estimate store and the entry form helpers.
//
// These operations map to the two screens of the app:
//   - entry form: NewDraft, Preview, Create (after ValidateDraft)
//   - saved list: LoadAll, GetByID, Remove, ClearAll

type IEstimateUseCase interface {
	LoadAll(ctx context.Context) entities.EstimateSet
	Create(ctx context.Context, draft entities.EstimateDraft) (entities.Estimate, error)
	Remove(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	Preview(ctx context.Context, draft entities.EstimateDraft) entities.Breakdown
	NewDraft(ctx context.Context) entities.EstimateDraft
	DraftFrom(ctx context.Context, e entities.Estimate) entities.EstimateDraft
}

type EstimateUseCase struct {
	repo    interfaces.IEstimateRepository
	catalog CatalogReader
	log     *zap.Logger
	metrics interfaces.IMetricsRecorder

	newID func() string
	now   func() time.Time

	// serializes read-modify-write cycles on the stored collection
	mu sync.Mutex
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, catalog CatalogReader, log *zap.Logger, metrics interfaces.IMetricsRecorder) *EstimateUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &EstimateUseCase{
		repo:    repo,
		catalog: catalog,
		log:     log.Named("estimate"),
		metrics: metrics,
		newID:   newEstimateID,
		now:     time.Now,
	}
}

// ValidateDraft runs the entry form checks that must pass before Create.
func ValidateDraft(d entities.EstimateDraft) error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrInvalidEstimateName
	}
	selected := false
	for _, it := range d.LineItems {
		if !it.Selected {
			continue
		}
		selected = true
		if it.Quantity > 0 {
			return nil
		}
	}
	if !selected {
		return ErrNoMaterialSelected
	}
	return ErrNoQuantityEntered
}

func (u *EstimateUseCase) LoadAll(ctx context.Context) entities.EstimateSet {
	estimates, err := u.repo.LoadAll(ctx)
	if err != nil {
		u.log.Warn("estimates load failed; treating as empty", zap.Error(err))
		u.storageError("load_estimates")
		return entities.EstimateSet{Estimates: []entities.Estimate{}, Source: entities.SourceFallback}
	}
	if estimates == nil {
		return entities.EstimateSet{Estimates: []entities.Estimate{}, Source: entities.SourceDefault}
	}
	u.log.Debug("estimates loaded", zap.Int("count", len(estimates)))
	return entities.EstimateSet{Estimates: estimates, Source: entities.SourceStored}
}

// Create stores a new estimate. The name is not checked here; callers run
// ValidateDraft first.
func (u *EstimateUseCase) Create(ctx context.Context, draft entities.EstimateDraft) (entities.Estimate, error) {
	catalog := u.catalog.Load(ctx)

	items := make([]entities.LineItem, len(draft.LineItems))
	copy(items, draft.LineItems)

	e := entities.Estimate{
		ID:               u.newID(),
		Name:             draft.Name,
		LineItems:        items,
		LaborRatePerUnit: draft.LaborRatePerUnit,
		FinishingCost:    draft.FinishingCost,
		CreatedAt:        u.now().UTC().Truncate(time.Millisecond),
		Total:            ComputeTotal(items, catalog.Materials, draft.LaborRatePerUnit, draft.FinishingCost),
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	current, err := u.repo.LoadAll(ctx)
	if err != nil {
		u.log.Error("create aborted: stored estimates unreadable", zap.Error(err))
		u.storageError("load_estimates")
		return entities.Estimate{}, fmt.Errorf("%w: load estimates: %w", ErrPersistence, err)
	}

	next := make([]entities.Estimate, 0, len(current)+1)
	next = append(next, current...)
	next = append(next, e)
	if err := u.repo.SaveAll(ctx, next); err != nil {
		u.log.Error("save estimates failed", zap.String("estimate_id", e.ID), zap.Error(err))
		u.storageError("save_estimates")
		return entities.Estimate{}, fmt.Errorf("%w: save estimates: %w", ErrPersistence, err)
	}

	u.log.Info("estimate created",
		zap.String("estimate_id", e.ID),
		zap.String("name", e.Name),
		zap.Float64("total", e.Total),
		zap.Int("count", len(next)),
	)
	if u.metrics != nil {
		u.metrics.EstimateCreated()
	}
	return e, nil
}

// Remove deletes an estimate. Removing an unknown id is not an error.
func (u *EstimateUseCase) Remove(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimateID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	current, err := u.repo.LoadAll(ctx)
	if err != nil {
		u.storageError("load_estimates")
		return fmt.Errorf("%w: load estimates: %w", ErrPersistence, err)
	}

	next := make([]entities.Estimate, 0, len(current))
	for _, e := range current {
		if e.ID != id {
			next = append(next, e)
		}
	}
	if len(next) == len(current) {
		u.log.Debug("remove: estimate not present", zap.String("estimate_id", id))
		return nil
	}

	if err := u.repo.SaveAll(ctx, next); err != nil {
		u.log.Error("save estimates failed", zap.String("estimate_id", id), zap.Error(err))
		u.storageError("save_estimates")
		return fmt.Errorf("%w: save estimates: %w", ErrPersistence, err)
	}
	u.log.Info("estimate removed", zap.String("estimate_id", id), zap.Int("count", len(next)))
	if u.metrics != nil {
		u.metrics.EstimateRemoved()
	}
	return nil
}

// ClearAll removes the stored collection; the next LoadAll reports
// SourceDefault.
func (u *EstimateUseCase) ClearAll(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.repo.Clear(ctx); err != nil {
		u.storageError("clear_estimates")
		return fmt.Errorf("%w: clear estimates: %w", ErrPersistence, err)
	}
	u.log.Info("all estimates cleared")
	return nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	current, err := u.repo.LoadAll(ctx)
	if err != nil {
		u.storageError("load_estimates")
		return entities.Estimate{}, fmt.Errorf("%w: load estimates: %w", ErrPersistence, err)
	}
	for _, e := range current {
		if e.ID == id {
			return e, nil
		}
	}
	return entities.Estimate{}, ErrEstimateNotFound
}

// Preview prices an unsaved draft against the current catalog.
func (u *EstimateUseCase) Preview(ctx context.Context, draft entities.EstimateDraft) entities.Breakdown {
	catalog := u.catalog.Load(ctx)
	return ComputeBreakdown(draft.LineItems, catalog.Materials, draft.LaborRatePerUnit, draft.FinishingCost)
}

// NewDraft returns a blank entry form: one unselected line per material.
func (u *EstimateUseCase) NewDraft(ctx context.Context) entities.EstimateDraft {
	catalog := u.catalog.Load(ctx)
	return entities.EstimateDraft{LineItems: NewDraftLineItems(catalog.Materials)}
}

func (u *EstimateUseCase) DraftFrom(ctx context.Context, e entities.Estimate) entities.EstimateDraft {
	catalog := u.catalog.Load(ctx)
	return DraftFromEstimate(e, catalog.Materials)
}

func (u *EstimateUseCase) storageError(op string) {
	if u.metrics != nil {
		u.metrics.StorageError(op)
	}
}

func newEstimateID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

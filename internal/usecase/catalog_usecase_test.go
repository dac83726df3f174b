package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"calcplanner/internal/domain/entities"
	mock_interfaces "calcplanner/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// memMaterialRepo keeps the catalog in memory and can fail the next Load.
type memMaterialRepo struct {
	mu       sync.Mutex
	stored   []entities.Material
	found    bool
	failNext bool
}

func (r *memMaterialRepo) Load(context.Context) ([]entities.Material, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext {
		r.failNext = false
		return nil, false, errors.New("read timeout")
	}
	return cloneMaterials(r.stored), r.found, nil
}

func (r *memMaterialRepo) SaveAll(_ context.Context, materials []entities.Material) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stored = cloneMaterials(materials)
	r.found = true
	return nil
}

func TestCatalogUseCase_Load(t *testing.T) {
	t.Run("nothing stored uses defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		uc := NewCatalogUseCase(repo, nil, zap.NewNop(), nil)

		repo.EXPECT().Load(gomock.Any()).Return(nil, false, nil)

		snap := uc.Load(context.Background())
		assert.Equal(t, entities.SourceDefault, snap.Source)
		assert.Equal(t, entities.DefaultMaterials(), snap.Materials)
	})

	t.Run("seed overrides defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		seed := []entities.Material{{ID: "x", Name: "Pedra", UnitPrice: 9}}
		uc := NewCatalogUseCase(repo, seed, zap.NewNop(), nil)

		repo.EXPECT().Load(gomock.Any()).Return(nil, false, nil)

		snap := uc.Load(context.Background())
		assert.Equal(t, seed, snap.Materials)
	})

	t.Run("stored catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		uc := NewCatalogUseCase(repo, nil, zap.NewNop(), nil)

		stored := []entities.Material{{ID: "1", Name: "Tijolo", UnitPrice: 30}}
		repo.EXPECT().Load(gomock.Any()).Return(stored, true, nil)

		snap := uc.Load(context.Background())
		assert.Equal(t, entities.SourceStored, snap.Source)
		assert.Equal(t, stored, snap.Materials)
	})

	t.Run("unreadable storage falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		metrics := mock_interfaces.NewMockIMetricsRecorder(ctrl)
		uc := NewCatalogUseCase(repo, nil, zap.NewNop(), metrics)

		repo.EXPECT().Load(gomock.Any()).Return(nil, false, errors.New("corrupt"))
		metrics.EXPECT().StorageError("load_materials")

		snap := uc.Load(context.Background())
		assert.Equal(t, entities.SourceFallback, snap.Source)
		assert.Len(t, snap.Materials, len(entities.DefaultMaterials()))
	})
}

func TestCatalogUseCase_UpdatePrice(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil, zap.NewNop(), nil)
		_, err := uc.UpdatePrice(context.Background(), "  ", 10)
		if !errors.Is(err, ErrInvalidMaterialID) {
			t.Fatalf("expected ErrInvalidMaterialID, got %v", err)
		}
	})

	t.Run("unknown material", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		uc := NewCatalogUseCase(repo, nil, zap.NewNop(), nil)

		repo.EXPECT().Load(gomock.Any()).Return(nil, false, nil)

		_, err := uc.UpdatePrice(context.Background(), "404", 10)
		if !errors.Is(err, ErrMaterialNotFound) {
			t.Fatalf("expected ErrMaterialNotFound, got %v", err)
		}
	})

	t.Run("persists whole catalog and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		metrics := mock_interfaces.NewMockIMetricsRecorder(ctrl)
		uc := NewCatalogUseCase(repo, nil, zap.NewNop(), metrics)

		var saved []entities.Material
		repo.EXPECT().Load(gomock.Any()).Return(nil, false, nil)
		repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m []entities.Material) error {
				saved = m
				return nil
			})
		metrics.EXPECT().PriceUpdated()

		var notified []entities.Material
		uc.Subscribe(func(m []entities.Material) { notified = m })

		got, err := uc.UpdatePrice(context.Background(), "1", 30)
		require.NoError(t, err)
		assert.Equal(t, "1", got.ID)
		assert.Equal(t, "Tijolo", got.Name)
		assert.InDelta(t, 30.0, got.UnitPrice, 1e-9)

		require.Len(t, saved, len(entities.DefaultMaterials()))
		assert.InDelta(t, 30.0, saved[0].UnitPrice, 1e-9)
		assert.InDelta(t, 18.75, saved[1].UnitPrice, 1e-9)
		assert.Equal(t, saved, notified)
	})

	t.Run("negative price is stored as zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		uc := NewCatalogUseCase(repo, nil, zap.NewNop(), nil)

		repo.EXPECT().Load(gomock.Any()).Return(nil, false, nil)
		repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.UpdatePrice(context.Background(), "2", -5)
		require.NoError(t, err)
		assert.Zero(t, got.UnitPrice)
	})

	t.Run("read failure aborts without writing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		metrics := mock_interfaces.NewMockIMetricsRecorder(ctrl)
		uc := NewCatalogUseCase(repo, nil, zap.NewNop(), metrics)

		repo.EXPECT().Load(gomock.Any()).Return(nil, false, errors.New("read timeout"))
		repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Times(0)
		metrics.EXPECT().StorageError("load_materials")

		called := false
		uc.Subscribe(func([]entities.Material) { called = true })

		_, err := uc.UpdatePrice(context.Background(), "1", 30)
		if !errors.Is(err, ErrPersistence) {
			t.Fatalf("expected ErrPersistence, got %v", err)
		}
		if called {
			t.Fatalf("observer must not run when the read fails")
		}
	})

	t.Run("earlier edits survive a failed read", func(t *testing.T) {
		repo := &memMaterialRepo{}
		uc := NewCatalogUseCase(repo, nil, zap.NewNop(), nil)
		ctx := context.Background()

		_, err := uc.UpdatePrice(ctx, "2", 99)
		require.NoError(t, err)

		repo.failNext = true
		_, err = uc.UpdatePrice(ctx, "1", 30)
		require.ErrorIs(t, err, ErrPersistence)

		snap := uc.Load(ctx)
		require.Equal(t, entities.SourceStored, snap.Source)
		m1, _ := findMaterial(snap.Materials, "1")
		m2, _ := findMaterial(snap.Materials, "2")
		assert.InDelta(t, 25.50, m1.UnitPrice, 1e-9)
		assert.InDelta(t, 99.0, m2.UnitPrice, 1e-9)
	})

	t.Run("write failure does not notify", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		metrics := mock_interfaces.NewMockIMetricsRecorder(ctrl)
		uc := NewCatalogUseCase(repo, nil, zap.NewNop(), metrics)

		repo.EXPECT().Load(gomock.Any()).Return(nil, false, nil)
		repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
		metrics.EXPECT().StorageError("save_materials")

		called := false
		uc.Subscribe(func([]entities.Material) { called = true })

		_, err := uc.UpdatePrice(context.Background(), "1", 30)
		if !errors.Is(err, ErrPersistence) {
			t.Fatalf("expected ErrPersistence, got %v", err)
		}
		if called {
			t.Fatalf("observer must not run when the write fails")
		}
	})
}

func TestCatalogUseCase_Subscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
	uc := NewCatalogUseCase(repo, nil, zap.NewNop(), nil)

	repo.EXPECT().Load(gomock.Any()).Return(nil, false, nil).Times(2)
	repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	var order []string
	cancelFirst := uc.Subscribe(func([]entities.Material) { order = append(order, "first") })
	uc.Subscribe(func([]entities.Material) { order = append(order, "second") })

	_, err := uc.UpdatePrice(context.Background(), "1", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)

	cancelFirst()
	cancelFirst()
	order = nil

	_, err = uc.UpdatePrice(context.Background(), "1", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"second"}, order)
	assert.Equal(t, 1, uc.observers.len())
}

func TestCatalogUseCase_NotifiesInWriteOrder(t *testing.T) {
	repo := &memMaterialRepo{}
	uc := NewCatalogUseCase(repo, nil, zap.NewNop(), nil)

	var (
		mu   sync.Mutex
		last float64
	)
	uc.Subscribe(func(materials []entities.Material) {
		m, _ := findMaterial(materials, "1")
		mu.Lock()
		last = m.UnitPrice
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(price float64) {
			defer wg.Done()
			_, err := uc.UpdatePrice(context.Background(), "1", price)
			assert.NoError(t, err)
		}(float64(i))
	}
	wg.Wait()

	stored, _ := findMaterial(uc.Load(context.Background()).Materials, "1")
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, stored.UnitPrice, last)
}

func findMaterial(materials []entities.Material, id string) (entities.Material, bool) {
	for _, m := range materials {
		if m.ID == id {
			return m, true
		}
	}
	return entities.Material{}, false
}

package routes

import (
	"context"
	"fmt"

	"calcplanner/internal/adapter/export/htmlexport"
	"calcplanner/internal/adapter/export/pdfexport"
	"calcplanner/internal/adapter/persistence/repository"
	"calcplanner/internal/domain/entities"
	"calcplanner/internal/infrastructure/config"
	"calcplanner/internal/infrastructure/kvstore"
	"calcplanner/internal/infrastructure/metrics"
	"calcplanner/internal/usecase"
	"calcplanner/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// App is the wired object graph behind the router. One EditHandoff is shared
// by the list and the entry form.
type App struct {
	Store     interfaces.IKeyValueStore
	Metrics   *metrics.Metrics
	Catalog   *usecase.CatalogUseCase
	Estimates *usecase.EstimateUseCase
	Handoff   *usecase.EditHandoff
	Export    *usecase.ExportUseCase

	unsubscribe []func()
}

// NewApp builds the application on top of store. seed replaces the default
// catalog when not empty.
func NewApp(store interfaces.IKeyValueStore, seed []entities.Material, cfg config.Config, log *zap.Logger, registerer prometheus.Registerer) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	m := metrics.New(registerer)

	materialRepo := repository.NewMaterialKVRepository(store, cfg.Storage.KeyPrefix)
	estimateRepo := repository.NewEstimateKVRepository(store, cfg.Storage.KeyPrefix)

	catalogUseCase := usecase.NewCatalogUseCase(materialRepo, seed, log, m)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, catalogUseCase, log, m)
	handoff := usecase.NewEditHandoff()

	htmlRenderer, err := htmlexport.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("html renderer: %w", err)
	}
	exportUseCase := usecase.NewExportUseCase(
		estimateUseCase,
		catalogUseCase,
		[]interfaces.IDocumentRenderer{pdfexport.NewRenderer(), htmlRenderer},
		cfg.Export.Currency,
		log,
		m,
	)

	app := &App{
		Store:     store,
		Metrics:   m,
		Catalog:   catalogUseCase,
		Estimates: estimateUseCase,
		Handoff:   handoff,
		Export:    exportUseCase,
	}

	events := log.Named("events")
	app.unsubscribe = append(app.unsubscribe,
		catalogUseCase.Subscribe(func(materials []entities.Material) {
			events.Debug("catalog changed", zap.Int("materials", len(materials)))
		}),
		handoff.Subscribe(func(e *entities.Estimate) {
			if e == nil {
				events.Debug("edit hand-off emptied")
				return
			}
			events.Debug("edit hand-off filled", zap.String("estimate_id", e.ID))
		}),
	)
	return app, nil
}

// OpenApp opens the configured store and catalog seed, then builds the App.
func OpenApp(ctx context.Context, cfg config.Config, log *zap.Logger, registerer prometheus.Registerer) (*App, error) {
	seed, seedFile, err := config.LoadCatalogSeed(cfg.Catalog.SearchPaths)
	if err != nil {
		return nil, err
	}
	if seedFile != "" {
		log.Info("catalog seed loaded", zap.String("file", seedFile), zap.Int("materials", len(seed)))
	}

	store, err := kvstore.Open(ctx, cfg.Storage, log)
	if err != nil {
		return nil, err
	}
	app, err := NewApp(store, seed, cfg, log, registerer)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return app, nil
}

func (a *App) Close() error {
	for _, cancel := range a.unsubscribe {
		cancel()
	}
	return a.Store.Close()
}

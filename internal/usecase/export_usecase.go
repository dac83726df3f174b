package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"calcplanner/internal/domain/entities"
	"calcplanner/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
	ErrExportFailed            = errors.New("export failed")
)

const DefaultCurrency = "€"

// IExportUseCase produces printable documents for saved estimates and for
// unsaved entry forms.

type IExportUseCase interface {
	Export(ctx context.Context, estimateID string, format entities.ExportFormat) (entities.ExportDocument, error)
	ExportDraft(ctx context.Context, draft entities.EstimateDraft, format entities.ExportFormat) (entities.ExportDocument, error)
	Formats() []entities.ExportFormat
}

type ExportUseCase struct {
	estimates IEstimateUseCase
	catalog   CatalogReader
	renderers map[entities.ExportFormat]interfaces.IDocumentRenderer
	currency  string
	log       *zap.Logger
	metrics   interfaces.IMetricsRecorder

	now func() time.Time
}

var _ IExportUseCase = (*ExportUseCase)(nil)

func NewExportUseCase(
	estimates IEstimateUseCase,
	catalog CatalogReader,
	renderers []interfaces.IDocumentRenderer,
	currency string,
	log *zap.Logger,
	metrics interfaces.IMetricsRecorder,
) *ExportUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	if strings.TrimSpace(currency) == "" {
		currency = DefaultCurrency
	}
	byFormat := make(map[entities.ExportFormat]interfaces.IDocumentRenderer, len(renderers))
	for _, r := range renderers {
		if r != nil {
			byFormat[r.Format()] = r
		}
	}
	return &ExportUseCase{
		estimates: estimates,
		catalog:   catalog,
		renderers: byFormat,
		currency:  currency,
		log:       log.Named("export"),
		metrics:   metrics,
		now:       time.Now,
	}
}

// Export renders a saved estimate. Names and unit prices come from the current
// catalog; the total printed is the one stored with the estimate.
func (u *ExportUseCase) Export(ctx context.Context, estimateID string, format entities.ExportFormat) (entities.ExportDocument, error) {
	renderer, err := u.renderer(format)
	if err != nil {
		return entities.ExportDocument{}, err
	}

	e, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		return entities.ExportDocument{}, err
	}

	catalog := u.catalog.Load(ctx)
	b := ComputeBreakdown(e.LineItems, catalog.Materials, e.LaborRatePerUnit, e.FinishingCost)
	b.Total = e.Total

	return u.render(renderer, entities.ExportInput{
		Name:        e.Name,
		CreatedAt:   e.CreatedAt,
		GeneratedAt: u.now(),
		Currency:    u.currency,
		Breakdown:   b,
	})
}

// ExportDraft renders an entry form that has not been saved yet.
func (u *ExportUseCase) ExportDraft(ctx context.Context, draft entities.EstimateDraft, format entities.ExportFormat) (entities.ExportDocument, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return entities.ExportDocument{}, ErrInvalidEstimateName
	}
	renderer, err := u.renderer(format)
	if err != nil {
		return entities.ExportDocument{}, err
	}

	catalog := u.catalog.Load(ctx)
	now := u.now()
	return u.render(renderer, entities.ExportInput{
		Name:        draft.Name,
		CreatedAt:   now,
		GeneratedAt: now,
		Currency:    u.currency,
		Breakdown:   ComputeBreakdown(draft.LineItems, catalog.Materials, draft.LaborRatePerUnit, draft.FinishingCost),
	})
}

func (u *ExportUseCase) Formats() []entities.ExportFormat {
	out := make([]entities.ExportFormat, 0, len(u.renderers))
	for f := range u.renderers {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (u *ExportUseCase) renderer(format entities.ExportFormat) (interfaces.IDocumentRenderer, error) {
	f := entities.ExportFormat(strings.ToLower(strings.TrimSpace(string(format))))
	if f == "" {
		f = entities.ExportFormatPDF
	}
	r, ok := u.renderers[f]
	if !ok {
		return nil, ErrUnsupportedExportFormat
	}
	return r, nil
}

func (u *ExportUseCase) render(r interfaces.IDocumentRenderer, in entities.ExportInput) (entities.ExportDocument, error) {
	doc, err := r.Render(in)
	if err != nil {
		u.log.Error("render failed", zap.String("format", string(r.Format())), zap.String("name", in.Name), zap.Error(err))
		if u.metrics != nil {
			u.metrics.ExportRendered(string(r.Format()), false)
		}
		return entities.ExportDocument{}, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	u.log.Info("document rendered",
		zap.String("format", string(r.Format())),
		zap.String("name", in.Name),
		zap.Int("bytes", len(doc.Body)),
	)
	if u.metrics != nil {
		u.metrics.ExportRendered(string(r.Format()), true)
	}
	return doc, nil
}

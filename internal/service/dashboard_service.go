package service

import (
	"context"
	"fmt"
	"time"

	"github.com/AMESmith/customer-dashboard/internal/domain"
	"github.com/AMESmith/customer-dashboard/internal/pipeline"
	"github.com/AMESmith/customer-dashboard/internal/source"
	"go.uber.org/zap"
)

// DashboardService serves filtered views over a record set loaded once at startup.
// The record set is never modified after construction, so the service is safe for
// concurrent use.
type DashboardService struct {
	records      []domain.EngagementRecord
	options      domain.FilterOptions
	defaultOrder domain.StageOrder
	loadedAt     time.Time
	logger       *zap.Logger
}

// NewDashboardService loads and validates the records of src.
// defaultOrder is used when a request does not choose a stage order.
func NewDashboardService(
	ctx context.Context,
	src source.RecordSource,
	defaultOrder domain.StageOrder,
	logger *zap.Logger,
) (*DashboardService, error) {
	if defaultOrder == "" {
		defaultOrder = domain.StageOrderLexicographic
	}
	if !defaultOrder.IsValid() {
		return nil, fmt.Errorf("%w: unsupported stage order %q", ErrInvalidInput, defaultOrder)
	}

	start := time.Now()
	records, err := source.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("failed to load engagement records: %w", err)
	}

	options := pipeline.DeriveOptions(records)
	logger.Info("engagement records loaded",
		zap.Int("records", len(records)),
		zap.Int("account_managers", len(options.AccountManagers)),
		zap.Int64("min_value", options.ValueBounds.Min),
		zap.Int64("max_value", options.ValueBounds.Max),
		zap.String("stage_order", string(defaultOrder)),
		zap.Duration("duration", time.Since(start)),
	)

	return &DashboardService{
		records:      records,
		options:      options,
		defaultOrder: defaultOrder,
		loadedAt:     time.Now(),
		logger:       logger,
	}, nil
}

// Options returns the selectable domain of every filter
func (s *DashboardService) Options() domain.FilterOptions {
	return s.options
}

// DefaultCriteria returns the all-pass criteria for the loaded dataset
func (s *DashboardService) DefaultCriteria() domain.FilterCriteria {
	return s.options.DefaultCriteria()
}

// DefaultStageOrder returns the stage order used when none is requested
func (s *DashboardService) DefaultStageOrder() domain.StageOrder {
	return s.defaultOrder
}

// RecordCount returns the size of the loaded dataset
func (s *DashboardService) RecordCount() int {
	return len(s.records)
}

// LoadedAt returns when the dataset finished loading
func (s *DashboardService) LoadedAt() time.Time {
	return s.loadedAt
}

// View validates the criteria, filters the dataset and aggregates the result.
// An empty order selects the service default.
func (s *DashboardService) View(ctx context.Context, criteria domain.FilterCriteria, order domain.StageOrder) (*domain.DerivedView, error) {
	if order == "" {
		order = s.defaultOrder
	}
	if !order.IsValid() {
		return nil, fmt.Errorf("%w: unsupported stage order %q", ErrInvalidInput, order)
	}

	filtered, err := s.filter(ctx, criteria)
	if err != nil {
		return nil, err
	}

	view := pipeline.Aggregate(filtered, order)
	s.logger.Debug("dashboard view computed",
		zap.Int("matched", view.TotalCount),
		zap.Int("records", len(s.records)),
		zap.Int64("total_value", view.TotalValue),
		zap.String("stage_order", string(order)),
	)
	return &view, nil
}

// Records returns the raw records matching the criteria, in dataset order
func (s *DashboardService) Records(ctx context.Context, criteria domain.FilterCriteria) ([]domain.EngagementRecord, error) {
	return s.filter(ctx, criteria)
}

// Summary returns the view of the unfiltered dataset
func (s *DashboardService) Summary(ctx context.Context) (*domain.DerivedView, error) {
	return s.View(ctx, s.DefaultCriteria(), "")
}

func (s *DashboardService) filter(ctx context.Context, criteria domain.FilterCriteria) ([]domain.EngagementRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := pipeline.ValidateCriteria(criteria, s.options.ValueBounds); err != nil {
		return nil, err
	}
	return pipeline.Filter(s.records, criteria), nil
}

package jobs

import (
	"context"
	"time"

	"github.com/AMESmith/customer-dashboard/internal/domain"
	"github.com/AMESmith/customer-dashboard/internal/logger"
	"github.com/AMESmith/customer-dashboard/internal/mapper"
	"go.uber.org/zap"
)

// SummaryJobName is the name of the scheduled KPI summary job
const SummaryJobName = "summary_report"

// SummaryService computes the view of the unfiltered dataset.
// Satisfied by *service.DashboardService.
type SummaryService interface {
	Summary(ctx context.Context) (*domain.DerivedView, error)
}

// SummaryJob logs the headline KPIs of the whole dataset
type SummaryJob struct {
	service SummaryService
	logger  *zap.Logger
	timeout time.Duration
}

// NewSummaryJob creates a new summary job.
// The timeout controls how long a single run is allowed to take.
func NewSummaryJob(service SummaryService, log *zap.Logger, timeout time.Duration) *SummaryJob {
	return &SummaryJob{
		service: service,
		logger:  logger.WithJob(log, SummaryJobName),
		timeout: timeout,
	}
}

// Run computes and logs the summary. Called by the scheduler.
func (j *SummaryJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	view, err := j.service.Summary(ctx)
	if err != nil {
		j.logger.Error("summary report failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return
	}

	kpis := mapper.ToKPIDisplay(view)
	fields := []zap.Field{
		zap.Int("total_contracts", view.TotalCount),
		zap.String("average_turnaround", kpis.AverageTurnaround),
		zap.Int64("total_value", view.TotalValue),
		zap.String("total_value_display", kpis.TotalValue),
		zap.Int("products", len(view.ValueByProduct)),
		zap.Int("active_dates", len(view.VolumeByDate)),
		zap.Duration("duration", time.Since(start)),
	}
	if top, ok := topProduct(view.ValueByProduct); ok {
		fields = append(fields,
			zap.String("top_product", string(top.Product)),
			zap.String("top_product_value", mapper.FormatCurrency(top.TotalValue)),
		)
	}

	j.logger.Info("summary report", fields...)
}

// topProduct returns the product with the highest total value; ties keep the earliest entry
func topProduct(values []domain.ProductValue) (domain.ProductValue, bool) {
	if len(values) == 0 {
		return domain.ProductValue{}, false
	}
	top := values[0]
	for _, v := range values[1:] {
		if v.TotalValue > top.TotalValue {
			top = v
		}
	}
	return top, true
}

// RegisterSummaryJob registers the summary job with the scheduler.
// If runOnStartup is true the job also runs once immediately in a background goroutine.
func RegisterSummaryJob(scheduler *Scheduler, service SummaryService, logger *zap.Logger, cronExpr string, timeout time.Duration, runOnStartup bool) error {
	job := NewSummaryJob(service, logger, timeout)

	if err := scheduler.AddJob(SummaryJobName, cronExpr, job.Run); err != nil {
		return err
	}

	if runOnStartup {
		go job.Run()
	}
	return nil
}

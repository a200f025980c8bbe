package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

const (
	// DefaultLowStockSchedule runs the report at the top of every minute.
	DefaultLowStockSchedule  = "0 * * * * *"
	DefaultLowStockThreshold = 10

	lowStockReportTimeout = 30 * time.Second
)

// LowStockReader returns active products at or below a stock threshold.
type LowStockReader interface {
	Handle(ctx context.Context, query queries.GetLowStockProductsQuery) ([]queries.ProductView, error)
}

// LowStockReportJob periodically logs one warning per active product whose stock has
// dropped to the threshold or below. It only reads.
type LowStockReportJob struct {
	reader    LowStockReader
	threshold int
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewLowStockReportJob(reader LowStockReader, threshold int, schedule string, logger *slog.Logger) *LowStockReportJob {
	if schedule == "" {
		schedule = DefaultLowStockSchedule
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LowStockReportJob{
		reader:    reader,
		threshold: threshold,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "low_stock_report_job"),
	}
}

// Start registers the report on its schedule and starts the scheduler.
func (j *LowStockReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return fmt.Errorf("invalid low stock schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock report job started",
		"schedule", j.schedule,
		"threshold", j.threshold,
	)
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *LowStockReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Low stock report job stopped")
}

func (j *LowStockReportJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), lowStockReportTimeout)
	defer cancel()

	query, err := queries.NewGetLowStockProductsQuery(j.threshold)
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock report job misconfigured", "error", err)
		return
	}

	products, err := j.reader.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock report job failed", "error", err)
		return
	}

	for _, p := range products {
		j.logger.WarnContext(ctx, "Product stock is low",
			"productID", p.ID.String(),
			"name", p.Name,
			"category", p.Category,
			"stock", p.Stock,
			"threshold", j.threshold,
		)
	}
}

package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	lowStockReportJob *LowStockReportJob
}

// NewJobManager creates a job manager with every background job wired.
func NewJobManager(lowStock LowStockReader, threshold int, schedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		lowStockReportJob: NewLowStockReportJob(lowStock, threshold, schedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock report job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowStockReportJob.Stop()
}

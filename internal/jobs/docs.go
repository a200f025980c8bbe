// Package jobs provides scheduled background tasks for the shop service.
//
// Jobs are cron-based (github.com/robfig/cron/v3 with a seconds field) and never
// modify orders or stock.
//
// # Available Jobs
//
// LowStockReportJob reads active products whose stock is at or below a threshold and
// logs a warning for each, lowest stock first. The default schedule "0 * * * * *" runs
// it once a minute; overlapping runs are skipped.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(lowStockHandler, 10, "", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Query failures are logged and the next tick runs as usual. An invalid schedule is
// reported by StartAll.
package jobs

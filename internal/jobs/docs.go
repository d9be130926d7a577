// Package jobs provides scheduled background tasks for the parcel service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around order processing.
//
// # Available Jobs
//
// 1. OrderDigestJob - Runs hourly to log the per-status order counts
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getOrdersSummaryHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The digest job uses the cron expression "0 0 * * * *", firing at the top
// of every hour. Each run is tagged with a unique run id so log lines from
// one run can be correlated.
//
// # Error Handling
//
// Digest failures are logged and the job keeps its schedule; a transient
// database error in one run does not affect the next.
package jobs

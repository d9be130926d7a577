package jobs

import (
	"fmt"
	"log/slog"

	"parcelhub/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderDigestJob *OrderDigestJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getOrdersSummaryHandler queries.GetOrdersSummaryQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderDigestJob: NewOrderDigestJob(getOrdersSummaryHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderDigestJob.Start(); err != nil {
		return fmt.Errorf("failed to start order digest job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderDigestJob.Stop()
}

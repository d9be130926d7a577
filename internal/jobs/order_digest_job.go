package jobs

import (
	"context"
	"log/slog"

	"parcelhub/internal/core/application/usecases/queries"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// OrderDigestJob periodically logs how many orders sit in each status.
// The digest gives operators a cheap pulse on the order pipeline without
// querying the database by hand.
type OrderDigestJob struct {
	handler queries.GetOrdersSummaryQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderDigestJob creates a job that logs the order summary every hour.
func NewOrderDigestJob(handler queries.GetOrdersSummaryQueryHandler, logger *slog.Logger) *OrderDigestJob {
	return &OrderDigestJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_digest_job"),
	}
}

// Start schedules the digest at the top of every hour.
func (j *OrderDigestJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order digest job started (running hourly)")
	return nil
}

// Stop stops the digest job.
func (j *OrderDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order digest job stopped")
}

func (j *OrderDigestJob) run() {
	ctx := context.Background()
	runID := uuid.NewString()

	rows, err := j.handler.Handle(ctx, queries.NewGetOrdersSummaryQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order digest failed", "run_id", runID, "error", err)
		return
	}

	var total int64
	for _, row := range rows {
		total += row.Count
		j.logger.InfoContext(ctx, "Order digest",
			"run_id", runID, "status", row.Status, "count", row.Count)
	}
	j.logger.InfoContext(ctx, "Order digest complete", "run_id", runID, "total", total)
}

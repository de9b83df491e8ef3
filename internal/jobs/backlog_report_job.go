package jobs

import (
	"context"
	"log/slog"

	"laundry/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// BacklogReportJob periodically logs the open order backlog broken down by
// status. Runs every minute so operators can watch the queue without
// querying the database by hand.
type BacklogReportJob struct {
	handler queries.GetActiveOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBacklogReportJob creates a new job for reporting the order backlog.
func NewBacklogReportJob(handler queries.GetActiveOrdersQueryHandler, logger *slog.Logger) *BacklogReportJob {
	return &BacklogReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "backlog_report_job"),
	}
}

// Start begins the backlog report job to run every minute.
func (j *BacklogReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetActiveOrdersQuery()

		orders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Backlog report job failed", "error", err)
			return
		}

		byStatus := make(map[string]int)
		for _, o := range orders {
			byStatus[o.Status.String()]++
		}

		j.logger.InfoContext(ctx, "Order backlog",
			"total", len(orders),
			"byStatus", byStatus,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backlog report job started (running every minute)")
	return nil
}

// Stop stops the backlog report job.
func (j *BacklogReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Backlog report job stopped")
}

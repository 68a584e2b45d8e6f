package jobs

import (
	"context"
	"log/slog"
	"time"

	"burgershop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderExpiryJob cancels pending orders nobody touched for too long.
// Runs every minute and cancels every pending order older than maxAge.
type StaleOrderExpiryJob struct {
	handler commands.ExpireStaleOrdersCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderExpiryJob creates a new job for expiring stale orders.
// Uses ExpireStaleOrdersCommandHandler to cancel pending orders older than maxAge.
func NewStaleOrderExpiryJob(
	handler commands.ExpireStaleOrdersCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *StaleOrderExpiryJob {
	return &StaleOrderExpiryJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_order_expiry_job"),
	}
}

// Start begins the stale order expiry job to run every minute.
func (j *StaleOrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpireStaleOrdersCommand(j.maxAge)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale order expiry job misconfigured", "error", cmdErr)
			return
		}

		expired, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale order expiry job failed", "error", handleErr)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale orders", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order expiry job started (running every minute)")
	return nil
}

// Stop stops the stale order expiry job.
func (j *StaleOrderExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order expiry job stopped")
}

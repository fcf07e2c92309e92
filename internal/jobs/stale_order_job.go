package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"campusmarket/internal/core/application/usecases/commands"
	"campusmarket/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob periodically cancels Pending orders the seller never reacted
// to. Runs hourly; maxAge decides how long a Pending order may linger.
type StaleOrderJob struct {
	handler commands.ExpireStaleOrdersCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderJob creates the stale order sweep job.
func NewStaleOrderJob(
	handler commands.ExpireStaleOrdersCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_order_job"),
	}
}

// Start schedules the sweep to run at the top of every hour.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpireStaleOrdersCommand(j.maxAge)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep misconfigured", "error", cmdErr)
			return
		}

		expired, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			// A lost write race means a user acted on the order mid-sweep;
			// the next run will pick up whatever is still stale.
			if errors.Is(handleErr, errs.ErrVersionIsInvalid) {
				j.logger.InfoContext(ctx, "Stale order sweep lost a write race, will retry next run")
				return
			}
			j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", handleErr)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale orders", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started (running hourly)", "max_age", j.maxAge)
	return nil
}

// Stop stops the stale order job.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}

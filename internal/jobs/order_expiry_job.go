package jobs

import (
	"context"
	"log/slog"
	"time"

	"shipmate/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type expireStaleOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.ExpireStaleOrdersCommand) (int, error)
}

// OrderExpiryJob closes pending orders nobody accepted within the configured TTL.
type OrderExpiryJob struct {
	handler   expireStaleOrdersHandler
	schedule  string
	ttl       time.Duration
	batchSize int
	timeout   time.Duration
	now       func() time.Time
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOrderExpiryJob creates the expiry job. schedule is a six-field cron expression
// with seconds.
func NewOrderExpiryJob(
	handler expireStaleOrdersHandler,
	schedule string,
	ttl time.Duration,
	logger *slog.Logger,
) *OrderExpiryJob {
	return &OrderExpiryJob{
		handler:   handler,
		schedule:  schedule,
		ttl:       ttl,
		batchSize: commands.DefaultExpiryBatchSize,
		timeout:   30 * time.Second,
		now:       time.Now,
		cron:      newCron(),
		logger:    logger.With("component", "order_expiry_job"),
	}
}

func (j *OrderExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order expiry job started",
		"schedule", j.schedule,
		"ttl", j.ttl.String(),
	)
	return nil
}

// Run performs one expiry pass. Failures are logged, the next scheduled run retries.
func (j *OrderExpiryJob) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	cmd, err := commands.NewExpireStaleOrdersCommand(j.now(), j.ttl, j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order expiry job misconfigured", "error", err)
		return
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order expiry job failed", "error", err)
		return
	}
	if expired > 0 {
		j.logger.InfoContext(ctx, "Expired stale orders", "count", expired)
	}
}

// Stop waits for a running pass to finish.
func (j *OrderExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order expiry job stopped")
}

func newCron() *cron.Cron {
	return cron.New(
		cron.WithSeconds(),
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
}

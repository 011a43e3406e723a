package jobs

import (
	"context"
	"log/slog"
	"time"

	"shipmate/internal/core/application/usecases/queries"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

type countAvailableOrdersHandler interface {
	Handle(ctx context.Context, query queries.CountAvailableOrdersQuery) (int64, error)
}

// AvailableOrdersGaugeJob keeps the available-orders gauge in step with the database.
type AvailableOrdersGaugeJob struct {
	handler  countAvailableOrdersHandler
	gauge    prometheus.Gauge
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewAvailableOrdersGaugeJob(
	handler countAvailableOrdersHandler,
	gauge prometheus.Gauge,
	schedule string,
	logger *slog.Logger,
) *AvailableOrdersGaugeJob {
	return &AvailableOrdersGaugeJob{
		handler:  handler,
		gauge:    gauge,
		schedule: schedule,
		cron:     newCron(),
		logger:   logger.With("component", "available_orders_gauge_job"),
	}
}

func (j *AvailableOrdersGaugeJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Available orders gauge job started", "schedule", j.schedule)
	return nil
}

// Run refreshes the gauge once. On failure the previous value is kept.
func (j *AvailableOrdersGaugeJob) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	count, err := j.handler.Handle(ctx, queries.NewCountAvailableOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Available orders gauge job failed", "error", err)
		return
	}

	j.gauge.Set(float64(count))
}

func (j *AvailableOrdersGaugeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Available orders gauge job stopped")
}

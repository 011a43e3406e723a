// Package jobs provides scheduled background tasks for the parcel matching service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3. Schedules
// are six-field expressions with seconds, evaluated in UTC.
//
// # Available Jobs
//
// 1. OrderExpiryJob - moves pending orders nobody accepted within ORDER_TTL to expired
// 2. AvailableOrdersGaugeJob - refreshes the available_orders gauge
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewOrderExpiryJob(expireHandler, "0 * * * * *", 72*time.Hour, logger),
//		jobs.NewAvailableOrdersGaugeJob(countHandler, m.AvailableOrders, "*/30 * * * * *", logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed pass is logged at error level and retried by the next scheduled run
// - Overlapping runs of one job are skipped
// - Failed job starts will stop any already running jobs
package jobs

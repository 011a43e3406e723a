package jobs

import (
	"fmt"
)

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderExpiryJob     *OrderExpiryJob
	availableOrdersJob *AvailableOrdersGaugeJob
}

func NewJobManager(orderExpiryJob *OrderExpiryJob, availableOrdersJob *AvailableOrdersGaugeJob) *JobManager {
	return &JobManager{
		orderExpiryJob:     orderExpiryJob,
		availableOrdersJob: availableOrdersJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	named := []struct {
		name string
		job  job
	}{
		{"order expiry", jm.orderExpiryJob},
		{"available orders gauge", jm.availableOrdersJob},
	}

	started := make([]job, 0, len(named))
	for _, n := range named {
		if err := n.job.Start(); err != nil {
			// Stop already started jobs if this one fails
			for _, s := range started {
				s.Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", n.name, err)
		}
		started = append(started, n.job)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running passes to finish.
func (jm *JobManager) StopAll() {
	jm.orderExpiryJob.Stop()
	jm.availableOrdersJob.Stop()
}

package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	approvalTimeoutJob *ApprovalTimeoutJob
	queueDispatcherJob *QueueDispatcherJob
}

// NewJobManager creates a job manager over the given jobs.
func NewJobManager(
	approvalTimeoutJob *ApprovalTimeoutJob,
	queueDispatcherJob *QueueDispatcherJob,
) *JobManager {
	return &JobManager{
		approvalTimeoutJob: approvalTimeoutJob,
		queueDispatcherJob: queueDispatcherJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.approvalTimeoutJob.Start(); err != nil {
		return fmt.Errorf("failed to start approval timeout job: %w", err)
	}

	if err := jm.queueDispatcherJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.approvalTimeoutJob.Stop()
		return fmt.Errorf("failed to start queue dispatcher job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.approvalTimeoutJob.Stop()
	jm.queueDispatcherJob.Stop()
}

// Package jobs provides scheduled background tasks for the transcription
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required around the order lifecycle.
//
// # Available Jobs
//
// 1. ApprovalTimeoutJob - Runs every minute to reject submissions that sat in
// the approval queue past the configured timeout, returning the order to the
// review pool.
//
// 2. QueueDispatcherJob - Runs every second to drain the database-backed job
// queue, delivering pending payloads (ASR triggers, conversion requests) to
// their registered consumers.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(approvalTimeoutJob, queueDispatcherJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The timeout job treats InvalidState as a lost race with a human decision
// and skips the order silently; everything else is logged.
// - The dispatcher logs delivery failures and leaves the payload pending for
// the next attempt; the queue marks a payload failed after repeated errors.
// - Failed job starts stop any already running jobs.
package jobs

package jobs

import (
	"context"
	"log/slog"

	"transcription/internal/adapters/out/queue"

	"github.com/robfig/cron/v3"
)

const dispatchBatchSize = 50

// QueueDispatcherJob drains the database-backed job queue. Runs every second
// and hands pending payloads to the handler registered for each queue name.
type QueueDispatcherJob struct {
	queue    *queue.GormJobQueue
	handlers map[string]queue.Handler
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewQueueDispatcherJob creates a dispatcher over the given queue. The
// handlers map binds queue names to their consumers.
func NewQueueDispatcherJob(
	jobQueue *queue.GormJobQueue,
	handlers map[string]queue.Handler,
	logger *slog.Logger,
) *QueueDispatcherJob {
	return &QueueDispatcherJob{
		queue:    jobQueue,
		handlers: handlers,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "queue_dispatcher_job"),
	}
}

// Start begins the dispatcher, polling every second.
func (j *QueueDispatcherJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", j.tick)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Queue dispatcher job started (running every second)",
		"queues", len(j.handlers))
	return nil
}

// Stop stops the dispatcher.
func (j *QueueDispatcherJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Queue dispatcher job stopped")
}

func (j *QueueDispatcherJob) tick() {
	ctx := context.Background()

	for name, handler := range j.handlers {
		dispatched, err := j.queue.Dispatch(ctx, name, dispatchBatchSize, handler)
		if err != nil {
			j.logger.ErrorContext(ctx, "Queue dispatch failed", "queue", name, "error", err)
			continue
		}
		if dispatched > 0 {
			j.logger.DebugContext(ctx, "Dispatched queued jobs", "queue", name, "count", dispatched)
		}
	}
}

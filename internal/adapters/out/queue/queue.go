// Package queue implements a database-backed job queue. Producers enqueue
// payloads inside or outside a transaction; a dispatcher polls for pending
// rows and hands them to registered handlers. Claiming uses FOR UPDATE SKIP
// LOCKED so multiple dispatcher instances never double-deliver.
package queue

import (
	"context"
	"time"

	"transcription/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	statusPending    = 0
	statusDispatched = 1
	statusFailed     = 2
)

const maxAttempts = 5

// JobDTO represents one queued payload.
type JobDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Queue        string    `gorm:"index:idx_queue_status,priority:1"`
	Payload      []byte
	Status       int `gorm:"index:idx_queue_status,priority:2"`
	Attempts     int
	LastError    string
	CreatedAt    time.Time
	DispatchedAt *time.Time
}

// TableName overrides GORM's default naming convention to use "queue_jobs".
func (JobDTO) TableName() string {
	return "queue_jobs"
}

// GormJobQueue implements ports.JobQueue on top of PostgreSQL.
type GormJobQueue struct {
	db *gorm.DB
}

// NewGormJobQueue creates a database-backed job queue.
func NewGormJobQueue(db *gorm.DB) *GormJobQueue {
	return &GormJobQueue{db: db}
}

// Enqueue appends a payload to the named queue.
func (q *GormJobQueue) Enqueue(ctx context.Context, queue string, payload []byte) error {
	if queue == "" {
		return errs.NewValueIsRequiredError("queue")
	}
	if len(payload) == 0 {
		return errs.NewValueIsRequiredError("payload")
	}

	dto := JobDTO{
		ID:        uuid.New(),
		Queue:     queue,
		Payload:   payload,
		Status:    statusPending,
		CreatedAt: time.Now().UTC(),
	}
	return q.db.WithContext(ctx).Create(&dto).Error
}

// Handler processes one payload from a queue. A non-nil error leaves the job
// pending for another attempt, up to maxAttempts.
type Handler func(ctx context.Context, payload []byte) error

// Dispatch claims up to limit pending jobs from the named queue and runs the
// handler on each. Claimed rows are locked for the duration of the batch;
// concurrent dispatchers skip them and pick up the rest.
func (q *GormJobQueue) Dispatch(ctx context.Context, queue string, limit int, handler Handler) (int, error) {
	dispatched := 0

	err := q.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var jobs []JobDTO
		err := tx.Raw(`
			SELECT id, queue, payload, status, attempts, last_error, created_at, dispatched_at
			FROM queue_jobs
			WHERE queue = ? AND status = ?
			ORDER BY created_at
			LIMIT ?
			FOR UPDATE SKIP LOCKED
		`, queue, statusPending, limit).Scan(&jobs).Error
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		for _, j := range jobs {
			handlerErr := handler(ctx, j.Payload)
			if handlerErr != nil {
				update := map[string]any{
					"attempts":   j.Attempts + 1,
					"last_error": handlerErr.Error(),
				}
				if j.Attempts+1 >= maxAttempts {
					update["status"] = statusFailed
				}
				if err := tx.Model(&JobDTO{}).Where("id = ?", j.ID).Updates(update).Error; err != nil {
					return err
				}
				continue
			}

			err = tx.Model(&JobDTO{}).Where("id = ?", j.ID).Updates(map[string]any{
				"status":        statusDispatched,
				"dispatched_at": now,
			}).Error
			if err != nil {
				return err
			}
			dispatched++
		}

		return nil
	})

	return dispatched, err
}

package ports

import (
	"context"

	"transcription/internal/core/domain/model/job"
	"transcription/internal/core/domain/model/kernel"
)

// JobAssignmentRepository defines the persistence contract for job assignment
// aggregates. Closed assignments are never deleted; they feed the history
// queries.
type JobAssignmentRepository interface {
	// Add persists a new assignment aggregate to storage.
	Add(ctx context.Context, aggregate *job.Assignment) error

	// Update persists changes to an existing assignment. Like orders, the
	// write is conditional on the loaded status and returns
	// errs.ErrInvalidState when a concurrent transaction won.
	Update(ctx context.Context, aggregate *job.Assignment) error

	// Get retrieves an assignment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*job.Assignment, error)

	// GetActiveByOrderAndType retrieves the active assignment for an order
	// and job type, if one exists. At most one may exist at any time;
	// assignment commands check this before creating a new claim.
	GetActiveByOrderAndType(ctx context.Context, orderID kernel.UUID, jobType job.Type) (*job.Assignment, error)

	// GetAllActiveByOrder retrieves every active assignment on an order,
	// across job types. Used by bulk rejection and cancellation.
	GetAllActiveByOrder(ctx context.Context, orderID kernel.UUID) ([]*job.Assignment, error)

	// GetAllByTranscriber retrieves the transcriber's assignment history,
	// all statuses, newest first.
	GetAllByTranscriber(ctx context.Context, transcriberID kernel.UUID) ([]*job.Assignment, error)
}

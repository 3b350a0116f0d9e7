package queries

import (
	"context"

	"transcription/internal/core/domain/model/job"
	"transcription/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAssignmentHistoryQueryHandler retrieves a transcriber's full assignment
// history.
type GetAssignmentHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignmentHistoryQueryHandler creates a handler for assignment
// history queries.
func NewGetAssignmentHistoryQueryHandler(db *gorm.DB) GetAssignmentHistoryQueryHandler {
	return GetAssignmentHistoryQueryHandler{db: db}
}

// Handle executes the query, newest assignment first.
func (h GetAssignmentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentHistoryQuery,
) ([]AssignmentReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history := make([]AssignmentReadModel, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			transcriber_id,
			job_type,
			status,
			accepted_ts,
			completed_ts,
			cancelled_ts
		FROM job_assignments
		WHERE transcriber_id = ?
		ORDER BY accepted_ts DESC
	`, query.TranscriberID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var a AssignmentReadModel
		var id, oid, tid uuid.UUID
		var jobType, status int

		err = rows.Scan(
			&id,
			&oid,
			&tid,
			&jobType,
			&status,
			&a.AcceptedTs,
			&a.CompletedTs,
			&a.CancelledTs,
		)
		if err != nil {
			return nil, err
		}

		if a.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if a.OrderID, err = kernel.UUIDFromBytes(oid[:]); err != nil {
			return nil, err
		}
		if a.TranscriberID, err = kernel.UUIDFromBytes(tid[:]); err != nil {
			return nil, err
		}
		a.JobType = job.Type(jobType).String()
		a.Status = job.Status(status).String()
		history = append(history, a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

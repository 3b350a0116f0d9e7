package queries

import (
	"context"
	"database/sql"
	"errors"

	"transcription/internal/core/domain/model/job"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/core/domain/model/order"
	"transcription/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order and its active assignments using
// direct SQL for optimal read performance.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFound when no such order
// exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse
	var id, customerID uuid.UUID
	var orderType, status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			file_id,
			customer_id,
			order_type,
			status,
			priority,
			pwer,
			rate_bonus,
			delivery_ts,
			delivered_ts,
			re_review,
			high_difficulty
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.FileID,
		&customerID,
		&orderType,
		&status,
		&resp.Priority,
		&resp.PWER,
		&resp.RateBonus,
		&resp.DeliveryTs,
		&resp.DeliveredTs,
		&resp.ReReview,
		&resp.HighDifficulty,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.OrderType = order.Type(orderType).String()
	resp.Status = order.Status(status).String()

	resp.Assignments, err = h.activeAssignments(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) activeAssignments(ctx context.Context, orderID kernel.UUID) ([]AssignmentReadModel, error) {
	assignments := make([]AssignmentReadModel, 0)

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
		WHERE order_id = ? AND status IN (?, ?)
		ORDER BY accepted_ts
	`, orderID.Bytes(), job.Accepted, job.SubmittedForApproval).Rows()
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
		assignments = append(assignments, a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

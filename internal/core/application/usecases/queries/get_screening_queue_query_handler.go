package queries

import (
	"context"

	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetScreeningQueueQueryHandler retrieves the screening work list.
type GetScreeningQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetScreeningQueueQueryHandler creates a handler for screening queue queries.
func NewGetScreeningQueueQueryHandler(db *gorm.DB) GetScreeningQueueQueryHandler {
	return GetScreeningQueueQueryHandler{db: db}
}

// Handle executes the query. Orders are returned oldest first so the queue
// drains in submission order.
func (h GetScreeningQueueQueryHandler) Handle(
	ctx context.Context,
	query GetScreeningQueueQuery,
) ([]GetScreeningQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	queue := make([]GetScreeningQueueQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.file_id,
			f.filename,
			f.duration,
			o.customer_id,
			o.order_type,
			o.priority,
			o.updated_at
		FROM orders o
		JOIN files f ON f.id = o.file_id
		WHERE o.status = ?
		ORDER BY o.updated_at
	`, order.SubmittedForScreening).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetScreeningQueueQueryResponse
		var id, customerID uuid.UUID
		var orderType int

		err = rows.Scan(
			&id,
			&resp.FileID,
			&resp.Filename,
			&resp.Duration,
			&customerID,
			&orderType,
			&resp.Priority,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		resp.OrderType = order.Type(orderType).String()
		queue = append(queue, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return queue, nil
}

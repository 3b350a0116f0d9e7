package queries

import (
	"context"

	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves the active order list. Soft-deleted
// files are excluded by the join; terminal and blocked orders by the status
// filter.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Highest priority first, then oldest delivery
// deadline.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.file_id,
			f.filename,
			o.order_type,
			o.status,
			o.priority,
			o.delivery_ts
		FROM orders o
		JOIN files f ON f.id = o.file_id
		WHERE o.status NOT IN (?, ?, ?, ?)
		  AND f.deleted_at IS NULL
		ORDER BY o.priority DESC, o.delivery_ts
	`, order.Delivered, order.Cancelled, order.Refunded, order.Blocked).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var id uuid.UUID
		var orderType, status int

		err = rows.Scan(
			&id,
			&resp.FileID,
			&resp.Filename,
			&orderType,
			&status,
			&resp.Priority,
			&resp.DeliveryTs,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		resp.OrderType = order.Type(orderType).String()
		resp.Status = order.Status(status).String()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

package queries

import (
	"errors"
	"time"

	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves all non-terminal orders whose file has not
// been soft-deleted. The back-office dashboard work list.
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for the active order list.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse is one row of the active order list.
type GetActiveOrdersQueryResponse struct {
	ID         kernel.UUID
	FileID     string
	Filename   string
	OrderType  string
	Status     string
	Priority   int
	DeliveryTs time.Time
}

package queries

import (
	"errors"
	"time"

	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/guard"
)

var ErrGetScreeningQueueQueryIsNotConstructed = errors.New(
	"GetScreeningQueueQuery must be created via NewGetScreeningQueueQuery constructor",
)

// GetScreeningQueueQuery retrieves orders waiting for a screening decision,
// oldest submission first.
type GetScreeningQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetScreeningQueueQuery creates a query for the screening work list.
func NewGetScreeningQueueQuery() GetScreeningQueueQuery {
	return GetScreeningQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetScreeningQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetScreeningQueueQueryIsNotConstructed)
}

// GetScreeningQueueQueryResponse is one row of the screening work list.
type GetScreeningQueueQueryResponse struct {
	ID         kernel.UUID
	FileID     string
	Filename   string
	Duration   float64
	CustomerID kernel.UUID
	OrderType  string
	Priority   int
	UpdatedAt  time.Time
}

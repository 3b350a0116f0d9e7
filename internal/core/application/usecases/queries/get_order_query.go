// Package queries contains the read side of the CQRS split: handlers that
// run raw SQL against the database and return flat read models, bypassing
// the aggregates entirely.
package queries

import (
	"errors"
	"time"

	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its active job assignments.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the read model for one order.
type GetOrderQueryResponse struct {
	ID             kernel.UUID
	FileID         string
	CustomerID     kernel.UUID
	OrderType      string
	Status         string
	Priority       int
	PWER           int
	RateBonus      int
	DeliveryTs     time.Time
	DeliveredTs    *time.Time
	ReReview       bool
	HighDifficulty bool
	Assignments    []AssignmentReadModel
}

// AssignmentReadModel is the read model for one job assignment row.
type AssignmentReadModel struct {
	ID            kernel.UUID
	OrderID       kernel.UUID
	TranscriberID kernel.UUID
	JobType       string
	Status        string
	AcceptedTs    time.Time
	CompletedTs   *time.Time
	CancelledTs   *time.Time
}

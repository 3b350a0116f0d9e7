// Package ports defines repository and collaborator interfaces for the
// transcription order lifecycle. These interfaces establish contracts between
// the domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"
	"time"

	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// conditional on the status the aggregate was loaded with: if another
	// transaction moved the order in the meantime, zero rows match and
	// Update returns errs.ErrInvalidState. This is what serializes
	// concurrent transition commands.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetActiveByFileID retrieves the active (non-terminal) order for a
	// file, if one exists. A file has at most one active order at a time.
	GetActiveByFileID(ctx context.Context, fileID string) (*order.Order, error)

	// GetAllActive retrieves all non-terminal orders whose file is not
	// soft-deleted.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllAwaitingScreening retrieves the screening work list: orders in
	// SubmittedForScreening, oldest first.
	GetAllAwaitingScreening(ctx context.Context) ([]*order.Order, error)

	// GetAllOverdueApprovals retrieves orders sitting in SubmittedForApproval
	// since before the cutoff. Feeds the approval timeout job.
	GetAllOverdueApprovals(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}

package ports

import (
	"context"

	"transcription/internal/core/domain/model/invoice"
	"transcription/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoices. The
// invoice row for a delivery is written in the same transaction as the
// order's status change.
type InvoiceRepository interface {
	// Add persists a new invoice.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Update persists changes to an existing invoice.
	Update(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves an invoice by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)

	// GetByOrder retrieves the invoice issued for an order, if any.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*invoice.Invoice, error)
}

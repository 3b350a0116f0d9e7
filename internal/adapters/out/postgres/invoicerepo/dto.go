// Package invoicerepo provides data transfer objects and mapping functions
// for invoice persistence.
package invoicerepo

import (
	"time"

	"transcription/internal/core/domain/model/invoice"
	"transcription/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InvoiceDTO represents the database structure for persisting invoices.
type InvoiceDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	AmountCents int64
	IssuedAt    time.Time
	Paid        bool
	PaidAt      *time.Time
}

// TableName overrides GORM's default naming convention to use "invoices".
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// fromDomain converts an invoice aggregate to its database representation.
func fromDomain(inv *invoice.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:          inv.ID().Bytes(),
		OrderID:     inv.OrderID().Bytes(),
		AmountCents: inv.AmountCents(),
		IssuedAt:    inv.IssuedAt(),
		Paid:        inv.IsPaid(),
		PaidAt:      inv.PaidAt(),
	}
}

// toDomain converts a database DTO back to an invoice aggregate.
func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return invoice.RestoreInvoice(invoice.Record{
		ID:          id,
		OrderID:     orderID,
		AmountCents: dto.AmountCents,
		IssuedAt:    dto.IssuedAt,
		Paid:        dto.Paid,
		PaidAt:      dto.PaidAt,
	})
}

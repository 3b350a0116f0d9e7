package invoice

import (
	"errors"
	"time"

	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/errs"
	"transcription/internal/pkg/guard"
)

// ErrInvoiceIsNotConstructed is returned when an Invoice was not created
// through NewInvoice or RestoreInvoice.
var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice or RestoreInvoice")

// Invoice is the billing record written when an order is delivered. One
// invoice per delivery, issued in the same transaction as the status change.
type Invoice struct {
	id      kernel.UUID
	orderID kernel.UUID

	// amountCents is the invoiced amount in the smallest currency unit.
	amountCents int64

	issuedAt time.Time
	paid     bool
	paidAt   *time.Time

	guard guard.ConstructorGuard
}

// NewInvoice issues an unpaid invoice for the order.
func NewInvoice(id, orderID kernel.UUID, amountCents int64) (*Invoice, error) {
	inv := &Invoice{
		issuedAt: time.Now().UTC(),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setOrderID(orderID),
		inv.setAmountCents(amountCents),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

// Record carries the persisted attributes of an invoice for RestoreInvoice.
type Record struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	AmountCents int64
	IssuedAt    time.Time
	Paid        bool
	PaidAt      *time.Time
}

// RestoreInvoice reconstructs an invoice from persistent storage.
func RestoreInvoice(rec Record) (*Invoice, error) {
	inv := &Invoice{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		inv.setID(rec.ID),
		inv.setOrderID(rec.OrderID),
		inv.setAmountCents(rec.AmountCents),
	); err != nil {
		return nil, err
	}

	inv.issuedAt = rec.IssuedAt
	inv.paid = rec.Paid
	inv.paidAt = rec.PaidAt

	return inv, nil
}

// Validate ensures the Invoice was built by a constructor.
func (i *Invoice) Validate() error {
	if i == nil {
		return ErrInvoiceIsNotConstructed
	}
	return i.guard.Validate(ErrInvoiceIsNotConstructed)
}

func (i *Invoice) ID() kernel.UUID      { return i.id }
func (i *Invoice) OrderID() kernel.UUID { return i.orderID }
func (i *Invoice) AmountCents() int64   { return i.amountCents }
func (i *Invoice) IssuedAt() time.Time  { return i.issuedAt }
func (i *Invoice) IsPaid() bool         { return i.paid }
func (i *Invoice) PaidAt() *time.Time   { return i.paidAt }

// MarkPaid records settlement. Paying twice is an invalid state, the payment
// gateway webhook must not double-book.
func (i *Invoice) MarkPaid() error {
	if i.paid {
		return errs.NewInvalidStateError("markPaid", "PAID")
	}
	i.paid = true
	now := time.Now().UTC()
	i.paidAt = &now
	return nil
}

func (i *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Invoice) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}

func (i *Invoice) setAmountCents(amountCents int64) error {
	if amountCents <= 0 {
		return errs.NewValueIsOutOfRangeError("amountCents", amountCents, 1, nil)
	}
	i.amountCents = amountCents
	return nil
}

package commands

import (
	"context"
	"log/slog"
	"math"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/invoice"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/core/ports"
)

// DeliverOrderCommandHandler delivers a finished order. The status change
// and the invoice row commit atomically; the customer mail goes out after.
type DeliverOrderCommandHandler struct {
	uowFactory         DeliverOrderUoWFactory
	notifier           ports.Notifier
	logger             *slog.Logger
	rateCentsPerMinute int64
}

// NewDeliverOrderCommandHandler creates a handler for order delivery.
// rateCentsPerMinute prices the invoice from the media duration.
func NewDeliverOrderCommandHandler(
	uowFactory DeliverOrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
	rateCentsPerMinute int64,
) DeliverOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return DeliverOrderCommandHandler{
		uowFactory:         uowFactory,
		notifier:           notifier,
		logger:             logger.With("component", "deliver_order"),
		rateCentsPerMinute: rateCentsPerMinute,
	}
}

// Handle processes the delivery command.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Require("deliverOrder", auth.RoleOM); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	fileRepo := uow.FileRepository()
	invoiceRepo := uow.InvoiceRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	f, err := fileRepo.Get(ctx, ord.FileID())
	if err != nil {
		return err
	}

	if err = ord.Deliver(); err != nil {
		return err
	}

	inv, err := invoice.NewInvoice(kernel.NewUUID(), ord.ID(), h.invoiceAmount(f.Duration()))
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}
	if err = invoiceRepo.Add(ctx, inv); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	sendMail(ctx, h.logger, h.notifier, mailTemplateOrderDelivered,
		ord.CustomerID().String(), map[string]string{
			"orderId":   ord.ID().String(),
			"invoiceId": inv.ID().String(),
		})
	return nil
}

// invoiceAmount prices the work: duration is billed per started minute.
func (h DeliverOrderCommandHandler) invoiceAmount(durationSeconds float64) int64 {
	minutes := int64(math.Ceil(durationSeconds / 60))
	if minutes < 1 {
		minutes = 1
	}
	return minutes * h.rateCentsPerMinute
}

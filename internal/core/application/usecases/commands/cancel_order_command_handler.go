package commands

import (
	"context"
	"log/slog"

	"transcription/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order on behalf of the owning
// customer or staff. Every assignment still in Accepted is cancelled in the
// same transaction; closed assignments stay untouched.
type CancelOrderCommandHandler struct {
	uowFactory OrderJobUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderJobUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "cancel_order"),
	}
}

// Handle processes the cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
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
	jobRepo := uow.JobAssignmentRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = cmd.Principal().RequireOwner("cancelOrder", ord.CustomerID()); err != nil {
		return err
	}

	active, err := jobRepo.GetAllActiveByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ord.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	for _, assignment := range active {
		if err = assignment.Cancel(cmd.Reason()); err != nil {
			return err
		}
		if err = jobRepo.Update(ctx, assignment); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, assignment := range active {
		sendMail(ctx, h.logger, h.notifier, mailTemplateJobUnassigned,
			assignment.TranscriberID().String(), map[string]string{
				"orderId": ord.ID().String(),
				"jobType": assignment.JobType().String(),
				"reason":  cmd.Reason(),
			})
	}
	return nil
}

package commands

import (
	"context"
	"log/slog"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/job"
	"transcription/internal/core/ports"
)

// RejectOrderCommandHandler performs the bulk rollback: the order returns to
// its resting state and every active assignment is rejected in the same
// transaction. Repeating a reject after the first succeeded fails with
// InvalidState rather than silently passing.
type RejectOrderCommandHandler struct {
	uowFactory OrderJobUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewRejectOrderCommandHandler creates a handler for order rejection.
func NewRejectOrderCommandHandler(
	uowFactory OrderJobUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) RejectOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "reject_order"),
	}
}

// Handle processes the order rejection command.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Require("rejectOrder", auth.RoleOM); err != nil {
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

	active, err := jobRepo.GetAllActiveByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ord.Reject(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	rejected := make([]*job.Assignment, 0, len(active))
	for _, assignment := range active {
		if err = assignment.Reject(cmd.Reason()); err != nil {
			return err
		}
		if err = jobRepo.Update(ctx, assignment); err != nil {
			return err
		}
		rejected = append(rejected, assignment)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, assignment := range rejected {
		sendMail(ctx, h.logger, h.notifier, mailTemplateJobUnassigned,
			assignment.TranscriberID().String(), map[string]string{
				"orderId": ord.ID().String(),
				"jobType": assignment.JobType().String(),
				"reason":  cmd.Reason(),
			})
	}
	return nil
}

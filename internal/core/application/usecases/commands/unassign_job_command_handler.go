package commands

import (
	"context"
	"log/slog"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/ports"
)

// UnassignJobCommandHandler cancels an accepted claim and retargets the
// order. After a successful call the assignment is never left in Accepted
// and the order status equals the supplied target exactly.
type UnassignJobCommandHandler struct {
	uowFactory OrderJobUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewUnassignJobCommandHandler creates a handler for job unassignment.
func NewUnassignJobCommandHandler(
	uowFactory OrderJobUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) UnassignJobCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return UnassignJobCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "unassign_job"),
	}
}

// Handle processes the unassignment command.
func (h UnassignJobCommandHandler) Handle(ctx context.Context, cmd UnassignJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Require("unassignJob", auth.RoleOM); err != nil {
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

	assignment, err := jobRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}
	ord, err := orderRepo.Get(ctx, assignment.OrderID())
	if err != nil {
		return err
	}

	if err = assignment.Cancel(cmd.Reason()); err != nil {
		return err
	}
	if err = ord.Retarget(cmd.TargetStatus()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, assignment); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	sendMail(ctx, h.logger, h.notifier, mailTemplateJobUnassigned,
		assignment.TranscriberID().String(), map[string]string{
			"orderId": ord.ID().String(),
			"jobType": assignment.JobType().String(),
			"reason":  cmd.Reason(),
		})
	return nil
}

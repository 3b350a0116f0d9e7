package commands

import (
	"context"

	"transcription/internal/core/domain/model/job"
)

// SubmitFinalizeCommandHandler completes the finalization stage, parking the
// order in PreDelivered. Only the finalizer holding the claim (or staff) may
// submit.
type SubmitFinalizeCommandHandler struct {
	uowFactory OrderJobUoWFactory
}

// NewSubmitFinalizeCommandHandler creates a handler for finalization
// submission.
func NewSubmitFinalizeCommandHandler(uowFactory OrderJobUoWFactory) SubmitFinalizeCommandHandler {
	return SubmitFinalizeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the finalization submission command.
func (h SubmitFinalizeCommandHandler) Handle(ctx context.Context, cmd SubmitFinalizeCommand) error {
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

	assignment, err := jobRepo.GetActiveByOrderAndType(ctx, cmd.OrderID(), job.Finalize)
	if err != nil {
		return err
	}
	if err = cmd.Principal().RequireOwner("submitFinalize", assignment.TranscriberID()); err != nil {
		return err
	}

	if err = ord.CompleteFinalize(); err != nil {
		return err
	}
	if err = assignment.Complete(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}
	if err = jobRepo.Update(ctx, assignment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

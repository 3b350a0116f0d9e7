package commands

import (
	"context"

	"transcription/internal/core/domain/model/job"
)

// SubmitQCCommandHandler submits the active QC assignment for OM approval.
// Only the transcriber holding the claim (or staff) may submit.
type SubmitQCCommandHandler struct {
	uowFactory OrderJobUoWFactory
}

// NewSubmitQCCommandHandler creates a handler for QC submission.
func NewSubmitQCCommandHandler(uowFactory OrderJobUoWFactory) SubmitQCCommandHandler {
	return SubmitQCCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the QC submission command.
func (h SubmitQCCommandHandler) Handle(ctx context.Context, cmd SubmitQCCommand) error {
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

	assignment, err := jobRepo.GetActiveByOrderAndType(ctx, cmd.OrderID(), job.QC)
	if err != nil {
		return err
	}
	if err = cmd.Principal().RequireOwner("submitQC", assignment.TranscriberID()); err != nil {
		return err
	}

	if err = ord.SubmitForApproval(); err != nil {
		return err
	}
	if err = assignment.SubmitForApproval(); err != nil {
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

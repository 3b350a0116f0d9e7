package commands

import (
	"context"
	"log/slog"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/job"
	"transcription/internal/core/ports"
)

// ApproveSubmissionCommandHandler approves the pending QC submission,
// completing the reviewer's assignment and marking the review done.
type ApproveSubmissionCommandHandler struct {
	uowFactory OrderJobUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewApproveSubmissionCommandHandler creates a handler for submission
// approval.
func NewApproveSubmissionCommandHandler(
	uowFactory OrderJobUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) ApproveSubmissionCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return ApproveSubmissionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "approve_submission"),
	}
}

// Handle processes the submission approval command.
func (h ApproveSubmissionCommandHandler) Handle(ctx context.Context, cmd ApproveSubmissionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Require("approveSubmission", auth.RoleOM); err != nil {
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

	if err = ord.ApproveSubmission(); err != nil {
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

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	sendMail(ctx, h.logger, h.notifier, mailTemplateSubmissionOutcome,
		assignment.TranscriberID().String(), map[string]string{
			"orderId": ord.ID().String(),
			"outcome": "approved",
		})
	return nil
}

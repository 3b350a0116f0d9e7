package commands

import (
	"context"
	"log/slog"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/job"
	"transcription/internal/core/ports"
)

// RejectApprovalCommandHandler rejects the pending QC submission, sending
// the order back to Transcribed and closing the reviewer's assignment.
type RejectApprovalCommandHandler struct {
	uowFactory OrderJobUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewRejectApprovalCommandHandler creates a handler for submission
// rejection.
func NewRejectApprovalCommandHandler(
	uowFactory OrderJobUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) RejectApprovalCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return RejectApprovalCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "reject_approval"),
	}
}

// Handle processes the submission rejection command.
func (h RejectApprovalCommandHandler) Handle(ctx context.Context, cmd RejectApprovalCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Require("rejectApprovalOrder", auth.RoleOM); err != nil {
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

	if err = ord.RejectApproval(); err != nil {
		return err
	}
	if err = assignment.Reject(cmd.Reason()); err != nil {
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
			"outcome": "rejected",
			"reason":  cmd.Reason(),
		})
	return nil
}

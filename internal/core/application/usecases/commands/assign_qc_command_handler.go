package commands

import (
	"context"
	"errors"
	"log/slog"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/job"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/core/ports"
	"transcription/internal/pkg/errs"
)

// AssignQCCommandHandler assigns a QC reviewer to a transcribed order.
// The order status and the new job assignment are written in one
// transaction; concurrent assignment attempts serialize through the
// conditional status update, so exactly one wins.
type AssignQCCommandHandler struct {
	uowFactory OrderJobUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewAssignQCCommandHandler creates a handler for QC assignment.
func NewAssignQCCommandHandler(
	uowFactory OrderJobUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) AssignQCCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return AssignQCCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "assign_qc"),
	}
}

// Handle processes the QC assignment command.
func (h AssignQCCommandHandler) Handle(ctx context.Context, cmd AssignQCCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Require("assignQC", auth.RoleOM); err != nil {
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

	// At most one active assignment per order and job type.
	existing, err := jobRepo.GetActiveByOrderAndType(ctx, cmd.OrderID(), job.QC)
	if err == nil {
		return errs.NewInvalidStateError("assignQC", existing.Status().String())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = ord.AssignReviewer(); err != nil {
		return err
	}

	assignment, err := job.NewAssignment(kernel.NewUUID(), cmd.OrderID(), cmd.TranscriberID(), job.QC)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}
	if err = jobRepo.Add(ctx, assignment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	sendMail(ctx, h.logger, h.notifier, mailTemplateJobAssigned,
		cmd.TranscriberID().String(), map[string]string{
			"orderId": ord.ID().String(),
			"jobType": job.QC.String(),
		})
	return nil
}

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

// AssignFinalizerCommandHandler assigns a finalizer to a review-completed
// order. The order status does not move, but the order row is still written
// under the version check, so two concurrent assignment attempts serialize:
// exactly one creates the assignment, the other sees InvalidState. The
// partial unique index on active assignments backstops the same invariant in
// the database.
type AssignFinalizerCommandHandler struct {
	uowFactory OrderJobUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewAssignFinalizerCommandHandler creates a handler for finalizer
// assignment.
func NewAssignFinalizerCommandHandler(
	uowFactory OrderJobUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) AssignFinalizerCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return AssignFinalizerCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "assign_finalizer"),
	}
}

// Handle processes the finalizer assignment command.
func (h AssignFinalizerCommandHandler) Handle(ctx context.Context, cmd AssignFinalizerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Require("assignFinalizer", auth.RoleOM); err != nil {
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

	existing, err := jobRepo.GetActiveByOrderAndType(ctx, cmd.OrderID(), job.Finalize)
	if err == nil {
		return errs.NewInvalidStateError("assignFinalizer", existing.Status().String())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = ord.AssignFinalizer(); err != nil {
		return err
	}

	assignment, err := job.NewAssignment(kernel.NewUUID(), cmd.OrderID(), cmd.TranscriberID(), job.Finalize)
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
			"jobType": job.Finalize.String(),
		})
	return nil
}

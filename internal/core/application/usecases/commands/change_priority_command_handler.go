package commands

import (
	"context"

	"transcription/internal/core/domain/model/auth"
)

// ChangePriorityCommandHandler raises an order's priority.
type ChangePriorityCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangePriorityCommandHandler creates a handler for priority changes.
func NewChangePriorityCommandHandler(uowFactory OrderUoWFactory) ChangePriorityCommandHandler {
	return ChangePriorityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the priority change command.
func (h ChangePriorityCommandHandler) Handle(ctx context.Context, cmd ChangePriorityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Require("changePriority", auth.RoleOM); err != nil {
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
	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ord.RaisePriority(cmd.Priority()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

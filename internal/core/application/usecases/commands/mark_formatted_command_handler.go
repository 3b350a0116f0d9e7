package commands

import (
	"context"

	"transcription/internal/core/domain/model/auth"
)

// MarkFormattedCommandHandler records the formatting stage as done.
type MarkFormattedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkFormattedCommandHandler creates a handler for the formatting stage.
func NewMarkFormattedCommandHandler(uowFactory OrderUoWFactory) MarkFormattedCommandHandler {
	return MarkFormattedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark-formatted command.
func (h MarkFormattedCommandHandler) Handle(ctx context.Context, cmd MarkFormattedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Require("markFormatted", auth.RoleOM, auth.RoleFinalizer); err != nil {
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

	if err = ord.MarkFormatted(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

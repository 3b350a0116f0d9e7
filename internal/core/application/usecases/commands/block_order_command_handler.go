package commands

import (
	"context"

	"transcription/internal/core/domain/model/auth"
)

// BlockOrderCommandHandler freezes or unfreezes an order.
type BlockOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewBlockOrderCommandHandler creates a handler for blocking and unblocking.
func NewBlockOrderCommandHandler(uowFactory OrderUoWFactory) BlockOrderCommandHandler {
	return BlockOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the block or unblock command.
func (h BlockOrderCommandHandler) Handle(ctx context.Context, cmd BlockOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Require("blockOrder", auth.RoleOM); err != nil {
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

	if cmd.IsUnblock() {
		err = ord.Unblock()
	} else {
		err = ord.Block()
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
)

// SubmitForScreeningCommandHandler moves a pending order into the screening
// queue. Only the owning customer or staff may submit.
type SubmitForScreeningCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSubmitForScreeningCommandHandler creates a handler for screening
// submission.
func NewSubmitForScreeningCommandHandler(uowFactory OrderUoWFactory) SubmitForScreeningCommandHandler {
	return SubmitForScreeningCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the screening submission command.
func (h SubmitForScreeningCommandHandler) Handle(ctx context.Context, cmd SubmitForScreeningCommand) error {
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
	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = cmd.Principal().RequireOwner("submitForScreening", ord.CustomerID()); err != nil {
		return err
	}

	if err = ord.SubmitForScreening(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

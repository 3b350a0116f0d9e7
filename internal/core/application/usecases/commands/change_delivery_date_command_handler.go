package commands

import (
	"context"
)

// ChangeDeliveryDateCommandHandler postpones an order's expected delivery.
// The owning customer or staff may postpone.
type ChangeDeliveryDateCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeDeliveryDateCommandHandler creates a handler for delivery date
// changes.
func NewChangeDeliveryDateCommandHandler(uowFactory OrderUoWFactory) ChangeDeliveryDateCommandHandler {
	return ChangeDeliveryDateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery date change.
func (h ChangeDeliveryDateCommandHandler) Handle(ctx context.Context, cmd ChangeDeliveryDateCommand) error {
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

	if err = cmd.Principal().RequireOwner("changeDeliveryDate", ord.CustomerID()); err != nil {
		return err
	}

	if err = ord.PostponeDelivery(cmd.Days()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"errors"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/order"
	"transcription/internal/pkg/errs"
)

// CreateOrderCommandHandler places a new order on an uploaded file.
// Verifies the file is converted, not deleted, owned by the caller, and not
// already covered by an active order.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Require("createOrder", auth.RoleCustomer, auth.RoleOM); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	fileRepo := uow.FileRepository()
	orderRepo := uow.OrderRepository()

	f, err := fileRepo.Get(ctx, cmd.FileID())
	if err != nil {
		return err
	}
	if err = cmd.Principal().RequireOwner("createOrder", f.OwnerID()); err != nil {
		return err
	}
	if !f.IsOrderable() {
		return errs.NewInvalidStateError("createOrder", fileState(f.IsDeleted()))
	}

	// A file carries at most one active order.
	_, err = orderRepo.GetActiveByFileID(ctx, cmd.FileID())
	if err == nil {
		return errs.NewInvalidStateError("createOrder", "ALREADY_ORDERED")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.FileID(), f.OwnerID(), cmd.OrderType(), cmd.DeliveryTs())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func fileState(deleted bool) string {
	if deleted {
		return "DELETED"
	}
	return "UNCONVERTED"
}

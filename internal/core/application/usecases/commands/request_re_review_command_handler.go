package commands

import (
	"context"
)

// RequestReReviewCommandHandler flags a delivered order for re-review on
// behalf of the owning customer.
type RequestReReviewCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRequestReReviewCommandHandler creates a handler for re-review requests.
func NewRequestReReviewCommandHandler(uowFactory OrderUoWFactory) RequestReReviewCommandHandler {
	return RequestReReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the re-review request.
func (h RequestReReviewCommandHandler) Handle(ctx context.Context, cmd RequestReReviewCommand) error {
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

	if err = cmd.Principal().RequireOwner("requestReReview", ord.CustomerID()); err != nil {
		return err
	}

	if err = ord.RequestReReview(cmd.Comment()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

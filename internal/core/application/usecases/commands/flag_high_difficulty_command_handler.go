package commands

import (
	"context"

	"transcription/internal/core/domain/model/auth"
)

// FlagHighDifficultyCommandHandler flags an order as high difficulty.
type FlagHighDifficultyCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFlagHighDifficultyCommandHandler creates a handler for difficulty
// flagging.
func NewFlagHighDifficultyCommandHandler(uowFactory OrderUoWFactory) FlagHighDifficultyCommandHandler {
	return FlagHighDifficultyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the difficulty flag command.
func (h FlagHighDifficultyCommandHandler) Handle(ctx context.Context, cmd FlagHighDifficultyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Require("flagHighDifficulty", auth.RoleQC, auth.RoleOM); err != nil {
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

	if err = ord.FlagHighDifficulty(cmd.Bonus()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"errors"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/errs"
	"transcription/internal/pkg/guard"
)

var ErrFlagHighDifficultyCommandIsNotConstructed = errors.New(
	"FlagHighDifficultyCommand must be created via NewFlagHighDifficultyCommand constructor",
)

// FlagHighDifficultyCommand marks an order as unusually difficult and grants
// a rate bonus to attract transcribers.
type FlagHighDifficultyCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	orderID   kernel.UUID
	bonus     int

	guard guard.ConstructorGuard
}

// NewFlagHighDifficultyCommand creates a command to flag high difficulty.
func NewFlagHighDifficultyCommand(principal auth.Principal, orderID kernel.UUID, bonus int) (FlagHighDifficultyCommand, error) {
	cmd := FlagHighDifficultyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		principal.Validate(),
		orderID.Validate(),
		validateBonus(bonus),
	); err != nil {
		return FlagHighDifficultyCommand{}, err
	}

	cmd.principal = principal
	cmd.orderID = orderID
	cmd.bonus = bonus
	return cmd, nil
}

func validateBonus(bonus int) error {
	if bonus < 0 {
		return errs.NewValueIsInvalidError("bonus")
	}
	return nil
}

// Validate ensures the command was created through the constructor.
func (c FlagHighDifficultyCommand) Validate() error {
	return c.guard.Validate(ErrFlagHighDifficultyCommandIsNotConstructed)
}

func (c FlagHighDifficultyCommand) Principal() auth.Principal { return c.principal }
func (c FlagHighDifficultyCommand) OrderID() kernel.UUID      { return c.orderID }
func (c FlagHighDifficultyCommand) Bonus() int                { return c.bonus }

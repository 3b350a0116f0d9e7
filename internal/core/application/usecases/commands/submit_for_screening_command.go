package commands

import (
	"errors"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/guard"
)

var ErrSubmitForScreeningCommandIsNotConstructed = errors.New(
	"SubmitForScreeningCommand must be created via NewSubmitForScreeningCommand constructor",
)

// SubmitForScreeningCommand hands a pending order to the OM screening queue.
type SubmitForScreeningCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewSubmitForScreeningCommand creates a command to submit an order for
// screening.
func NewSubmitForScreeningCommand(principal auth.Principal, orderID kernel.UUID) (SubmitForScreeningCommand, error) {
	cmd := SubmitForScreeningCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		principal.Validate(),
		orderID.Validate(),
	); err != nil {
		return SubmitForScreeningCommand{}, err
	}

	cmd.principal = principal
	cmd.orderID = orderID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitForScreeningCommand) Validate() error {
	return c.guard.Validate(ErrSubmitForScreeningCommandIsNotConstructed)
}

func (c SubmitForScreeningCommand) Principal() auth.Principal { return c.principal }
func (c SubmitForScreeningCommand) OrderID() kernel.UUID      { return c.orderID }

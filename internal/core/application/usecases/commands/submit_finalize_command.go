package commands

import (
	"errors"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/guard"
)

var ErrSubmitFinalizeCommandIsNotConstructed = errors.New(
	"SubmitFinalizeCommand must be created via NewSubmitFinalizeCommand constructor",
)

// SubmitFinalizeCommand completes the finalization stage: order to
// PreDelivered, Finalize assignment Completed.
type SubmitFinalizeCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewSubmitFinalizeCommand creates a command to submit finalization work.
func NewSubmitFinalizeCommand(principal auth.Principal, orderID kernel.UUID) (SubmitFinalizeCommand, error) {
	cmd := SubmitFinalizeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		principal.Validate(),
		orderID.Validate(),
	); err != nil {
		return SubmitFinalizeCommand{}, err
	}

	cmd.principal = principal
	cmd.orderID = orderID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitFinalizeCommand) Validate() error {
	return c.guard.Validate(ErrSubmitFinalizeCommandIsNotConstructed)
}

func (c SubmitFinalizeCommand) Principal() auth.Principal { return c.principal }
func (c SubmitFinalizeCommand) OrderID() kernel.UUID      { return c.orderID }

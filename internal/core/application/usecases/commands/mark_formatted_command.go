package commands

import (
	"errors"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/guard"
)

var ErrMarkFormattedCommandIsNotConstructed = errors.New(
	"MarkFormattedCommand must be created via NewMarkFormattedCommand constructor",
)

// MarkFormattedCommand records completion of the formatting stage for orders
// that include formatting work.
type MarkFormattedCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkFormattedCommand creates a command to mark an order formatted.
func NewMarkFormattedCommand(principal auth.Principal, orderID kernel.UUID) (MarkFormattedCommand, error) {
	cmd := MarkFormattedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		principal.Validate(),
		orderID.Validate(),
	); err != nil {
		return MarkFormattedCommand{}, err
	}

	cmd.principal = principal
	cmd.orderID = orderID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkFormattedCommand) Validate() error {
	return c.guard.Validate(ErrMarkFormattedCommandIsNotConstructed)
}

func (c MarkFormattedCommand) Principal() auth.Principal { return c.principal }
func (c MarkFormattedCommand) OrderID() kernel.UUID      { return c.orderID }

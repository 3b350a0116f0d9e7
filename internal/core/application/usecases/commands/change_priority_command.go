package commands

import (
	"errors"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/guard"
)

var ErrChangePriorityCommandIsNotConstructed = errors.New(
	"ChangePriorityCommand must be created via NewChangePriorityCommand constructor",
)

// ChangePriorityCommand raises an order's priority. Priority only moves
// upward; the aggregate rejects attempts to lower it.
type ChangePriorityCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	orderID   kernel.UUID
	priority  int

	guard guard.ConstructorGuard
}

// NewChangePriorityCommand creates a command to raise an order's priority.
func NewChangePriorityCommand(principal auth.Principal, orderID kernel.UUID, priority int) (ChangePriorityCommand, error) {
	cmd := ChangePriorityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		principal.Validate(),
		orderID.Validate(),
	); err != nil {
		return ChangePriorityCommand{}, err
	}

	cmd.principal = principal
	cmd.orderID = orderID
	cmd.priority = priority
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePriorityCommand) Validate() error {
	return c.guard.Validate(ErrChangePriorityCommandIsNotConstructed)
}

func (c ChangePriorityCommand) Principal() auth.Principal { return c.principal }
func (c ChangePriorityCommand) OrderID() kernel.UUID      { return c.orderID }
func (c ChangePriorityCommand) Priority() int             { return c.priority }

package commands

import (
	"errors"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/guard"
)

var ErrAssignFinalizerCommandIsNotConstructed = errors.New(
	"AssignFinalizerCommand must be created via NewAssignFinalizerCommand constructor",
)

// AssignFinalizerCommand claims a review-completed order for a finalizer.
// The order status does not move; the claim lives on the new job assignment.
type AssignFinalizerCommand struct { //nolint:recvcheck //using for validation
	principal     auth.Principal
	orderID       kernel.UUID
	transcriberID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignFinalizerCommand creates a command to assign a finalizer.
func NewAssignFinalizerCommand(principal auth.Principal, orderID, transcriberID kernel.UUID) (AssignFinalizerCommand, error) {
	cmd := AssignFinalizerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		principal.Validate(),
		orderID.Validate(),
		transcriberID.Validate(),
	); err != nil {
		return AssignFinalizerCommand{}, err
	}

	cmd.principal = principal
	cmd.orderID = orderID
	cmd.transcriberID = transcriberID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignFinalizerCommand) Validate() error {
	return c.guard.Validate(ErrAssignFinalizerCommandIsNotConstructed)
}

func (c AssignFinalizerCommand) Principal() auth.Principal  { return c.principal }
func (c AssignFinalizerCommand) OrderID() kernel.UUID       { return c.orderID }
func (c AssignFinalizerCommand) TranscriberID() kernel.UUID { return c.transcriberID }

package commands

import (
	"errors"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/guard"
)

var ErrAssignQCCommandIsNotConstructed = errors.New(
	"AssignQCCommand must be created via NewAssignQCCommand constructor",
)

// AssignQCCommand claims an order for a QC reviewer: the order moves to
// ReviewerAssigned and an Accepted QC job assignment is created.
type AssignQCCommand struct { //nolint:recvcheck //using for validation
	principal     auth.Principal
	orderID       kernel.UUID
	transcriberID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignQCCommand creates a command to assign a QC reviewer to an order.
func NewAssignQCCommand(principal auth.Principal, orderID, transcriberID kernel.UUID) (AssignQCCommand, error) {
	cmd := AssignQCCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		principal.Validate(),
		orderID.Validate(),
		transcriberID.Validate(),
	); err != nil {
		return AssignQCCommand{}, err
	}

	cmd.principal = principal
	cmd.orderID = orderID
	cmd.transcriberID = transcriberID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignQCCommand) Validate() error {
	return c.guard.Validate(ErrAssignQCCommandIsNotConstructed)
}

func (c AssignQCCommand) Principal() auth.Principal  { return c.principal }
func (c AssignQCCommand) OrderID() kernel.UUID       { return c.orderID }
func (c AssignQCCommand) TranscriberID() kernel.UUID { return c.transcriberID }

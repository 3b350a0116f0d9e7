package commands

import (
	"errors"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/guard"
)

var ErrSubmitQCCommandIsNotConstructed = errors.New(
	"SubmitQCCommand must be created via NewSubmitQCCommand constructor",
)

// SubmitQCCommand hands QC work in for an OM verdict: order to
// SubmittedForApproval, assignment to SubmittedForApproval.
type SubmitQCCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewSubmitQCCommand creates a command to submit QC work for approval.
func NewSubmitQCCommand(principal auth.Principal, orderID kernel.UUID) (SubmitQCCommand, error) {
	cmd := SubmitQCCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		principal.Validate(),
		orderID.Validate(),
	); err != nil {
		return SubmitQCCommand{}, err
	}

	cmd.principal = principal
	cmd.orderID = orderID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitQCCommand) Validate() error {
	return c.guard.Validate(ErrSubmitQCCommandIsNotConstructed)
}

func (c SubmitQCCommand) Principal() auth.Principal { return c.principal }
func (c SubmitQCCommand) OrderID() kernel.UUID      { return c.orderID }

package commands

import (
	"errors"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/guard"
)

var ErrApproveSubmissionCommandIsNotConstructed = errors.New(
	"ApproveSubmissionCommand must be created via NewApproveSubmissionCommand constructor",
)

// ApproveSubmissionCommand records an OM approving a QC submission: order to
// ReviewCompleted, assignment Completed.
type ApproveSubmissionCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveSubmissionCommand creates a command to approve a QC submission.
func NewApproveSubmissionCommand(principal auth.Principal, orderID kernel.UUID) (ApproveSubmissionCommand, error) {
	cmd := ApproveSubmissionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		principal.Validate(),
		orderID.Validate(),
	); err != nil {
		return ApproveSubmissionCommand{}, err
	}

	cmd.principal = principal
	cmd.orderID = orderID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveSubmissionCommand) Validate() error {
	return c.guard.Validate(ErrApproveSubmissionCommandIsNotConstructed)
}

func (c ApproveSubmissionCommand) Principal() auth.Principal { return c.principal }
func (c ApproveSubmissionCommand) OrderID() kernel.UUID      { return c.orderID }

package commands

import (
	"errors"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/guard"
)

var ErrRejectApprovalCommandIsNotConstructed = errors.New(
	"RejectApprovalCommand must be created via NewRejectApprovalCommand constructor",
)

// RejectApprovalCommand rolls a rejected QC submission back: order to
// Transcribed, assignment Rejected with the given reason. Also issued by the
// approval timeout job when a submission sits unreviewed too long.
type RejectApprovalCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	orderID   kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewRejectApprovalCommand creates a command to reject a QC submission.
func NewRejectApprovalCommand(principal auth.Principal, orderID kernel.UUID, reason string) (RejectApprovalCommand, error) {
	cmd := RejectApprovalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		principal.Validate(),
		orderID.Validate(),
	); err != nil {
		return RejectApprovalCommand{}, err
	}

	cmd.principal = principal
	cmd.orderID = orderID
	cmd.reason = reason
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectApprovalCommand) Validate() error {
	return c.guard.Validate(ErrRejectApprovalCommandIsNotConstructed)
}

func (c RejectApprovalCommand) Principal() auth.Principal { return c.principal }
func (c RejectApprovalCommand) OrderID() kernel.UUID      { return c.orderID }
func (c RejectApprovalCommand) Reason() string            { return c.reason }

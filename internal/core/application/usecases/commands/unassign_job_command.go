package commands

import (
	"errors"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/core/domain/model/order"
	"transcription/internal/pkg/guard"
)

var ErrUnassignJobCommandIsNotConstructed = errors.New(
	"UnassignJobCommand must be created via NewUnassignJobCommand constructor",
)

// UnassignJobCommand withdraws an accepted claim: the assignment is
// cancelled and the order is set to the caller-supplied target status. The
// generic helper behind several staff flows, where the right resting state
// depends on which stage the transcriber abandoned.
type UnassignJobCommand struct { //nolint:recvcheck //using for validation
	principal    auth.Principal
	assignmentID kernel.UUID
	targetStatus order.Status
	reason       string

	guard guard.ConstructorGuard
}

// NewUnassignJobCommand creates a command to unassign a job.
func NewUnassignJobCommand(
	principal auth.Principal,
	assignmentID kernel.UUID,
	targetStatus order.Status,
	reason string,
) (UnassignJobCommand, error) {
	cmd := UnassignJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		principal.Validate(),
		assignmentID.Validate(),
		targetStatus.Validate(),
	); err != nil {
		return UnassignJobCommand{}, err
	}

	cmd.principal = principal
	cmd.assignmentID = assignmentID
	cmd.targetStatus = targetStatus
	cmd.reason = reason
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignJobCommand) Validate() error {
	return c.guard.Validate(ErrUnassignJobCommandIsNotConstructed)
}

func (c UnassignJobCommand) Principal() auth.Principal   { return c.principal }
func (c UnassignJobCommand) AssignmentID() kernel.UUID   { return c.assignmentID }
func (c UnassignJobCommand) TargetStatus() order.Status  { return c.targetStatus }
func (c UnassignJobCommand) Reason() string              { return c.reason }

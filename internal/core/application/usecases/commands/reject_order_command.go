package commands

import (
	"errors"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand rolls an order back to its type-appropriate resting
// state (Transcribed for transcription orders, Formatted for pure formatting
// orders) and rejects every active assignment on it.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	orderID   kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command for the bulk rollback.
func NewRejectOrderCommand(principal auth.Principal, orderID kernel.UUID, reason string) (RejectOrderCommand, error) {
	cmd := RejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		principal.Validate(),
		orderID.Validate(),
	); err != nil {
		return RejectOrderCommand{}, err
	}

	cmd.principal = principal
	cmd.orderID = orderID
	cmd.reason = reason
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

func (c RejectOrderCommand) Principal() auth.Principal { return c.principal }
func (c RejectOrderCommand) OrderID() kernel.UUID      { return c.orderID }
func (c RejectOrderCommand) Reason() string            { return c.reason }

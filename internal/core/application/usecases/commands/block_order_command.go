package commands

import (
	"errors"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/guard"
)

var ErrBlockOrderCommandIsNotConstructed = errors.New(
	"BlockOrderCommand must be created via NewBlockOrderCommand constructor",
)

// BlockOrderCommand freezes an active order pending investigation. Unblock
// returns it to the screening queue.
type BlockOrderCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	orderID   kernel.UUID
	unblock   bool

	guard guard.ConstructorGuard
}

// NewBlockOrderCommand creates a command to block an order.
func NewBlockOrderCommand(principal auth.Principal, orderID kernel.UUID) (BlockOrderCommand, error) {
	return newBlockOrderCommand(principal, orderID, false)
}

// NewUnblockOrderCommand creates a command to unblock an order.
func NewUnblockOrderCommand(principal auth.Principal, orderID kernel.UUID) (BlockOrderCommand, error) {
	return newBlockOrderCommand(principal, orderID, true)
}

func newBlockOrderCommand(principal auth.Principal, orderID kernel.UUID, unblock bool) (BlockOrderCommand, error) {
	cmd := BlockOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		principal.Validate(),
		orderID.Validate(),
	); err != nil {
		return BlockOrderCommand{}, err
	}

	cmd.principal = principal
	cmd.orderID = orderID
	cmd.unblock = unblock
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BlockOrderCommand) Validate() error {
	return c.guard.Validate(ErrBlockOrderCommandIsNotConstructed)
}

func (c BlockOrderCommand) Principal() auth.Principal { return c.principal }
func (c BlockOrderCommand) OrderID() kernel.UUID      { return c.orderID }
func (c BlockOrderCommand) IsUnblock() bool           { return c.unblock }

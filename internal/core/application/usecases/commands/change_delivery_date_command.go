package commands

import (
	"errors"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/errs"
	"transcription/internal/pkg/guard"
)

var ErrChangeDeliveryDateCommandIsNotConstructed = errors.New(
	"ChangeDeliveryDateCommand must be created via NewChangeDeliveryDateCommand constructor",
)

// ChangeDeliveryDateCommand pushes the expected delivery date forward by a
// number of days. Pure data mutation, no status movement.
type ChangeDeliveryDateCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	orderID   kernel.UUID
	days      int

	guard guard.ConstructorGuard
}

// NewChangeDeliveryDateCommand creates a command to postpone delivery.
func NewChangeDeliveryDateCommand(principal auth.Principal, orderID kernel.UUID, days int) (ChangeDeliveryDateCommand, error) {
	cmd := ChangeDeliveryDateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		principal.Validate(),
		orderID.Validate(),
		validateDays(days),
	); err != nil {
		return ChangeDeliveryDateCommand{}, err
	}

	cmd.principal = principal
	cmd.orderID = orderID
	cmd.days = days
	return cmd, nil
}

func validateDays(days int) error {
	if days <= 0 {
		return errs.NewValueIsInvalidError("days")
	}
	return nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDeliveryDateCommand) Validate() error {
	return c.guard.Validate(ErrChangeDeliveryDateCommandIsNotConstructed)
}

func (c ChangeDeliveryDateCommand) Principal() auth.Principal { return c.principal }
func (c ChangeDeliveryDateCommand) OrderID() kernel.UUID      { return c.orderID }
func (c ChangeDeliveryDateCommand) Days() int                 { return c.days }

package commands

import (
	"errors"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/errs"
	"transcription/internal/pkg/guard"
)

var ErrAcceptScreenFileCommandIsNotConstructed = errors.New(
	"AcceptScreenFileCommand must be created via NewAcceptScreenFileCommand constructor",
)

// AcceptScreenFileCommand records an OM accepting a screened file, moving the
// order into Transcribed and recording the PWER score assigned during
// screening.
type AcceptScreenFileCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	orderID   kernel.UUID
	pwer      int

	guard guard.ConstructorGuard
}

// NewAcceptScreenFileCommand creates a command to accept a screened file.
// PWER must be within 0..100.
func NewAcceptScreenFileCommand(principal auth.Principal, orderID kernel.UUID, pwer int) (AcceptScreenFileCommand, error) {
	cmd := AcceptScreenFileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		principal.Validate(),
		orderID.Validate(),
		validatePWER(pwer),
	); err != nil {
		return AcceptScreenFileCommand{}, err
	}

	cmd.principal = principal
	cmd.orderID = orderID
	cmd.pwer = pwer
	return cmd, nil
}

func validatePWER(pwer int) error {
	if pwer < 0 || pwer > 100 {
		return errs.NewValueIsOutOfRangeError("pwer", pwer, 0, 100)
	}
	return nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptScreenFileCommand) Validate() error {
	return c.guard.Validate(ErrAcceptScreenFileCommandIsNotConstructed)
}

func (c AcceptScreenFileCommand) Principal() auth.Principal { return c.principal }
func (c AcceptScreenFileCommand) OrderID() kernel.UUID      { return c.orderID }
func (c AcceptScreenFileCommand) PWER() int                 { return c.pwer }

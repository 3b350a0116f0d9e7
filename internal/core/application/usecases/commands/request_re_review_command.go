package commands

import (
	"errors"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/guard"
)

var ErrRequestReReviewCommandIsNotConstructed = errors.New(
	"RequestReReviewCommand must be created via NewRequestReReviewCommand constructor",
)

// RequestReReviewCommand flags a delivered order for another review pass.
// The status does not move and repeating the request is a harmless no-op.
type RequestReReviewCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	orderID   kernel.UUID
	comment   string

	guard guard.ConstructorGuard
}

// NewRequestReReviewCommand creates a command to request a re-review.
func NewRequestReReviewCommand(principal auth.Principal, orderID kernel.UUID, comment string) (RequestReReviewCommand, error) {
	cmd := RequestReReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		principal.Validate(),
		orderID.Validate(),
	); err != nil {
		return RequestReReviewCommand{}, err
	}

	cmd.principal = principal
	cmd.orderID = orderID
	cmd.comment = comment
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestReReviewCommand) Validate() error {
	return c.guard.Validate(ErrRequestReReviewCommandIsNotConstructed)
}

func (c RequestReReviewCommand) Principal() auth.Principal { return c.principal }
func (c RequestReReviewCommand) OrderID() kernel.UUID      { return c.orderID }
func (c RequestReReviewCommand) Comment() string           { return c.comment }

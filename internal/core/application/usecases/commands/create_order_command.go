package commands

import (
	"errors"
	"time"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/core/domain/model/order"
	"transcription/internal/pkg/errs"
	"transcription/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's request to order work on an
// uploaded file. The order starts in Pending status.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(principal, kernel.NewUUID(), "f-100",
//	    order.TypeTranscription, deliveryTs)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	principal  auth.Principal
	orderID    kernel.UUID
	fileID     string
	orderType  order.Type
	deliveryTs time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
func NewCreateOrderCommand(
	principal auth.Principal,
	orderID kernel.UUID,
	fileID string,
	orderType order.Type,
	deliveryTs time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setOrderID(orderID),
		cmd.setFileID(fileID),
		cmd.setOrderType(orderType),
		cmd.setDeliveryTs(deliveryTs),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Principal() auth.Principal { return c.principal }
func (c CreateOrderCommand) OrderID() kernel.UUID      { return c.orderID }
func (c CreateOrderCommand) FileID() string            { return c.fileID }
func (c CreateOrderCommand) OrderType() order.Type     { return c.orderType }
func (c CreateOrderCommand) DeliveryTs() time.Time     { return c.deliveryTs }

func (c *CreateOrderCommand) setPrincipal(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setFileID(fileID string) error {
	if fileID == "" {
		return errs.NewValueIsRequiredError("fileId")
	}
	c.fileID = fileID
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setDeliveryTs(deliveryTs time.Time) error {
	if deliveryTs.IsZero() {
		return errs.NewValueIsRequiredError("deliveryTs")
	}
	c.deliveryTs = deliveryTs
	return nil
}

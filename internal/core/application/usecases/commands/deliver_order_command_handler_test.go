package commands_test

import (
	"testing"

	"transcription/internal/core/application/usecases/commands"
	"transcription/internal/core/domain/model/invoice"
	"transcription/internal/core/domain/model/order"
	"transcription/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeliverOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := orderInStatus(t, order.PreDelivered)
	testFile := convertedFile(t, testOrder.FileID(), testOrder.CustomerID())

	cmd, err := commands.NewDeliverOrderCommand(omPrincipal(t), testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	fileRepo := new(MockFileRepository)
	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("FileRepository").Return(fileRepo).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		fileRepo.On("Get", ctx, testOrder.FileID()).Return(testFile, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		invoiceRepo.On("Add", ctx, mock.AnythingOfType("*invoice.Invoice")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("SendMail", ctx, "order-delivered", testOrder.CustomerID().String(), mock.Anything).
		Return(nil).Once()

	factory := new(MockDeliverOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	// 600 seconds at 150 cents per minute
	handler := commands.NewDeliverOrderCommandHandler(factory, notifier, nil, 150)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, testOrder.Status())
	require.NotNil(t, testOrder.DeliveredTs())

	added := invoiceRepo.Calls[0].Arguments[1].(*invoice.Invoice)
	assert.Equal(t, int64(1500), added.AmountCents())
	assert.True(t, added.OrderID().IsEqual(testOrder.ID()))
	assert.False(t, added.IsPaid())

	orderRepo.AssertExpectations(t)
	invoiceRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestDeliverOrderCommandHandler_Handle_WrongStatus(t *testing.T) {
	ctx := t.Context()
	testOrder := orderInStatus(t, order.Transcribed)
	testFile := convertedFile(t, testOrder.FileID(), testOrder.CustomerID())

	cmd, err := commands.NewDeliverOrderCommand(omPrincipal(t), testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	fileRepo := new(MockFileRepository)
	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("FileRepository").Return(fileRepo).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		fileRepo.On("Get", ctx, testOrder.FileID()).Return(testFile, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliverOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeliverOrderCommandHandler(factory, nil, nil, 150)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	invoiceRepo.AssertNotCalled(t, "Add")
	uow.AssertNotCalled(t, "Commit")
}

func TestDeliverOrderCommandHandler_Handle_Unauthorized(t *testing.T) {
	ctx := t.Context()
	testOrder := orderInStatus(t, order.PreDelivered)

	cmd, err := commands.NewDeliverOrderCommand(
		customerPrincipal(t, testOrder.CustomerID()), testOrder.ID())
	require.NoError(t, err)

	factory := new(MockDeliverOrderUoWFactory)
	handler := commands.NewDeliverOrderCommandHandler(factory, nil, nil, 150)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	factory.AssertNotCalled(t, "Create")
}

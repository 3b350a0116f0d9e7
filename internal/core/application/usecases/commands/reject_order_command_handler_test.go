package commands_test

import (
	"testing"
	"time"

	"transcription/internal/core/application/usecases/commands"
	"transcription/internal/core/domain/model/job"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/core/domain/model/order"
	"transcription/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRejectOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := orderInStatus(t, order.ReviewerAssigned)
	active := []*job.Assignment{
		assignmentInStatus(t, testOrder.ID(), job.QC, job.Accepted),
	}

	cmd, err := commands.NewRejectOrderCommand(omPrincipal(t), testOrder.ID(), "quality issues")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("JobAssignmentRepository").Return(jobRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		jobRepo.On("GetAllActiveByOrder", ctx, testOrder.ID()).Return(active, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		jobRepo.On("Update", ctx, mock.AnythingOfType("*job.Assignment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("SendMail", ctx, "job-unassigned", active[0].TranscriberID().String(), mock.Anything).
		Return(nil).Once()

	factory := new(MockOrderJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectOrderCommandHandler(factory, notifier, nil)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	// transcription order rolls back to Transcribed
	assert.Equal(t, order.Transcribed, testOrder.Status())
	assert.Equal(t, job.Rejected, active[0].Status())
	assert.Equal(t, "quality issues", active[0].Comment())

	orderRepo.AssertExpectations(t)
	jobRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestRejectOrderCommandHandler_Handle_FormattingOrderTarget(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()
	testOrder, err := order.RestoreOrder(order.Record{
		ID:         kernel.NewUUID(),
		FileID:     "f-200",
		CustomerID: kernel.NewUUID(),
		OrderType:  order.TypeFormatting,
		Status:     order.PreDelivered,
		DeliveryTs: now.Add(24 * time.Hour),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	require.NoError(t, err)

	cmd, err := commands.NewRejectOrderCommand(omPrincipal(t), testOrder.ID(), "redo")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("JobAssignmentRepository").Return(jobRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		jobRepo.On("GetAllActiveByOrder", ctx, testOrder.ID()).Return([]*job.Assignment{}, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectOrderCommandHandler(factory, nil, nil)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Formatted, testOrder.Status())
}

func TestRejectOrderCommandHandler_Handle_RepeatRejectFails(t *testing.T) {
	ctx := t.Context()
	// already rolled back by a previous reject
	testOrder := orderInStatus(t, order.Transcribed)

	cmd, err := commands.NewRejectOrderCommand(omPrincipal(t), testOrder.ID(), "again")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("JobAssignmentRepository").Return(jobRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		jobRepo.On("GetAllActiveByOrder", ctx, testOrder.ID()).Return([]*job.Assignment{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectOrderCommandHandler(factory, nil, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	orderRepo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
}

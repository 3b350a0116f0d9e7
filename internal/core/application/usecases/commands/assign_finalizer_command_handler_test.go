package commands_test

import (
	"testing"

	"transcription/internal/core/application/usecases/commands"
	"transcription/internal/core/domain/model/job"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/core/domain/model/order"
	"transcription/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignFinalizerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := orderInStatus(t, order.ReviewCompleted)
	transcriberID := kernel.NewUUID()

	cmd, err := commands.NewAssignFinalizerCommand(omPrincipal(t), testOrder.ID(), transcriberID)
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
		jobRepo.On("GetActiveByOrderAndType", ctx, testOrder.ID(), job.Finalize).
			Return(nil, errs.ErrObjectNotFound).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		jobRepo.On("Add", ctx, mock.AnythingOfType("*job.Assignment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("SendMail", ctx, "job-assigned", transcriberID.String(), mock.Anything).Return(nil).Once()

	factory := new(MockOrderJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignFinalizerCommandHandler(factory, notifier, nil)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	// the claim lives on the assignment; the order status does not move
	assert.Equal(t, order.ReviewCompleted, testOrder.Status())

	addedAssignment := jobRepo.Calls[1].Arguments[1].(*job.Assignment)
	assert.Equal(t, job.Accepted, addedAssignment.Status())
	assert.Equal(t, job.Finalize, addedAssignment.JobType())
	assert.True(t, addedAssignment.TranscriberID().IsEqual(transcriberID))

	orderRepo.AssertExpectations(t)
	jobRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestAssignFinalizerCommandHandler_Handle_ActiveAssignmentExists(t *testing.T) {
	ctx := t.Context()
	testOrder := orderInStatus(t, order.ReviewCompleted)
	existing := assignmentInStatus(t, testOrder.ID(), job.Finalize, job.Accepted)

	cmd, err := commands.NewAssignFinalizerCommand(omPrincipal(t), testOrder.ID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("JobAssignmentRepository").Return(jobRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		jobRepo.On("GetActiveByOrderAndType", ctx, testOrder.ID(), job.Finalize).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignFinalizerCommandHandler(factory, nil, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, job.Accepted, existing.Status())
	jobRepo.AssertNotCalled(t, "Add")
	uow.AssertNotCalled(t, "Commit")
}

func TestAssignFinalizerCommandHandler_Handle_WrongStatus(t *testing.T) {
	ctx := t.Context()
	testOrder := orderInStatus(t, order.Transcribed)

	cmd, err := commands.NewAssignFinalizerCommand(omPrincipal(t), testOrder.ID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("JobAssignmentRepository").Return(jobRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		jobRepo.On("GetActiveByOrderAndType", ctx, testOrder.ID(), job.Finalize).
			Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignFinalizerCommandHandler(factory, nil, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, order.Transcribed, testOrder.Status())
}

func TestAssignFinalizerCommandHandler_Handle_Unauthorized(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewAssignFinalizerCommand(
		transcriberPrincipal(t, kernel.NewUUID()), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	factory := new(MockOrderJobUoWFactory)
	handler := commands.NewAssignFinalizerCommandHandler(factory, nil, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	factory.AssertNotCalled(t, "Create")
}

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

func TestAssignQCCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := orderInStatus(t, order.Transcribed)
	transcriberID := kernel.NewUUID()

	cmd, err := commands.NewAssignQCCommand(omPrincipal(t), testOrder.ID(), transcriberID)
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
		jobRepo.On("GetActiveByOrderAndType", ctx, testOrder.ID(), job.QC).
			Return(nil, errs.ErrObjectNotFound).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		jobRepo.On("Add", ctx, mock.AnythingOfType("*job.Assignment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("SendMail", ctx, "job-assigned", transcriberID.String(), mock.Anything).Return(nil).Once()

	factory := new(MockOrderJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignQCCommandHandler(factory, notifier, nil)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.ReviewerAssigned, testOrder.Status())

	addedAssignment := jobRepo.Calls[1].Arguments[1].(*job.Assignment)
	assert.Equal(t, job.Accepted, addedAssignment.Status())
	assert.Equal(t, job.QC, addedAssignment.JobType())
	assert.True(t, addedAssignment.TranscriberID().IsEqual(transcriberID))

	orderRepo.AssertExpectations(t)
	jobRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestAssignQCCommandHandler_Handle_ActiveAssignmentExists(t *testing.T) {
	ctx := t.Context()
	testOrder := orderInStatus(t, order.Transcribed)
	existing := assignmentInStatus(t, testOrder.ID(), job.QC, job.Accepted)

	cmd, err := commands.NewAssignQCCommand(omPrincipal(t), testOrder.ID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("JobAssignmentRepository").Return(jobRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		jobRepo.On("GetActiveByOrderAndType", ctx, testOrder.ID(), job.QC).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignQCCommandHandler(factory, nil, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	jobRepo.AssertNotCalled(t, "Add")
	uow.AssertNotCalled(t, "Commit")
}

func TestAssignQCCommandHandler_Handle_WrongStatus(t *testing.T) {
	ctx := t.Context()
	testOrder := orderInStatus(t, order.Pending)

	cmd, err := commands.NewAssignQCCommand(omPrincipal(t), testOrder.ID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("JobAssignmentRepository").Return(jobRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		jobRepo.On("GetActiveByOrderAndType", ctx, testOrder.ID(), job.QC).
			Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignQCCommandHandler(factory, nil, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, order.Pending, testOrder.Status())
}

func TestAssignQCCommandHandler_Handle_Unauthorized(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewAssignQCCommand(
		transcriberPrincipal(t, kernel.NewUUID()), orderID, kernel.NewUUID())
	require.NoError(t, err)

	factory := new(MockOrderJobUoWFactory)
	handler := commands.NewAssignQCCommandHandler(factory, nil, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignQCCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignQCCommand{} // not constructed properly

	factory := new(MockOrderJobUoWFactory)
	handler := commands.NewAssignQCCommandHandler(factory, nil, nil)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAssignQCCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

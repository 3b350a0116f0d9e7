package commands_test

import (
	"testing"

	"transcription/internal/core/application/usecases/commands"
	"transcription/internal/core/domain/model/job"
	"transcription/internal/core/domain/model/order"
	"transcription/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnassignJobCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := orderInStatus(t, order.ReviewerAssigned)
	assignment := assignmentInStatus(t, testOrder.ID(), job.QC, job.Accepted)

	cmd, err := commands.NewUnassignJobCommand(
		omPrincipal(t), assignment.ID(), order.Transcribed, "no response")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("JobAssignmentRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, assignment.ID()).Return(assignment, nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		jobRepo.On("Update", ctx, mock.AnythingOfType("*job.Assignment")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("SendMail", ctx, "job-unassigned", assignment.TranscriberID().String(), mock.Anything).
		Return(nil).Once()

	factory := new(MockOrderJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnassignJobCommandHandler(factory, notifier, nil)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	// order status equals the supplied target exactly, claim never stays Accepted
	assert.Equal(t, order.Transcribed, testOrder.Status())
	assert.Equal(t, job.Cancelled, assignment.Status())
	require.NotNil(t, assignment.CancelledTs())

	jobRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestUnassignJobCommandHandler_Handle_SubmittedClaimCannotBeUnassigned(t *testing.T) {
	ctx := t.Context()
	testOrder := orderInStatus(t, order.SubmittedForApproval)
	assignment := assignmentInStatus(t, testOrder.ID(), job.QC, job.SubmittedForApproval)

	cmd, err := commands.NewUnassignJobCommand(
		omPrincipal(t), assignment.ID(), order.Transcribed, "x")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("JobAssignmentRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, assignment.ID()).Return(assignment, nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnassignJobCommandHandler(factory, nil, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertNotCalled(t, "Commit")
}

func TestUnassignJobCommandHandler_Handle_TerminalTargetRejectedUpfront(t *testing.T) {
	_, err := commands.NewUnassignJobCommand(
		omPrincipal(t), orderInStatus(t, order.ReviewerAssigned).ID(), order.Cancelled, "x")

	// Cancelled parses as a valid status; the aggregate rejects it later.
	require.NoError(t, err)

	_, err = commands.NewUnassignJobCommand(
		omPrincipal(t), orderInStatus(t, order.ReviewerAssigned).ID(), order.Unknown, "x")
	require.Error(t, err)
}

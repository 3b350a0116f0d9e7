package order_test

import (
	"testing"

	"transcription/internal/core/domain/model/order"
	"transcription/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.Pending, order.SubmittedForScreening, order.Transcribed,
		order.ReviewerAssigned, order.SubmittedForApproval, order.ReviewCompleted,
		order.Formatted, order.PreDelivered, order.Delivered,
		order.Cancelled, order.Refunded, order.Blocked,
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("all_named_statuses_are_valid", func(t *testing.T) {
		for _, s := range allStatuses() {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("unknown_and_out_of_range_are_invalid", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(99).Validate())
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("round_trips_every_status", func(t *testing.T) {
		for _, s := range allStatuses() {
			parsed, err := order.ParseStatus(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects_unknown_strings", func(t *testing.T) {
		_, err := order.ParseStatus("UNKNOWN")
		require.Error(t, err)

		_, err = order.ParseStatus("delivered")
		require.Error(t, err)
	})
}

func TestStatus_Terminality(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.True(t, order.Refunded.IsTerminal())

	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Blocked.IsTerminal())

	assert.True(t, order.Transcribed.IsActive())
	assert.False(t, order.Blocked.IsActive())
	assert.False(t, order.Delivered.IsActive())
}

// transitionCase pins one row of the transition table.
type transitionCase struct {
	op      order.Operation
	sources []order.Status
	target  order.Status
}

func tableCases() []transitionCase {
	return []transitionCase{
		{order.OpSubmitForScreening, []order.Status{order.Pending}, order.SubmittedForScreening},
		{order.OpAcceptScreening, []order.Status{order.SubmittedForScreening}, order.Transcribed},
		{order.OpReportFile,
			[]order.Status{order.Transcribed, order.ReviewerAssigned, order.SubmittedForApproval, order.ReviewCompleted},
			order.SubmittedForScreening},
		{order.OpAssignReviewer, []order.Status{order.Transcribed}, order.ReviewerAssigned},
		{order.OpSubmitForApproval, []order.Status{order.ReviewerAssigned}, order.SubmittedForApproval},
		{order.OpApproveSubmission, []order.Status{order.SubmittedForApproval}, order.ReviewCompleted},
		{order.OpRejectApproval, []order.Status{order.SubmittedForApproval}, order.Transcribed},
		{order.OpAssignFinalizer, []order.Status{order.ReviewCompleted}, order.ReviewCompleted},
		{order.OpMarkFormatted, []order.Status{order.Transcribed, order.ReviewCompleted}, order.Formatted},
		{order.OpCompleteFinalize, []order.Status{order.ReviewCompleted, order.Formatted}, order.PreDelivered},
		{order.OpDeliver, []order.Status{order.PreDelivered}, order.Delivered},
		{order.OpRejectToTranscribed,
			[]order.Status{order.ReviewerAssigned, order.SubmittedForApproval, order.ReviewCompleted, order.Formatted, order.PreDelivered},
			order.Transcribed},
		{order.OpRejectToFormatted,
			[]order.Status{order.ReviewerAssigned, order.SubmittedForApproval, order.ReviewCompleted, order.PreDelivered},
			order.Formatted},
		{order.OpCancel, []order.Status{order.Pending, order.SubmittedForScreening, order.Transcribed}, order.Cancelled},
		{order.OpRefund, []order.Status{order.Cancelled, order.Delivered}, order.Refunded},
		{order.OpUnblock, []order.Status{order.Blocked}, order.SubmittedForScreening},
	}
}

func TestStatus_Apply_AllowedSources(t *testing.T) {
	for _, tc := range tableCases() {
		for _, src := range tc.sources {
			t.Run(tc.op.String()+"_from_"+src.String(), func(t *testing.T) {
				target, err := src.Apply(tc.op)
				require.NoError(t, err)
				assert.Equal(t, tc.target, target)
			})
		}
	}
}

// Every status outside an operation's source set must yield InvalidState.
// This is the property the whole pipeline leans on: a handler can never move
// an order the table does not sanction.
func TestStatus_Apply_DisallowedSources(t *testing.T) {
	for _, tc := range tableCases() {
		allowed := make(map[order.Status]bool, len(tc.sources))
		for _, src := range tc.sources {
			allowed[src] = true
		}

		for _, s := range allStatuses() {
			if allowed[s] {
				continue
			}
			t.Run(tc.op.String()+"_rejected_from_"+s.String(), func(t *testing.T) {
				_, err := s.Apply(tc.op)
				require.ErrorIs(t, err, errs.ErrInvalidState)
			})
		}
	}
}

func TestStatus_Apply_UnknownOperation(t *testing.T) {
	_, err := order.Transcribed.Apply(order.OpUnknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_CanApply(t *testing.T) {
	assert.True(t, order.ReviewCompleted.CanApply(order.OpAssignFinalizer))
	assert.False(t, order.Transcribed.CanApply(order.OpAssignFinalizer))
}

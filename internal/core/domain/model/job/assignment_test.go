package job_test

import (
	"testing"
	"time"

	"transcription/internal/core/domain/model/job"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssignment(t *testing.T) *job.Assignment {
	t.Helper()
	a, err := job.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), job.QC)
	require.NoError(t, err)
	return a
}

func TestNewAssignment(t *testing.T) {
	t.Run("starts_accepted", func(t *testing.T) {
		a := newAssignment(t)

		assert.Equal(t, job.Accepted, a.Status())
		assert.True(t, a.IsActive())
		assert.False(t, a.AcceptedTs().IsZero())
		require.NoError(t, a.Validate())
	})

	t.Run("rejects_unknown_job_type", func(t *testing.T) {
		_, err := job.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), job.TypeUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_zero_ids", func(t *testing.T) {
		_, err := job.NewAssignment(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), job.QC)
		require.Error(t, err)
	})
}

func TestAssignment_SubmitForApproval(t *testing.T) {
	t.Run("accepted_work_can_be_submitted", func(t *testing.T) {
		a := newAssignment(t)

		require.NoError(t, a.SubmitForApproval())
		assert.Equal(t, job.SubmittedForApproval, a.Status())
		assert.True(t, a.IsActive())
	})

	t.Run("double_submit_is_invalid_state", func(t *testing.T) {
		a := newAssignment(t)

		require.NoError(t, a.SubmitForApproval())
		require.ErrorIs(t, a.SubmitForApproval(), errs.ErrInvalidState)
	})
}

func TestAssignment_Complete(t *testing.T) {
	t.Run("completes_accepted_claim", func(t *testing.T) {
		a := newAssignment(t)

		require.NoError(t, a.Complete())
		assert.Equal(t, job.Completed, a.Status())
		require.NotNil(t, a.CompletedTs())
		assert.False(t, a.IsActive())
	})

	t.Run("completes_submitted_claim", func(t *testing.T) {
		a := newAssignment(t)

		require.NoError(t, a.SubmitForApproval())
		require.NoError(t, a.Complete())
		assert.Equal(t, job.Completed, a.Status())
	})

	t.Run("closed_claim_cannot_complete", func(t *testing.T) {
		a := newAssignment(t)

		require.NoError(t, a.Cancel("customer cancelled"))
		require.ErrorIs(t, a.Complete(), errs.ErrInvalidState)
	})
}

func TestAssignment_Reject(t *testing.T) {
	t.Run("rejects_submitted_work_with_reason", func(t *testing.T) {
		a := newAssignment(t)
		require.NoError(t, a.SubmitForApproval())

		require.NoError(t, a.Reject("diff below threshold"))

		assert.Equal(t, job.Rejected, a.Status())
		assert.Equal(t, "diff below threshold", a.Comment())
		require.NotNil(t, a.CancelledTs())
	})

	t.Run("closed_claim_cannot_be_rejected_again", func(t *testing.T) {
		a := newAssignment(t)
		require.NoError(t, a.Reject("first"))
		require.ErrorIs(t, a.Reject("second"), errs.ErrInvalidState)
	})
}

func TestAssignment_Cancel(t *testing.T) {
	t.Run("cancels_accepted_claim", func(t *testing.T) {
		a := newAssignment(t)

		require.NoError(t, a.Cancel("reassigned"))

		assert.Equal(t, job.Cancelled, a.Status())
		require.NotNil(t, a.CancelledTs())
	})

	t.Run("submitted_work_cannot_be_cancelled", func(t *testing.T) {
		a := newAssignment(t)
		require.NoError(t, a.SubmitForApproval())

		require.ErrorIs(t, a.Cancel("x"), errs.ErrInvalidState)
	})
}

func TestAssignment_RequestExtension(t *testing.T) {
	t.Run("active_claim_may_request", func(t *testing.T) {
		a := newAssignment(t)

		require.NoError(t, a.RequestExtension())
		assert.True(t, a.IsExtensionRequested())
	})

	t.Run("closed_claim_may_not", func(t *testing.T) {
		a := newAssignment(t)
		require.NoError(t, a.Complete())

		require.ErrorIs(t, a.RequestExtension(), errs.ErrInvalidState)
	})
}

func TestRestoreAssignment(t *testing.T) {
	t.Run("round_trips_closed_assignment", func(t *testing.T) {
		now := time.Now().UTC()
		rec := job.Record{
			ID:            kernel.NewUUID(),
			OrderID:       kernel.NewUUID(),
			TranscriberID: kernel.NewUUID(),
			JobType:       job.Finalize,
			Status:        job.Completed,
			AcceptedTs:    now.Add(-time.Hour),
			CompletedTs:   &now,
		}

		a, err := job.RestoreAssignment(rec)

		require.NoError(t, err)
		assert.Equal(t, job.Completed, a.Status())
		assert.Equal(t, job.Completed, a.LoadedStatus())
		assert.False(t, a.IsActive())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := job.RestoreAssignment(job.Record{
			ID:            kernel.NewUUID(),
			OrderID:       kernel.NewUUID(),
			TranscriberID: kernel.NewUUID(),
			JobType:       job.QC,
			Status:        job.StatusUnknown,
		})
		require.Error(t, err)
	})
}

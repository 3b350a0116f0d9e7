package order_test

import (
	"testing"
	"time"

	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/core/domain/model/order"
	"transcription/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, orderType order.Type) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"f1a2b3c4",
		kernel.NewUUID(),
		orderType,
		time.Now().UTC().Add(72*time.Hour),
	)
	require.NoError(t, err)
	return o
}

func restoreInStatus(t *testing.T, orderType order.Type, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Record{
		ID:         kernel.NewUUID(),
		FileID:     "f1a2b3c4",
		CustomerID: kernel.NewUUID(),
		OrderType:  orderType,
		Status:     status,
		DeliveryTs: time.Now().UTC().Add(72 * time.Hour),
		CreatedAt:  time.Now().UTC().Add(-time.Hour),
		UpdatedAt:  time.Now().UTC().Add(-time.Hour),
	})
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("starts_pending", func(t *testing.T) {
		o := newTestOrder(t, order.TypeTranscription)

		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.Pending, o.LoadedStatus())
		require.NoError(t, o.Validate())
	})

	t.Run("rejects_missing_file_id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "", kernel.NewUUID(),
			order.TypeTranscription, time.Now().Add(time.Hour))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_unknown_order_type", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "f1", kernel.NewUUID(),
			order.TypeUnknown, time.Now().Add(time.Hour))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_zero_delivery_ts", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "f1", kernel.NewUUID(),
			order.TypeTranscription, time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_PipelineHappyPath(t *testing.T) {
	o := newTestOrder(t, order.TypeTranscription)

	require.NoError(t, o.SubmitForScreening())
	require.NoError(t, o.AcceptScreening())
	require.NoError(t, o.AssignReviewer())
	require.NoError(t, o.SubmitForApproval())
	require.NoError(t, o.ApproveSubmission())
	require.NoError(t, o.AssignFinalizer())
	assert.Equal(t, order.ReviewCompleted, o.Status())
	require.NoError(t, o.CompleteFinalize())
	require.NoError(t, o.Deliver())

	assert.Equal(t, order.Delivered, o.Status())
	require.NotNil(t, o.DeliveredTs())
}

func TestOrder_AssignFinalizer(t *testing.T) {
	t.Run("requires_review_completed", func(t *testing.T) {
		o := restoreInStatus(t, order.TypeTranscription, order.Transcribed)

		err := o.AssignFinalizer()

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.Transcribed, o.Status())
	})

	t.Run("leaves_status_unchanged", func(t *testing.T) {
		o := restoreInStatus(t, order.TypeTranscription, order.ReviewCompleted)

		require.NoError(t, o.AssignFinalizer())
		assert.Equal(t, order.ReviewCompleted, o.Status())
	})
}

func TestOrder_ReportFile(t *testing.T) {
	t.Run("records_report_and_returns_to_screening", func(t *testing.T) {
		o := restoreInStatus(t, order.TypeTranscription, order.Transcribed)
		report := order.Report{Option: order.ReportBadAudio, Mode: order.ReportModeManual, Comment: "hum at 12:30"}

		require.NoError(t, o.ReportFile(report))

		assert.Equal(t, order.SubmittedForScreening, o.Status())
		assert.Equal(t, report, o.ScreeningReport())
	})

	t.Run("invalid_report_leaves_order_untouched", func(t *testing.T) {
		o := restoreInStatus(t, order.TypeTranscription, order.Transcribed)

		err := o.ReportFile(order.Report{Comment: "missing option"})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.Transcribed, o.Status())
	})

	t.Run("repeated_report_is_invalid_state", func(t *testing.T) {
		o := restoreInStatus(t, order.TypeTranscription, order.Transcribed)
		report := order.Report{Option: order.ReportBadAudio, Mode: order.ReportModeManual}

		require.NoError(t, o.ReportFile(report))
		require.ErrorIs(t, o.ReportFile(report), errs.ErrInvalidState)
	})
}

func TestOrder_Reject(t *testing.T) {
	t.Run("transcription_order_rolls_back_to_transcribed", func(t *testing.T) {
		o := restoreInStatus(t, order.TypeTranscription, order.ReviewCompleted)

		require.NoError(t, o.Reject())
		assert.Equal(t, order.Transcribed, o.Status())
	})

	t.Run("formatting_order_rolls_back_to_formatted", func(t *testing.T) {
		o := restoreInStatus(t, order.TypeFormatting, order.ReviewCompleted)

		require.NoError(t, o.Reject())
		assert.Equal(t, order.Formatted, o.Status())
	})

	t.Run("repeat_rejection_is_invalid_state", func(t *testing.T) {
		o := restoreInStatus(t, order.TypeTranscription, order.ReviewCompleted)

		require.NoError(t, o.Reject())
		require.ErrorIs(t, o.Reject(), errs.ErrInvalidState)
		assert.Equal(t, order.Transcribed, o.Status())
	})
}

func TestOrder_Retarget(t *testing.T) {
	t.Run("sets_caller_supplied_status", func(t *testing.T) {
		o := restoreInStatus(t, order.TypeTranscription, order.ReviewerAssigned)

		require.NoError(t, o.Retarget(order.Transcribed))
		assert.Equal(t, order.Transcribed, o.Status())
	})

	t.Run("rejects_terminal_target", func(t *testing.T) {
		o := restoreInStatus(t, order.TypeTranscription, order.ReviewerAssigned)

		require.ErrorIs(t, o.Retarget(order.Delivered), errs.ErrValueIsInvalid)
	})

	t.Run("rejects_inactive_order", func(t *testing.T) {
		o := restoreInStatus(t, order.TypeTranscription, order.Cancelled)

		require.ErrorIs(t, o.Retarget(order.Transcribed), errs.ErrInvalidState)
	})
}

func TestOrder_RequestReReview(t *testing.T) {
	t.Run("flags_delivered_order_without_moving_status", func(t *testing.T) {
		o := restoreInStatus(t, order.TypeTranscription, order.Delivered)

		require.NoError(t, o.RequestReReview("speaker names wrong"))

		assert.True(t, o.IsReReviewRequested())
		assert.Equal(t, "speaker names wrong", o.ReReviewComment())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("repeated_request_is_a_no_op", func(t *testing.T) {
		o := restoreInStatus(t, order.TypeTranscription, order.Delivered)

		require.NoError(t, o.RequestReReview("first"))
		require.NoError(t, o.RequestReReview("second"))
		assert.Equal(t, "second", o.ReReviewComment())
	})

	t.Run("undelivered_order_is_invalid_state", func(t *testing.T) {
		o := restoreInStatus(t, order.TypeTranscription, order.Transcribed)

		require.ErrorIs(t, o.RequestReReview("x"), errs.ErrInvalidState)
		assert.False(t, o.IsReReviewRequested())
	})
}

func TestOrder_PostponeDelivery(t *testing.T) {
	t.Run("moves_delivery_forward", func(t *testing.T) {
		o := restoreInStatus(t, order.TypeTranscription, order.Transcribed)
		before := o.DeliveryTs()

		require.NoError(t, o.PostponeDelivery(3))
		assert.Equal(t, before.AddDate(0, 0, 3), o.DeliveryTs())
		assert.Equal(t, order.Transcribed, o.Status())
	})

	t.Run("rejects_non_positive_days", func(t *testing.T) {
		o := restoreInStatus(t, order.TypeTranscription, order.Transcribed)
		require.ErrorIs(t, o.PostponeDelivery(0), errs.ErrValueIsInvalid)
	})

	t.Run("rejects_terminal_order", func(t *testing.T) {
		o := restoreInStatus(t, order.TypeTranscription, order.Delivered)
		require.ErrorIs(t, o.PostponeDelivery(1), errs.ErrInvalidState)
	})
}

func TestOrder_FlagHighDifficulty(t *testing.T) {
	t.Run("sets_flag_and_accumulates_bonus", func(t *testing.T) {
		o := restoreInStatus(t, order.TypeTranscription, order.Transcribed)

		require.NoError(t, o.FlagHighDifficulty(50))
		require.NoError(t, o.AssignReviewer())
		require.NoError(t, o.FlagHighDifficulty(25))

		assert.True(t, o.IsHighDifficulty())
		assert.Equal(t, 75, o.RateBonus())
	})

	t.Run("rejects_late_stage_orders", func(t *testing.T) {
		o := restoreInStatus(t, order.TypeTranscription, order.ReviewCompleted)
		require.ErrorIs(t, o.FlagHighDifficulty(50), errs.ErrInvalidState)
	})
}

func TestOrder_RaisePriority(t *testing.T) {
	t.Run("priority_moves_upward_only", func(t *testing.T) {
		o := restoreInStatus(t, order.TypeTranscription, order.Transcribed)

		require.NoError(t, o.RaisePriority(5))
		assert.Equal(t, 5, o.Priority())

		require.ErrorIs(t, o.RaisePriority(5), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, o.RaisePriority(3), errs.ErrValueIsOutOfRange)
	})
}

func TestOrder_SetPWER(t *testing.T) {
	o := restoreInStatus(t, order.TypeTranscription, order.SubmittedForScreening)

	require.NoError(t, o.SetPWER(42))
	assert.Equal(t, 42, o.PWER())

	require.ErrorIs(t, o.SetPWER(101), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, o.SetPWER(-1), errs.ErrValueIsOutOfRange)
}

func TestRestoreOrder(t *testing.T) {
	t.Run("pins_loaded_status", func(t *testing.T) {
		o := restoreInStatus(t, order.TypeTranscription, order.ReviewCompleted)

		require.NoError(t, o.AssignFinalizer())

		// status snapshot from load time stays put for the optimistic update
		assert.Equal(t, order.ReviewCompleted, o.LoadedStatus())
	})

	t.Run("pins_version", func(t *testing.T) {
		o, err := order.RestoreOrder(order.Record{
			ID:         kernel.NewUUID(),
			FileID:     "f1",
			CustomerID: kernel.NewUUID(),
			OrderType:  order.TypeTranscription,
			Status:     order.ReviewCompleted,
			Version:    7,
			DeliveryTs: time.Now(),
		})
		require.NoError(t, err)
		assert.Equal(t, 7, o.Version())

		// mutations leave the loaded version untouched; the repository
		// bumps it on write
		require.NoError(t, o.AssignFinalizer())
		assert.Equal(t, 7, o.Version())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(order.Record{
			ID:         kernel.NewUUID(),
			FileID:     "f1",
			CustomerID: kernel.NewUUID(),
			OrderType:  order.TypeTranscription,
			Status:     order.Unknown,
			DeliveryTs: time.Now(),
		})
		require.Error(t, err)
	})
}

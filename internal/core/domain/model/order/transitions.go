package order

import "transcription/internal/pkg/errs"

// Operation identifies a lifecycle transition. Each operation owns exactly
// one row in the transition table; adding a pipeline stage means adding an
// operation and a row, not a new set of scattered status guards.
type Operation int

const (
	OpUnknown Operation = iota
	OpSubmitForScreening
	OpAcceptScreening
	OpReportFile
	OpAssignReviewer
	OpSubmitForApproval
	OpApproveSubmission
	OpRejectApproval
	OpAssignFinalizer
	OpMarkFormatted
	OpCompleteFinalize
	OpDeliver
	OpRejectToTranscribed
	OpRejectToFormatted
	OpCancel
	OpRefund
	OpBlock
	OpUnblock
)

func operationStrings() map[Operation]string {
	return map[Operation]string{
		OpUnknown:             "unknown",
		OpSubmitForScreening:  "submitForScreening",
		OpAcceptScreening:     "acceptScreenFile",
		OpReportFile:          "reportFile",
		OpAssignReviewer:      "assignReviewer",
		OpSubmitForApproval:   "submitForApproval",
		OpApproveSubmission:   "approveSubmission",
		OpRejectApproval:      "rejectApprovalOrder",
		OpAssignFinalizer:     "assignFinalizer",
		OpMarkFormatted:       "markFormatted",
		OpCompleteFinalize:    "completeFinalize",
		OpDeliver:             "deliver",
		OpRejectToTranscribed: "rejectOrder",
		OpRejectToFormatted:   "rejectOrder",
		OpCancel:              "cancelOrder",
		OpRefund:              "refundOrder",
		OpBlock:               "blockOrder",
		OpUnblock:             "unblockOrder",
	}
}

func (op Operation) String() string {
	if s, ok := operationStrings()[op]; ok {
		return s
	}
	return "unknown"
}

// transition is one row of the table: the set of allowed source states and
// the single target state. An operation whose target equals the source set's
// only member (e.g. assignFinalizer) still consults the table, so its guard
// lives here like every other precondition.
type transition struct {
	sources []Status
	target  Status
}

// transitionTable is the single source of truth for order status movement.
// No handler checks a status on its own; everything goes through Apply.
var transitionTable = map[Operation]transition{
	OpSubmitForScreening: {
		sources: []Status{Pending},
		target:  SubmittedForScreening,
	},
	OpAcceptScreening: {
		sources: []Status{SubmittedForScreening},
		target:  Transcribed,
	},
	OpReportFile: {
		sources: []Status{Transcribed, ReviewerAssigned, SubmittedForApproval, ReviewCompleted},
		target:  SubmittedForScreening,
	},
	OpAssignReviewer: {
		sources: []Status{Transcribed},
		target:  ReviewerAssigned,
	},
	OpSubmitForApproval: {
		sources: []Status{ReviewerAssigned},
		target:  SubmittedForApproval,
	},
	OpApproveSubmission: {
		sources: []Status{SubmittedForApproval},
		target:  ReviewCompleted,
	},
	OpRejectApproval: {
		sources: []Status{SubmittedForApproval},
		target:  Transcribed,
	},
	OpAssignFinalizer: {
		sources: []Status{ReviewCompleted},
		target:  ReviewCompleted,
	},
	OpMarkFormatted: {
		sources: []Status{Transcribed, ReviewCompleted},
		target:  Formatted,
	},
	OpCompleteFinalize: {
		sources: []Status{ReviewCompleted, Formatted},
		target:  PreDelivered,
	},
	OpDeliver: {
		sources: []Status{PreDelivered},
		target:  Delivered,
	},
	// Transcribed is deliberately excluded from the rollback sources:
	// repeating a reject after the first one succeeded is an InvalidState,
	// not a silent no-op.
	OpRejectToTranscribed: {
		sources: []Status{ReviewerAssigned, SubmittedForApproval, ReviewCompleted, Formatted, PreDelivered},
		target:  Transcribed,
	},
	OpRejectToFormatted: {
		sources: []Status{ReviewerAssigned, SubmittedForApproval, ReviewCompleted, PreDelivered},
		target:  Formatted,
	},
	OpCancel: {
		sources: []Status{Pending, SubmittedForScreening, Transcribed},
		target:  Cancelled,
	},
	OpRefund: {
		sources: []Status{Cancelled, Delivered},
		target:  Refunded,
	},
	OpBlock: {
		sources: []Status{
			Pending, SubmittedForScreening, Transcribed, ReviewerAssigned,
			SubmittedForApproval, ReviewCompleted, Formatted, PreDelivered,
		},
		target: Blocked,
	},
	OpUnblock: {
		sources: []Status{Blocked},
		target:  SubmittedForScreening,
	},
}

// Apply returns the target status for the operation if the current status is
// one of its allowed sources, or an InvalidStateError otherwise. Apply never
// mutates anything; callers decide what to do with the result.
func (s Status) Apply(op Operation) (Status, error) {
	t, ok := transitionTable[op]
	if !ok {
		return Unknown, errs.NewValueIsInvalidError("operation")
	}
	for _, src := range t.sources {
		if s == src {
			return t.target, nil
		}
	}
	return Unknown, errs.NewInvalidStateError(op.String(), s.String())
}

// CanApply reports whether the operation is allowed from the current status.
func (s Status) CanApply(op Operation) bool {
	_, err := s.Apply(op)
	return err == nil
}

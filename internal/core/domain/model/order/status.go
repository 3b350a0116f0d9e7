package order

import (
	"fmt"

	"transcription/internal/pkg/errs"
)

// Status represents the lifecycle state of an order as it moves through the
// transcription pipeline:
//
//	Pending -> SubmittedForScreening -> Transcribed -> ReviewerAssigned
//	        -> SubmittedForApproval -> ReviewCompleted -> PreDelivered
//	        -> Delivered
//
// Rejection and re-review paths step backward by design; Cancelled, Refunded
// and Delivered are terminal. All transitions are defined in one place, the
// transition table in transitions.go, and applied through Apply.
type Status int

const (
	// Unknown represents an invalid or undefined status. This value (0)
	// helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly placed order, before the
	// customer submits it into the pipeline.
	Pending

	// SubmittedForScreening means the order is waiting for an OM to screen
	// the file. Reported files also return here.
	SubmittedForScreening

	// Transcribed means screening passed and a transcript exists; the order
	// is ready for review assignment.
	Transcribed

	// ReviewerAssigned means a QC reviewer has claimed the order.
	ReviewerAssigned

	// SubmittedForApproval means a QC submission is waiting for an OM
	// verdict.
	SubmittedForApproval

	// ReviewCompleted means the review stage is approved and the order is
	// ready for finalization.
	ReviewCompleted

	// Formatted is the post-rollback resting state for formatting-type
	// orders.
	Formatted

	// PreDelivered means finalization is done and the order awaits the
	// delivery step.
	PreDelivered

	// Delivered means the transcript has been handed to the customer.
	// Terminal; only the re-review flag can still be set.
	Delivered

	// Cancelled means the customer or staff cancelled the order. Terminal.
	Cancelled

	// Refunded means the order was refunded after cancellation or a
	// high-difficulty claim. Terminal.
	Refunded

	// Blocked means staff froze the order pending investigation.
	Blocked
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:               "UNKNOWN",
		Pending:               "PENDING",
		SubmittedForScreening: "SUBMITTED_FOR_SCREENING",
		Transcribed:           "TRANSCRIBED",
		ReviewerAssigned:      "REVIEWER_ASSIGNED",
		SubmittedForApproval:  "SUBMITTED_FOR_APPROVAL",
		ReviewCompleted:       "REVIEW_COMPLETED",
		Formatted:             "FORMATTED",
		PreDelivered:          "PRE_DELIVERED",
		Delivered:             "DELIVERED",
		Cancelled:             "CANCELLED",
		Refunded:              "REFUNDED",
		Blocked:               "BLOCKED",
	}
}

// ParseStatus maps the wire representation of a status to its Status value.
func ParseStatus(s string) (Status, error) {
	for status, str := range statusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", s))
}

// String returns the platform vocabulary name of the status.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further transitions may move the order.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Refunded
}

// IsActive reports whether the order is live in the pipeline: a valid,
// non-terminal, non-blocked status.
func (s Status) IsActive() bool {
	return s.Validate() == nil && !s.IsTerminal() && s != Blocked
}

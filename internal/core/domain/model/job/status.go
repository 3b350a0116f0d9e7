package job

import (
	"fmt"

	"transcription/internal/pkg/errs"
)

// Status is the lifecycle state of a job assignment.
//
//	Accepted ──┬──> SubmittedForApproval ──┬──> Completed
//	           │                           └──> Rejected
//	           ├──> Completed
//	           ├──> Rejected
//	           └──> Cancelled
//
// Rejected, Cancelled and Completed are terminal; the rows are retained
// indefinitely as assignment history.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Accepted means the transcriber holds an active claim on the order.
	Accepted

	// SubmittedForApproval means the work was handed in and awaits an OM
	// verdict.
	SubmittedForApproval

	// Rejected means the work was rejected; the claim is over.
	Rejected

	// Cancelled means the claim was withdrawn before completion.
	Cancelled

	// Completed means the work was accepted and the claim closed.
	Completed
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "UNKNOWN",
		Accepted:             "ACCEPTED",
		SubmittedForApproval: "SUBMITTED_FOR_APPROVAL",
		Rejected:             "REJECTED",
		Cancelled:            "CANCELLED",
		Completed:            "COMPLETED",
	}
}

func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("jobStatus", fmt.Errorf("%d is not a valid job status", s))
	}
	return nil
}

// IsActive reports whether the assignment still claims the order. At most
// one active assignment may exist per order and job type.
func (s Status) IsActive() bool {
	return s == Accepted || s == SubmittedForApproval
}

// Submit transitions Accepted work to SubmittedForApproval.
func (s Status) Submit() (Status, error) {
	if s != Accepted {
		return 0, errs.NewInvalidStateError("submitJob", s.String())
	}
	return SubmittedForApproval, nil
}

// Complete closes an active assignment as successfully finished.
func (s Status) Complete() (Status, error) {
	if !s.IsActive() {
		return 0, errs.NewInvalidStateError("completeJob", s.String())
	}
	return Completed, nil
}

// Reject closes an active assignment as rejected.
func (s Status) Reject() (Status, error) {
	if !s.IsActive() {
		return 0, errs.NewInvalidStateError("rejectJob", s.String())
	}
	return Rejected, nil
}

// Cancel withdraws an accepted claim. Submitted work cannot be cancelled,
// only rejected or completed.
func (s Status) Cancel() (Status, error) {
	if s != Accepted {
		return 0, errs.NewInvalidStateError("cancelJob", s.String())
	}
	return Cancelled, nil
}

package job

import (
	"errors"
	"time"

	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/errs"
	"transcription/internal/pkg/guard"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment was not
// created through NewAssignment or RestoreAssignment.
var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment or RestoreAssignment")

// Assignment is one transcriber's claim on an order for a specific job type.
// Created in Accepted status when work is assigned; closed by submission,
// rejection, cancellation, or completion. Closed rows are never deleted,
// they are the transcriber's work history.
type Assignment struct {
	id           kernel.UUID
	orderID      kernel.UUID
	transcriberID kernel.UUID
	jobType      Type

	status Status
	// loadedStatus mirrors order.Order: the status as loaded, reported when
	// the conditional update loses.
	loadedStatus Status

	// version is the optimistic lock counter, bumped by the repository on
	// every write. Guards status-preserving writes such as extension
	// requests against concurrent updates.
	version int

	extensionRequested bool
	comment            string

	acceptedTs  time.Time
	completedTs *time.Time
	cancelledTs *time.Time

	guard guard.ConstructorGuard
}

// NewAssignment creates an active claim for the transcriber on the order.
func NewAssignment(id, orderID, transcriberID kernel.UUID, jobType Type) (*Assignment, error) {
	a := &Assignment{
		status:       Accepted,
		loadedStatus: Accepted,
		version:      1,
		acceptedTs:   time.Now().UTC(),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setTranscriberID(transcriberID),
		a.setJobType(jobType),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Record carries the persisted attributes of an assignment for
// RestoreAssignment.
type Record struct {
	ID                 kernel.UUID
	OrderID            kernel.UUID
	TranscriberID      kernel.UUID
	JobType            Type
	Status             Status
	Version            int
	ExtensionRequested bool
	Comment            string
	AcceptedTs         time.Time
	CompletedTs        *time.Time
	CancelledTs        *time.Time
}

// RestoreAssignment reconstructs an assignment from persistent storage.
func RestoreAssignment(rec Record) (*Assignment, error) {
	a := &Assignment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(rec.ID),
		a.setOrderID(rec.OrderID),
		a.setTranscriberID(rec.TranscriberID),
		a.setJobType(rec.JobType),
		rec.Status.Validate(),
	); err != nil {
		return nil, err
	}

	a.status = rec.Status
	a.loadedStatus = rec.Status
	a.version = rec.Version
	a.extensionRequested = rec.ExtensionRequested
	a.comment = rec.Comment
	a.acceptedTs = rec.AcceptedTs
	a.completedTs = rec.CompletedTs
	a.cancelledTs = rec.CancelledTs

	return a, nil
}

// Validate ensures the Assignment was built by a constructor.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

func (a *Assignment) ID() kernel.UUID             { return a.id }
func (a *Assignment) OrderID() kernel.UUID        { return a.orderID }
func (a *Assignment) TranscriberID() kernel.UUID  { return a.transcriberID }
func (a *Assignment) JobType() Type               { return a.jobType }
func (a *Assignment) Status() Status              { return a.status }
func (a *Assignment) LoadedStatus() Status        { return a.loadedStatus }
func (a *Assignment) Version() int                { return a.version }
func (a *Assignment) IsExtensionRequested() bool  { return a.extensionRequested }
func (a *Assignment) Comment() string             { return a.comment }
func (a *Assignment) AcceptedTs() time.Time       { return a.acceptedTs }
func (a *Assignment) CompletedTs() *time.Time     { return a.completedTs }
func (a *Assignment) CancelledTs() *time.Time     { return a.cancelledTs }

// IsActive reports whether the assignment still claims the order.
func (a *Assignment) IsActive() bool {
	return a.status.IsActive()
}

// SubmitForApproval hands the work in for an OM verdict.
func (a *Assignment) SubmitForApproval() error {
	newStatus, err := a.status.Submit()
	if err != nil {
		return err
	}
	a.status = newStatus
	return nil
}

// Complete closes the claim as successfully finished.
func (a *Assignment) Complete() error {
	newStatus, err := a.status.Complete()
	if err != nil {
		return err
	}
	a.status = newStatus
	now := time.Now().UTC()
	a.completedTs = &now
	return nil
}

// Reject closes the claim as rejected, recording the reason.
func (a *Assignment) Reject(reason string) error {
	newStatus, err := a.status.Reject()
	if err != nil {
		return err
	}
	a.status = newStatus
	a.comment = reason
	now := time.Now().UTC()
	a.cancelledTs = &now
	return nil
}

// Cancel withdraws an accepted claim, recording the reason.
func (a *Assignment) Cancel(reason string) error {
	newStatus, err := a.status.Cancel()
	if err != nil {
		return err
	}
	a.status = newStatus
	a.comment = reason
	now := time.Now().UTC()
	a.cancelledTs = &now
	return nil
}

// RequestExtension flags the assignment as needing more time. Only active
// claims may ask.
func (a *Assignment) RequestExtension() error {
	if !a.status.IsActive() {
		return errs.NewInvalidStateError("requestExtension", a.status.String())
	}
	a.extensionRequested = true
	return nil
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	a.orderID = orderID
	return nil
}

func (a *Assignment) setTranscriberID(transcriberID kernel.UUID) error {
	if err := transcriberID.Validate(); err != nil {
		return err
	}
	a.transcriberID = transcriberID
	return nil
}

func (a *Assignment) setJobType(jobType Type) error {
	if err := jobType.Validate(); err != nil {
		return err
	}
	a.jobType = jobType
	return nil
}

package order

import (
	"errors"
	"time"

	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/errs"
	"transcription/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

const (
	pwerMin = 0
	pwerMax = 100
)

// Order is the aggregate root for one unit of transcription work on a file.
// It owns the pipeline status and every attribute the lifecycle operations
// mutate. All status movement goes through the transition table; the
// aggregate exposes one method per operation and refuses anything the table
// does not allow.
//
// Invariants:
//   - Valid unique identifier, file identifier, and owner
//   - Status only changes along transition-table rows
//   - Priority only moves upward
//   - Every mutation refreshes updatedAt
type Order struct {
	id         kernel.UUID
	fileID     string
	customerID kernel.UUID
	orderType  Type

	status Status
	// loadedStatus is the status snapshot taken when the aggregate was
	// loaded. Repositories report it when the conditional update loses.
	loadedStatus Status

	// version is the optimistic lock counter. Repositories key the
	// conditional update on the version the aggregate was loaded with and
	// bump it on every write, so a committed write invalidates concurrent
	// readers even when it leaves the status unchanged (finalizer
	// assignment, postponing, priority and difficulty changes).
	version int

	priority  int
	pwer      int
	rateBonus int

	deliveryTs  time.Time
	deliveredTs *time.Time

	reReview        bool
	reReviewComment string

	report Report

	highDifficulty bool

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a fresh order in Pending status for the given file.
func NewOrder(id kernel.UUID, fileID string, customerID kernel.UUID, orderType Type, deliveryTs time.Time) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:       Pending,
		loadedStatus: Pending,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setFileID(fileID),
		o.setCustomerID(customerID),
		o.setOrderType(orderType),
		o.setDeliveryTs(deliveryTs),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Record carries the persisted attributes of an order for RestoreOrder.
type Record struct {
	ID              kernel.UUID
	FileID          string
	CustomerID      kernel.UUID
	OrderType       Type
	Status          Status
	Version         int
	Priority        int
	PWER            int
	RateBonus       int
	DeliveryTs      time.Time
	DeliveredTs     *time.Time
	ReReview        bool
	ReReviewComment string
	Report          Report
	HighDifficulty  bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RestoreOrder reconstructs an order aggregate from persistent storage. The
// restored order behaves identically to one built through normal domain
// operations; loadedStatus and version are pinned to the persisted row for
// optimistic concurrency on the next update.
func RestoreOrder(rec Record) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(rec.ID),
		o.setFileID(rec.FileID),
		o.setCustomerID(rec.CustomerID),
		o.setOrderType(rec.OrderType),
		rec.Status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = rec.Status
	o.loadedStatus = rec.Status
	o.version = rec.Version
	o.priority = rec.Priority
	o.pwer = rec.PWER
	o.rateBonus = rec.RateBonus
	o.deliveryTs = rec.DeliveryTs
	o.deliveredTs = rec.DeliveredTs
	o.reReview = rec.ReReview
	o.reReviewComment = rec.ReReviewComment
	o.report = rec.Report
	o.highDifficulty = rec.HighDifficulty
	o.createdAt = rec.CreatedAt
	o.updatedAt = rec.UpdatedAt

	return o, nil
}

// Validate ensures the Order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID            { return o.id }
func (o *Order) FileID() string             { return o.fileID }
func (o *Order) CustomerID() kernel.UUID    { return o.customerID }
func (o *Order) OrderType() Type            { return o.orderType }
func (o *Order) Status() Status             { return o.status }
func (o *Order) LoadedStatus() Status       { return o.loadedStatus }
func (o *Order) Version() int               { return o.version }
func (o *Order) Priority() int              { return o.priority }
func (o *Order) PWER() int                  { return o.pwer }
func (o *Order) RateBonus() int             { return o.rateBonus }
func (o *Order) DeliveryTs() time.Time      { return o.deliveryTs }
func (o *Order) DeliveredTs() *time.Time    { return o.deliveredTs }
func (o *Order) IsReReviewRequested() bool  { return o.reReview }
func (o *Order) ReReviewComment() string    { return o.reReviewComment }
func (o *Order) ScreeningReport() Report    { return o.report }
func (o *Order) IsHighDifficulty() bool     { return o.highDifficulty }
func (o *Order) CreatedAt() time.Time       { return o.createdAt }
func (o *Order) UpdatedAt() time.Time       { return o.updatedAt }

// apply moves the status along the transition table row for op.
func (o *Order) apply(op Operation) error {
	newStatus, err := o.status.Apply(op)
	if err != nil {
		return err
	}
	o.status = newStatus
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

// SubmitForScreening moves a pending order into the OM screening queue.
func (o *Order) SubmitForScreening() error {
	return o.apply(OpSubmitForScreening)
}

// AcceptScreening records an OM accepting a screened file.
func (o *Order) AcceptScreening() error {
	return o.apply(OpAcceptScreening)
}

// ReportFile sends the order back to screening and records the report.
func (o *Order) ReportFile(report Report) error {
	if err := report.Validate(); err != nil {
		return err
	}
	if err := o.apply(OpReportFile); err != nil {
		return err
	}
	o.report = report
	return nil
}

// AssignReviewer marks the order as claimed by a QC reviewer.
func (o *Order) AssignReviewer() error {
	return o.apply(OpAssignReviewer)
}

// SubmitForApproval records a QC submission awaiting an OM verdict.
func (o *Order) SubmitForApproval() error {
	return o.apply(OpSubmitForApproval)
}

// ApproveSubmission records an OM approving the QC submission.
func (o *Order) ApproveSubmission() error {
	return o.apply(OpApproveSubmission)
}

// RejectApproval rolls a rejected QC submission back to Transcribed.
func (o *Order) RejectApproval() error {
	return o.apply(OpRejectApproval)
}

// AssignFinalizer validates that a finalizer may claim the order. The order
// status itself does not move; the claim lives on the job assignment.
func (o *Order) AssignFinalizer() error {
	return o.apply(OpAssignFinalizer)
}

// MarkFormatted records completion of the formatting stage.
func (o *Order) MarkFormatted() error {
	return o.apply(OpMarkFormatted)
}

// CompleteFinalize records a finalizer submission, parking the order in
// PreDelivered.
func (o *Order) CompleteFinalize() error {
	return o.apply(OpCompleteFinalize)
}

// Deliver hands the order to the customer and stamps the delivery time.
func (o *Order) Deliver() error {
	if err := o.apply(OpDeliver); err != nil {
		return err
	}
	now := time.Now().UTC()
	o.deliveredTs = &now
	return nil
}

// Reject rolls the order back to its type-appropriate resting state. The
// caller is responsible for rejecting the active assignments alongside.
func (o *Order) Reject() error {
	return o.apply(o.orderType.rejectOperation())
}

// Cancel terminates the order before work has progressed past Transcribed.
func (o *Order) Cancel() error {
	return o.apply(OpCancel)
}

// Refund marks a cancelled or delivered order as refunded.
func (o *Order) Refund() error {
	return o.apply(OpRefund)
}

// Block freezes the order pending investigation.
func (o *Order) Block() error {
	return o.apply(OpBlock)
}

// Unblock returns a blocked order to the screening queue.
func (o *Order) Unblock() error {
	return o.apply(OpUnblock)
}

// Retarget sets the order to a caller-supplied status. Used by the generic
// unassignment flow, where the desired resting state depends on which stage
// the transcriber abandoned. The target must be a valid non-terminal status
// and the order must still be active.
func (o *Order) Retarget(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target.IsTerminal() {
		return errs.NewValueIsInvalidError("targetStatus")
	}
	if !o.status.IsActive() {
		return errs.NewInvalidStateError("unassign", o.status.String())
	}
	o.status = target
	o.touch()
	return nil
}

// RequestReReview flags a delivered order for another review pass. The
// status does not move. Repeated requests are a no-op by design: the flag is
// already set and the second call must not fail the customer.
func (o *Order) RequestReReview(comment string) error {
	if o.status != Delivered {
		return errs.NewInvalidStateError("requestReReview", o.status.String())
	}
	o.reReview = true
	o.reReviewComment = comment
	o.touch()
	return nil
}

// PostponeDelivery pushes the expected delivery date forward by the given
// number of days. Pure data mutation, no status movement.
func (o *Order) PostponeDelivery(days int) error {
	if days <= 0 {
		return errs.NewValueIsInvalidError("days")
	}
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError("changeDeliveryDate", o.status.String())
	}
	o.deliveryTs = o.deliveryTs.AddDate(0, 0, days)
	o.touch()
	return nil
}

// FlagHighDifficulty marks the order as unusually difficult and grants the
// given rate bonus to attract transcribers.
func (o *Order) FlagHighDifficulty(bonus int) error {
	if bonus < 0 {
		return errs.NewValueIsInvalidError("bonus")
	}
	if o.status != Transcribed && o.status != ReviewerAssigned {
		return errs.NewInvalidStateError("flagHighDifficulty", o.status.String())
	}
	o.highDifficulty = true
	o.rateBonus += bonus
	o.touch()
	return nil
}

// RaisePriority bumps the order priority. Priority only moves upward.
func (o *Order) RaisePriority(priority int) error {
	if priority <= o.priority {
		return errs.NewValueIsOutOfRangeError("priority", priority, o.priority+1, int(^uint(0)>>1))
	}
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError("changePriority", o.status.String())
	}
	o.priority = priority
	o.touch()
	return nil
}

// SetPWER records the difficulty/error-rate score assigned during screening.
func (o *Order) SetPWER(pwer int) error {
	if pwer < pwerMin || pwer > pwerMax {
		return errs.NewValueIsOutOfRangeError("pwer", pwer, pwerMin, pwerMax)
	}
	o.pwer = pwer
	o.touch()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setFileID(fileID string) error {
	if fileID == "" {
		return errs.NewValueIsRequiredError("fileId")
	}
	o.fileID = fileID
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setOrderType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setDeliveryTs(deliveryTs time.Time) error {
	if deliveryTs.IsZero() {
		return errs.NewValueIsRequiredError("deliveryTs")
	}
	o.deliveryTs = deliveryTs
	return nil
}

package jobrepo

import (
	"context"
	"errors"

	"transcription/internal/core/domain/model/job"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormJobAssignmentRepository implements JobAssignmentRepository using GORM.
type GormJobAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormJobAssignmentRepository creates a new GORM job assignment repository.
func NewGormJobAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormJobAssignmentRepository {
	return &GormJobAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new assignment to the database.
func (r *GormJobAssignmentRepository) Add(ctx context.Context, aggregate *job.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing assignment. Conditional on the loaded version and
// bumps it, same optimistic scheme as orders.
func (r *GormJobAssignmentRepository) Update(ctx context.Context, aggregate *job.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1
	result := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewInvalidStateError("update assignment", aggregate.LoadedStatus().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an assignment by ID.
func (r *GormJobAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*job.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByOrderAndType retrieves the active assignment for an order and
// job type, if one exists.
func (r *GormJobAssignmentRepository) GetActiveByOrderAndType(
	ctx context.Context,
	orderID kernel.UUID,
	jobType job.Type,
) (*job.Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND job_type = ? AND status IN (?, ?)",
			orderID.Bytes(), int(jobType), job.Accepted, job.SubmittedForApproval).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActiveByOrder retrieves every active assignment on an order.
func (r *GormJobAssignmentRepository) GetAllActiveByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*job.Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "order_id = ? AND status IN (?, ?)",
			orderID.Bytes(), job.Accepted, job.SubmittedForApproval).
		Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByTranscriber retrieves the transcriber's full assignment history,
// newest first.
func (r *GormJobAssignmentRepository) GetAllByTranscriber(
	ctx context.Context,
	transcriberID kernel.UUID,
) ([]*job.Assignment, error) {
	if err := transcriberID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Order("accepted_ts DESC").
		Find(&dtos, "transcriber_id = ?", transcriberID.Bytes()).
		Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []AssignmentDTO) ([]*job.Assignment, error) {
	assignments := make([]*job.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

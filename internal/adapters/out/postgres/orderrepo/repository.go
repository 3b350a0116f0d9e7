package orderrepo

import (
	"context"
	"errors"
	"time"

	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/core/domain/model/order"
	"transcription/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order. The write is conditional on the version
// the aggregate was loaded with and bumps it, so every committed write
// invalidates concurrent readers, including writes that leave the status
// unchanged (finalizer assignment, postponing, priority changes). A
// concurrent transaction that already wrote the order makes the update match
// zero rows, which surfaces as InvalidState so the losing command fails
// instead of clobbering the winner.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewInvalidStateError("update order", aggregate.LoadedStatus().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByFileID retrieves the active order for a file, if one exists.
func (r *GormOrderRepository) GetActiveByFileID(ctx context.Context, fileID string) (*order.Order, error) {
	if fileID == "" {
		return nil, errs.NewValueIsRequiredError("fileID")
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "file_id = ? AND status NOT IN (?, ?, ?)",
			fileID, order.Delivered, order.Cancelled, order.Refunded).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", fileID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all non-terminal orders whose file has not been
// soft-deleted.
func (r *GormOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Joins("JOIN files ON files.id = orders.file_id AND files.deleted_at IS NULL").
		Find(&dtos, "orders.status NOT IN (?, ?, ?, ?)",
			order.Delivered, order.Cancelled, order.Refunded, order.Blocked).
		Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllAwaitingScreening retrieves the screening work list, oldest first.
func (r *GormOrderRepository) GetAllAwaitingScreening(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("updated_at").
		Find(&dtos, "status = ?", order.SubmittedForScreening).
		Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllOverdueApprovals retrieves orders stuck in SubmittedForApproval since
// before the cutoff.
func (r *GormOrderRepository) GetAllOverdueApprovals(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND updated_at < ?", order.SubmittedForApproval, cutoff).
		Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

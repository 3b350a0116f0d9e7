package filerepo

import (
	"context"
	"errors"

	"transcription/internal/core/domain/model/file"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFileRepository implements FileRepository using GORM.
type GormFileRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormFileRepository creates a new GORM file repository.
func NewGormFileRepository(db *gorm.DB, tracker aggregateTracker) *GormFileRepository {
	return &GormFileRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new file record to the database.
func (r *GormFileRepository) Add(ctx context.Context, aggregate *file.File) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OwnerID(), aggregate)
	return nil
}

// Update saves an existing file record.
func (r *GormFileRepository) Update(ctx context.Context, aggregate *file.File) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&FileDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("file", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.OwnerID(), aggregate)
	return nil
}

// Get retrieves a file by its external string identifier. Soft-deleted rows
// are returned as well; callers decide what deletion means for them.
func (r *GormFileRepository) Get(ctx context.Context, id string) (*file.File, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("fileID")
	}

	var dto FileDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("file", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Package filerepo provides data transfer objects and mapping functions for
// file persistence.
package filerepo

import (
	"time"

	"transcription/internal/core/domain/model/file"
	"transcription/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// FileDTO represents the database structure for persisting uploaded media
// files. The primary key is the external string identifier assigned at
// upload, not a UUID. Options holds the order form as opaque JSON.
type FileDTO struct {
	ID        string    `gorm:"primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index"`
	Filename  string
	Duration  float64
	Converted bool
	DeletedAt *time.Time
	Options   string `gorm:"type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming convention to use "files".
func (FileDTO) TableName() string {
	return "files"
}

// fromDomain converts a file aggregate to its database representation.
func fromDomain(f *file.File) FileDTO {
	return FileDTO{
		ID:        f.ID(),
		OwnerID:   f.OwnerID().Bytes(),
		Filename:  f.Filename(),
		Duration:  f.Duration(),
		Converted: f.IsConverted(),
		DeletedAt: f.DeletedAt(),
		Options:   f.Options(),
		CreatedAt: f.CreatedAt(),
		UpdatedAt: f.UpdatedAt(),
	}
}

// toDomain converts a database DTO back to a file aggregate.
func toDomain(dto FileDTO) (*file.File, error) {
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return file.RestoreFile(file.Record{
		ID:        dto.ID,
		OwnerID:   ownerID,
		Filename:  dto.Filename,
		Duration:  dto.Duration,
		Converted: dto.Converted,
		DeletedAt: dto.DeletedAt,
		Options:   dto.Options,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	})
}

package ports

import (
	"context"

	"transcription/internal/core/domain/model/file"
)

// FileRepository defines the persistence contract for uploaded media assets.
type FileRepository interface {
	// Add persists a new file record.
	Add(ctx context.Context, aggregate *file.File) error

	// Update persists changes to an existing file record.
	Update(ctx context.Context, aggregate *file.File) error

	// Get retrieves a file by its external string identifier. Soft-deleted
	// files are still returned; callers check IsDeleted.
	Get(ctx context.Context, id string) (*file.File, error)
}

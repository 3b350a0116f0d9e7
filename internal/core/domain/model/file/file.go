package file

import (
	"errors"
	"time"

	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/errs"
	"transcription/internal/pkg/guard"
)

// ErrFileIsNotConstructed is returned when a File was not created through
// NewFile or RestoreFile.
var ErrFileIsNotConstructed = errors.New("File must be created via NewFile or RestoreFile")

// File is one uploaded media asset. The ID is the external string identifier
// under which the asset's artifacts live in object storage. A file is owned
// by the uploading customer and is referenced by at most one active order.
type File struct {
	id       string
	ownerID  kernel.UUID
	filename string

	// duration of the media in seconds, known after conversion.
	duration float64

	converted bool
	deletedAt *time.Time

	// options is an opaque JSON blob of custom formatting instructions.
	// The lifecycle core carries it but never interprets it.
	options string

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewFile registers a freshly uploaded asset. It starts unconverted; the
// conversion pipeline marks it converted once processing finishes.
func NewFile(id string, ownerID kernel.UUID, filename string) (*File, error) {
	now := time.Now().UTC()
	f := &File{
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		f.setID(id),
		f.setOwnerID(ownerID),
		f.setFilename(filename),
	); err != nil {
		return nil, err
	}

	return f, nil
}

// Record carries the persisted attributes of a file for RestoreFile.
type Record struct {
	ID        string
	OwnerID   kernel.UUID
	Filename  string
	Duration  float64
	Converted bool
	DeletedAt *time.Time
	Options   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RestoreFile reconstructs a file from persistent storage.
func RestoreFile(rec Record) (*File, error) {
	f := &File{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		f.setID(rec.ID),
		f.setOwnerID(rec.OwnerID),
		f.setFilename(rec.Filename),
	); err != nil {
		return nil, err
	}

	f.duration = rec.Duration
	f.converted = rec.Converted
	f.deletedAt = rec.DeletedAt
	f.options = rec.Options
	f.createdAt = rec.CreatedAt
	f.updatedAt = rec.UpdatedAt

	return f, nil
}

// Validate ensures the File was built by a constructor.
func (f *File) Validate() error {
	if f == nil {
		return ErrFileIsNotConstructed
	}
	return f.guard.Validate(ErrFileIsNotConstructed)
}

func (f *File) ID() string            { return f.id }
func (f *File) OwnerID() kernel.UUID  { return f.ownerID }
func (f *File) Filename() string      { return f.filename }
func (f *File) Duration() float64     { return f.duration }
func (f *File) IsConverted() bool     { return f.converted }
func (f *File) DeletedAt() *time.Time { return f.deletedAt }
func (f *File) Options() string       { return f.options }
func (f *File) CreatedAt() time.Time  { return f.createdAt }
func (f *File) UpdatedAt() time.Time  { return f.updatedAt }

// IsDeleted reports whether the file was soft-deleted. Deleted files are
// excluded from all active-order queries and cannot be ordered against.
func (f *File) IsDeleted() bool {
	return f.deletedAt != nil
}

// IsOrderable reports whether an order can be placed for this file.
func (f *File) IsOrderable() bool {
	return f.converted && !f.IsDeleted()
}

// MarkConverted records that audio/video processing finished and the media
// duration became known.
func (f *File) MarkConverted(duration float64) error {
	if f.IsDeleted() {
		return errs.NewInvalidStateError("markConverted", "DELETED")
	}
	if duration <= 0 {
		return errs.NewValueIsOutOfRangeError("duration", duration, 0, nil)
	}
	f.converted = true
	f.duration = duration
	f.touch()
	return nil
}

// SetOptions replaces the custom formatting instruction blob.
func (f *File) SetOptions(options string) {
	f.options = options
	f.touch()
}

// SoftDelete marks the file as removed. The row stays for history; repeated
// deletes keep the original timestamp.
func (f *File) SoftDelete() {
	if f.deletedAt != nil {
		return
	}
	now := time.Now().UTC()
	f.deletedAt = &now
	f.touch()
}

func (f *File) touch() {
	f.updatedAt = time.Now().UTC()
}

func (f *File) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("fileId")
	}
	f.id = id
	return nil
}

func (f *File) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	f.ownerID = ownerID
	return nil
}

func (f *File) setFilename(filename string) error {
	if filename == "" {
		return errs.NewValueIsRequiredError("filename")
	}
	f.filename = filename
	return nil
}

// Package jobrepo provides data transfer objects and mapping functions for
// job assignment persistence.
package jobrepo

import (
	"time"

	"transcription/internal/core/domain/model/job"
	"transcription/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting job
// assignments. Closed assignments stay in the table; they back the
// per-transcriber history queries. The partial unique index enforces at most
// one active claim per order and job type at the database level; 1 and 2 are
// the Accepted and SubmittedForApproval statuses.
type AssignmentDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID            uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_job_assignments_active,where:status IN (1,2)"`
	TranscriberID      uuid.UUID `gorm:"type:uuid;index"`
	JobType            int       `gorm:"uniqueIndex:idx_job_assignments_active,where:status IN (1,2)"`
	Status             int       `gorm:"index"`
	Version            int
	ExtensionRequested bool
	Comment            string
	AcceptedTs         time.Time
	CompletedTs        *time.Time
	CancelledTs        *time.Time
}

// TableName overrides GORM's default naming convention to use
// "job_assignments".
func (AssignmentDTO) TableName() string {
	return "job_assignments"
}

// fromDomain converts an assignment aggregate to its database representation.
func fromDomain(a *job.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:                 a.ID().Bytes(),
		OrderID:            a.OrderID().Bytes(),
		TranscriberID:      a.TranscriberID().Bytes(),
		JobType:            int(a.JobType()),
		Status:             int(a.Status()),
		Version:            a.Version(),
		ExtensionRequested: a.IsExtensionRequested(),
		Comment:            a.Comment(),
		AcceptedTs:         a.AcceptedTs(),
		CompletedTs:        a.CompletedTs(),
		CancelledTs:        a.CancelledTs(),
	}
}

// toDomain converts a database DTO back to an assignment aggregate.
func toDomain(dto AssignmentDTO) (*job.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	transcriberID, err := kernel.UUIDFromBytes(dto.TranscriberID[:])
	if err != nil {
		return nil, err
	}

	return job.RestoreAssignment(job.Record{
		ID:                 id,
		OrderID:            orderID,
		TranscriberID:      transcriberID,
		JobType:            job.Type(dto.JobType),
		Status:             job.Status(dto.Status),
		Version:            dto.Version,
		ExtensionRequested: dto.ExtensionRequested,
		Comment:            dto.Comment,
		AcceptedTs:         dto.AcceptedTs,
		CompletedTs:        dto.CompletedTs,
		CancelledTs:        dto.CancelledTs,
	})
}

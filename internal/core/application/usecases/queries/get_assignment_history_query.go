package queries

import (
	"errors"

	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/guard"
)

var ErrGetAssignmentHistoryQueryIsNotConstructed = errors.New(
	"GetAssignmentHistoryQuery must be created via NewGetAssignmentHistoryQuery constructor",
)

// GetAssignmentHistoryQuery retrieves every job assignment a transcriber has
// ever held, newest first. Includes completed, rejected and cancelled jobs.
type GetAssignmentHistoryQuery struct {
	transcriberID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignmentHistoryQuery creates a query for one transcriber's history.
func NewGetAssignmentHistoryQuery(transcriberID kernel.UUID) (GetAssignmentHistoryQuery, error) {
	if err := transcriberID.Validate(); err != nil {
		return GetAssignmentHistoryQuery{}, err
	}
	return GetAssignmentHistoryQuery{
		transcriberID: transcriberID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignmentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentHistoryQueryIsNotConstructed)
}

// TranscriberID returns the identifier of the transcriber whose history is
// requested.
func (q GetAssignmentHistoryQuery) TranscriberID() kernel.UUID {
	return q.transcriberID
}

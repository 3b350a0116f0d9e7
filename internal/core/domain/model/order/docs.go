// Package order provides the Order aggregate and its status state machine,
// the core of the transcription pipeline.
//
// The package includes:
//   - Order: the aggregate root owning pipeline status, priority, PWER,
//     delivery schedule, screening report, and the re-review flag
//   - Status: a closed enumeration of pipeline states
//   - Operation + the transition table: the single source of truth for which
//     operation may move which status where
//   - Type: the kind of ordered work
//   - Report: the screening report value object
//
// Key business rules:
//   - Status transitions are one-directional along the pipeline except for
//     explicit rejection, report, and unassignment paths that step backward
//   - Every transition is a row in one table consulted by Status.Apply;
//     handlers never check statuses ad hoc
//   - Priority only moves upward; Delivered, Cancelled and Refunded are
//     terminal
package order

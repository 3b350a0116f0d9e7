// Package job provides the JobAssignment aggregate: a transcriber's claim on
// an order for one pipeline stage (transcribe, QC, finalize, or test).
//
// Key business rules:
//   - An order has at most one active (Accepted or SubmittedForApproval)
//     assignment per job type at any time; assignment operations verify this
//     before creating a new claim
//   - Closed assignments (Rejected, Cancelled, Completed) are retained
//     indefinitely as work history
//   - Cancellation only applies to Accepted claims; submitted work is either
//     completed or rejected
package job

package commands

import (
	"errors"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/core/domain/model/order"
	"transcription/internal/pkg/guard"
)

var ErrReportFileCommandIsNotConstructed = errors.New(
	"ReportFileCommand must be created via NewReportFileCommand constructor",
)

// ReportFileCommand sends an order back to screening with a report: bad
// audio, wrong instructions, or an automated diff check below threshold.
type ReportFileCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	orderID   kernel.UUID
	report    order.Report

	guard guard.ConstructorGuard
}

// NewReportFileCommand creates a command to report a file back to screening.
func NewReportFileCommand(
	principal auth.Principal,
	orderID kernel.UUID,
	report order.Report,
) (ReportFileCommand, error) {
	cmd := ReportFileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		principal.Validate(),
		orderID.Validate(),
		report.Validate(),
	); err != nil {
		return ReportFileCommand{}, err
	}

	cmd.principal = principal
	cmd.orderID = orderID
	cmd.report = report
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportFileCommand) Validate() error {
	return c.guard.Validate(ErrReportFileCommandIsNotConstructed)
}

func (c ReportFileCommand) Principal() auth.Principal { return c.principal }
func (c ReportFileCommand) OrderID() kernel.UUID      { return c.orderID }
func (c ReportFileCommand) Report() order.Report      { return c.report }

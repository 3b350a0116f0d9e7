package commands

import (
	"context"
	"fmt"
	"log/slog"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/ports"
)

// ReportFileCommandHandler sends an order back to the screening queue and
// records the report. Transcribers, QC reviewers, and OMs may report; the
// automated diff check reports through a system principal with the OM role.
type ReportFileCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewReportFileCommandHandler creates a handler for file reports.
func NewReportFileCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) ReportFileCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return ReportFileCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "report_file"),
	}
}

// Handle processes the file report command.
func (h ReportFileCommandHandler) Handle(ctx context.Context, cmd ReportFileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Require("reportFile",
		auth.RoleTranscriber, auth.RoleQC, auth.RoleOM); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ord.ReportFile(cmd.Report()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	sendAlert(ctx, h.logger, h.notifier,
		fmt.Sprintf("file reported: %s", cmd.Report().Option),
		fmt.Sprintf("order %s sent back to screening (%s): %s",
			ord.ID(), cmd.Report().Mode, cmd.Report().Comment))
	return nil
}

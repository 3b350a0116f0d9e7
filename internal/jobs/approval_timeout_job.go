package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"transcription/internal/core/application/usecases/commands"
	"transcription/internal/core/domain/model/auth"
	"transcription/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// ApprovalTimeoutJob bounces orders stuck in the approval queue. Runs every
// minute, finds orders awaiting approval for longer than the configured
// timeout, and rejects each one on behalf of the system principal so the
// review returns to the work pool.
type ApprovalTimeoutJob struct {
	uowFactory commands.OrderUoWFactory
	handler    commands.RejectApprovalCommandHandler
	system     auth.Principal
	timeout    time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewApprovalTimeoutJob creates a job that expires overdue approvals.
func NewApprovalTimeoutJob(
	uowFactory commands.OrderUoWFactory,
	handler commands.RejectApprovalCommandHandler,
	system auth.Principal,
	timeout time.Duration,
	logger *slog.Logger,
) *ApprovalTimeoutJob {
	return &ApprovalTimeoutJob{
		uowFactory: uowFactory,
		handler:    handler,
		system:     system,
		timeout:    timeout,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "approval_timeout_job"),
	}
}

// Start begins the approval timeout job, running once a minute.
func (j *ApprovalTimeoutJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", j.tick)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Approval timeout job started (running every minute)",
		"timeout", j.timeout)
	return nil
}

// Stop stops the approval timeout job.
func (j *ApprovalTimeoutJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Approval timeout job stopped")
}

func (j *ApprovalTimeoutJob) tick() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-j.timeout)

	overdue, err := j.uowFactory.Create().OrderRepository().GetAllOverdueApprovals(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list overdue approvals", "error", err)
		return
	}

	for _, ord := range overdue {
		cmd, err := commands.NewRejectApprovalCommand(j.system, ord.ID(), "approval window expired")
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build rejection command",
				"orderId", ord.ID().String(), "error", err)
			continue
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// a concurrent approval decision beat the timeout, nothing to do
			if errors.Is(err, errs.ErrInvalidState) {
				continue
			}
			j.logger.ErrorContext(ctx, "Failed to expire overdue approval",
				"orderId", ord.ID().String(), "error", err)
			continue
		}

		j.logger.InfoContext(ctx, "Expired overdue approval", "orderId", ord.ID().String())
	}
}

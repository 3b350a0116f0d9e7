package commands

import (
	"context"
	"log/slog"

	"transcription/internal/core/ports"
)

// Mail templates rendered by the notification collaborator.
const (
	mailTemplateJobAssigned       = "job-assigned"
	mailTemplateJobUnassigned     = "job-unassigned"
	mailTemplateSubmissionOutcome = "submission-outcome"
	mailTemplateOrderDelivered    = "order-delivered"
)

// sendMail requests a notification after a committed transaction. Failures
// are logged and swallowed: the state change already happened and must not be
// reported as failed because of the mail.
func sendMail(ctx context.Context, logger *slog.Logger, notifier ports.Notifier, template, recipient string, data map[string]string) {
	if notifier == nil {
		return
	}
	if err := notifier.SendMail(ctx, template, recipient, data); err != nil {
		logger.Warn("mail notification failed",
			"template", template,
			"error", err)
	}
}

// sendAlert raises a staff alert after a committed transaction, same
// fire-and-forget contract as sendMail.
func sendAlert(ctx context.Context, logger *slog.Logger, notifier ports.Notifier, subject, body string) {
	if notifier == nil {
		return
	}
	if err := notifier.SendAlert(ctx, subject, body); err != nil {
		logger.Warn("alert notification failed",
			"subject", subject,
			"error", err)
	}
}

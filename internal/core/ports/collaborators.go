package ports

import (
	"context"
	"time"
)

// Notifier sends mail and operational alerts. Notification failures are
// logged by the caller and never fail the command that requested them.
type Notifier interface {
	// SendMail renders the named template with data and mails it to the
	// recipient. The recipient is a principal identifier, not a mailbox
	// address; the account directory fronting the mail service owns the
	// identifier-to-address mapping, so user addresses never enter this
	// service.
	SendMail(ctx context.Context, template string, recipient string, data map[string]string) error

	// SendAlert raises an operational alert for staff.
	SendAlert(ctx context.Context, subject string, body string) error
}

// ObjectStorage manages media artifacts keyed by the file identifier plus a
// suffix convention (e.g. "f-100_qc.txt").
type ObjectStorage interface {
	// Exists reports whether an object is present under the key.
	Exists(ctx context.Context, key string) (bool, error)

	// PresignGet issues a time-limited download URL for the key.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)

	// PresignPut issues a time-limited upload URL for the key.
	PresignPut(ctx context.Context, key string, expiry time.Duration) (string, error)

	// Delete removes the object under the key. Deleting a missing key is
	// not an error.
	Delete(ctx context.Context, key string) error
}

// JobQueue enqueues deferred work (ASR trigger, conversion, LLM marking).
// Delivery is at-least-once; consumers are responsible for idempotency.
type JobQueue interface {
	// Enqueue adds a payload to the named queue.
	Enqueue(ctx context.Context, queue string, payload []byte) error
}

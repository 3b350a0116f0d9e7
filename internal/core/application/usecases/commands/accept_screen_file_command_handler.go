package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/ports"
)

// asrQueue receives a job per accepted file to trigger automatic speech
// recognition downstream.
const asrQueue = "asr-trigger"

// AcceptScreenFileCommandHandler accepts a screened file on behalf of the OM
// and requests the ASR run for it after the transaction commits.
type AcceptScreenFileCommandHandler struct {
	uowFactory OrderUoWFactory
	jobQueue   ports.JobQueue
	logger     *slog.Logger
}

// NewAcceptScreenFileCommandHandler creates a handler for screening
// acceptance.
func NewAcceptScreenFileCommandHandler(
	uowFactory OrderUoWFactory,
	jobQueue ports.JobQueue,
	logger *slog.Logger,
) AcceptScreenFileCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return AcceptScreenFileCommandHandler{
		uowFactory: uowFactory,
		jobQueue:   jobQueue,
		logger:     logger.With("component", "accept_screen_file"),
	}
}

// Handle processes the screening acceptance command.
func (h AcceptScreenFileCommandHandler) Handle(ctx context.Context, cmd AcceptScreenFileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Require("acceptScreenFile", auth.RoleOM); err != nil {
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

	if err = ord.AcceptScreening(); err != nil {
		return err
	}
	if err = ord.SetPWER(cmd.PWER()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.enqueueASR(ctx, ord.FileID())
	return nil
}

// enqueueASR requests the ASR run post-commit. Queue failures are logged;
// the dispatcher consumer tolerates missing triggers.
func (h AcceptScreenFileCommandHandler) enqueueASR(ctx context.Context, fileID string) {
	if h.jobQueue == nil {
		return
	}
	payload, err := json.Marshal(map[string]string{"fileId": fileID})
	if err != nil {
		h.logger.Warn("asr payload marshal failed", "fileId", fileID, "error", err)
		return
	}
	if err := h.jobQueue.Enqueue(ctx, asrQueue, payload); err != nil {
		h.logger.Warn("asr enqueue failed", "fileId", fileID, "error", err)
	}
}

package cmd

import (
	"context"
	"log/slog"
	"time"

	httpadapter "transcription/internal/adapters/in/http"
	"transcription/internal/adapters/out/postgres"
	"transcription/internal/adapters/out/queue"
	"transcription/internal/core/application/usecases/commands"
	"transcription/internal/core/application/usecases/queries"
	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/core/ports"
	"transcription/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	jobQueue   *queue.GormJobQueue
	notifier   ports.Notifier
	storage    ports.ObjectStorage
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	notifier ports.Notifier,
	storage ports.ObjectStorage,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		jobQueue:   queue.NewGormJobQueue(gormDB),
		notifier:   notifier,
		storage:    storage,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderJobUoWFactory() commands.OrderJobUoWFactory {
	return FuncOrderJobUoWFactory(func() commands.OrderJobUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) createOrderUoWFactory() commands.CreateOrderUoWFactory {
	return FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliverOrderUoWFactory() commands.DeliverOrderUoWFactory {
	return FuncDeliverOrderUoWFactory(func() commands.DeliverOrderUoW {
		return c.uowFactory.Create()
	})
}

// CreateHandlers assembles every use case handler the HTTP server dispatches
// to.
func (c *CompositionRoot) CreateHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		CreateOrder:        commands.NewCreateOrderCommandHandler(c.createOrderUoWFactory()),
		SubmitForScreening: commands.NewSubmitForScreeningCommandHandler(c.orderUoWFactory()),
		AcceptScreenFile:   commands.NewAcceptScreenFileCommandHandler(c.orderUoWFactory(), c.jobQueue, c.logger),
		ReportFile:         commands.NewReportFileCommandHandler(c.orderUoWFactory(), c.notifier, c.logger),
		AssignQC:           commands.NewAssignQCCommandHandler(c.orderJobUoWFactory(), c.notifier, c.logger),
		SubmitQC:           commands.NewSubmitQCCommandHandler(c.orderJobUoWFactory()),
		ApproveSubmission:  commands.NewApproveSubmissionCommandHandler(c.orderJobUoWFactory(), c.notifier, c.logger),
		RejectApproval:     commands.NewRejectApprovalCommandHandler(c.orderJobUoWFactory(), c.notifier, c.logger),
		AssignFinalizer:    commands.NewAssignFinalizerCommandHandler(c.orderJobUoWFactory(), c.notifier, c.logger),
		SubmitFinalize:     commands.NewSubmitFinalizeCommandHandler(c.orderJobUoWFactory()),
		MarkFormatted:      commands.NewMarkFormattedCommandHandler(c.orderUoWFactory()),
		DeliverOrder: commands.NewDeliverOrderCommandHandler(
			c.deliverOrderUoWFactory(), c.notifier, c.logger, c.config.RateCentsPerMinute),
		RejectOrder:        commands.NewRejectOrderCommandHandler(c.orderJobUoWFactory(), c.notifier, c.logger),
		UnassignJob:        commands.NewUnassignJobCommandHandler(c.orderJobUoWFactory(), c.notifier, c.logger),
		RequestReReview:    commands.NewRequestReReviewCommandHandler(c.orderUoWFactory()),
		ChangeDeliveryDate: commands.NewChangeDeliveryDateCommandHandler(c.orderUoWFactory()),
		FlagHighDifficulty: commands.NewFlagHighDifficultyCommandHandler(c.orderUoWFactory()),
		ChangePriority:     commands.NewChangePriorityCommandHandler(c.orderUoWFactory()),
		CancelOrder:        commands.NewCancelOrderCommandHandler(c.orderJobUoWFactory(), c.notifier, c.logger),
		RefundOrder:        commands.NewRefundOrderCommandHandler(c.orderUoWFactory()),
		BlockOrder:         commands.NewBlockOrderCommandHandler(c.orderUoWFactory()),

		GetOrder:             queries.NewGetOrderQueryHandler(c.gormDB),
		GetActiveOrders:      queries.NewGetActiveOrdersQueryHandler(c.gormDB),
		GetScreeningQueue:    queries.NewGetScreeningQueueQueryHandler(c.gormDB),
		GetAssignmentHistory: queries.NewGetAssignmentHistoryQueryHandler(c.gormDB),
	}
}

// Storage exposes the object storage for the HTTP presigned URL endpoints.
func (c *CompositionRoot) Storage() ports.ObjectStorage {
	return c.storage
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	system, err := auth.NewPrincipal(kernel.NewUUID(), auth.RoleOM)
	if err != nil {
		return nil, err
	}

	approvalTimeout := jobs.NewApprovalTimeoutJob(
		c.orderUoWFactory(),
		commands.NewRejectApprovalCommandHandler(c.orderJobUoWFactory(), c.notifier, c.logger),
		system,
		time.Duration(c.config.ApprovalTimeoutMinutes)*time.Minute,
		c.logger,
	)

	dispatcher := jobs.NewQueueDispatcherJob(c.jobQueue, c.QueueHandlers(), c.logger)

	return jobs.NewJobManager(approvalTimeout, dispatcher), nil
}

// QueueHandlers binds queue names to their consumers. The ASR trigger is
// delivered to the speech recognition pipeline; until that service consumes
// the queue directly, dispatching is a logged no-op kept for visibility.
func (c *CompositionRoot) QueueHandlers() map[string]queue.Handler {
	return map[string]queue.Handler{
		"asr-trigger": func(ctx context.Context, payload []byte) error {
			c.logger.InfoContext(ctx, "ASR trigger dispatched", "payload", string(payload))
			return nil
		},
	}
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderJobUoWFactory func() commands.OrderJobUoW

func (f FuncOrderJobUoWFactory) Create() commands.OrderJobUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncDeliverOrderUoWFactory func() commands.DeliverOrderUoW

func (f FuncDeliverOrderUoWFactory) Create() commands.DeliverOrderUoW {
	return f()
}

// Package http exposes the order lifecycle over a JSON API. Every endpoint
// returns the same envelope and relies on the gateway-provided identity
// headers; authorization decisions stay in the command handlers.
package http

import (
	"time"

	"transcription/internal/core/application/usecases/commands"
	"transcription/internal/core/application/usecases/queries"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/core/domain/model/order"
	"transcription/internal/core/ports"
	"transcription/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	SubmitForScreening commands.SubmitForScreeningCommandHandler
	AcceptScreenFile   commands.AcceptScreenFileCommandHandler
	ReportFile         commands.ReportFileCommandHandler
	AssignQC           commands.AssignQCCommandHandler
	SubmitQC           commands.SubmitQCCommandHandler
	ApproveSubmission  commands.ApproveSubmissionCommandHandler
	RejectApproval     commands.RejectApprovalCommandHandler
	AssignFinalizer    commands.AssignFinalizerCommandHandler
	SubmitFinalize     commands.SubmitFinalizeCommandHandler
	MarkFormatted      commands.MarkFormattedCommandHandler
	DeliverOrder       commands.DeliverOrderCommandHandler
	RejectOrder        commands.RejectOrderCommandHandler
	UnassignJob        commands.UnassignJobCommandHandler
	RequestReReview    commands.RequestReReviewCommandHandler
	ChangeDeliveryDate commands.ChangeDeliveryDateCommandHandler
	FlagHighDifficulty commands.FlagHighDifficultyCommandHandler
	ChangePriority     commands.ChangePriorityCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	RefundOrder        commands.RefundOrderCommandHandler
	BlockOrder         commands.BlockOrderCommandHandler

	GetOrder             queries.GetOrderQueryHandler
	GetActiveOrders      queries.GetActiveOrdersQueryHandler
	GetScreeningQueue    queries.GetScreeningQueueQueryHandler
	GetAssignmentHistory queries.GetAssignmentHistoryQueryHandler
}

// Server wires the use case handlers to echo routes.
type Server struct {
	handlers Handlers
	storage  ports.ObjectStorage
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// WithStorage attaches the object storage used by the presigned URL
// endpoints.
func (s *Server) WithStorage(storage ports.ObjectStorage) *Server {
	s.storage = storage
	return s
}

// Register mounts all routes on the echo instance.
func (s *Server) Register(e *echo.Echo) {
	e.Validator = NewCustomValidator()

	e.GET("/health", func(c echo.Context) error {
		return ok(c, "OK")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", MetricsMiddleware(), PrincipalMiddleware())

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/screening", s.GetScreeningQueue)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/submit", s.SubmitForScreening)
	api.POST("/orders/:id/screening/accept", s.AcceptScreening)
	api.POST("/orders/:id/screening/report", s.ReportFile)
	api.POST("/orders/:id/qc/assign", s.AssignQC)
	api.POST("/orders/:id/qc/submit", s.SubmitQC)
	api.POST("/orders/:id/approval/accept", s.ApproveSubmission)
	api.POST("/orders/:id/approval/reject", s.RejectApproval)
	api.POST("/orders/:id/finalize/assign", s.AssignFinalizer)
	api.POST("/orders/:id/finalize/submit", s.SubmitFinalize)
	api.POST("/orders/:id/formatted", s.MarkFormatted)
	api.POST("/orders/:id/deliver", s.DeliverOrder)
	api.POST("/orders/:id/reject", s.RejectOrder)
	api.POST("/orders/:id/re-review", s.RequestReReview)
	api.POST("/orders/:id/postpone", s.ChangeDeliveryDate)
	api.POST("/orders/:id/difficulty", s.FlagHighDifficulty)
	api.POST("/orders/:id/priority", s.ChangePriority)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/refund", s.RefundOrder)
	api.POST("/orders/:id/block", s.BlockOrder)
	api.POST("/orders/:id/unblock", s.UnblockOrder)
	api.POST("/assignments/:id/unassign", s.UnassignJob)
	api.GET("/transcribers/:id/assignments", s.GetAssignmentHistory)

	if s.storage != nil {
		api.GET("/files/:id/download-url", s.GetDownloadURL)
		api.POST("/files/:id/upload-url", s.GetUploadURL)
	}
}

func orderIDParam(c echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	orderType, err := order.ParseType(req.OrderType)
	if err != nil {
		return fail(c, err)
	}

	deliveryTs, err := time.Parse(time.RFC3339, req.DeliveryTs)
	if err != nil {
		return fail(c, errs.NewValueIsInvalidErrorWithCause("deliveryTs", err))
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(principalFrom(c), orderID, req.FileID, orderType, deliveryTs)
	if err != nil {
		return fail(c, err)
	}

	if err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return okData(c, "order created", map[string]string{"orderId": orderID.String()})
}

// SubmitForScreening handles POST /api/v1/orders/:id/submit.
func (s *Server) SubmitForScreening(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	cmd, err := commands.NewSubmitForScreeningCommand(principalFrom(c), orderID)
	if err != nil {
		return fail(c, err)
	}

	if err := s.handlers.SubmitForScreening.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return ok(c, "order submitted for screening")
}

// AcceptScreening handles POST /api/v1/orders/:id/screening/accept.
func (s *Server) AcceptScreening(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	var req acceptScreeningRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	cmd, err := commands.NewAcceptScreenFileCommand(principalFrom(c), orderID, req.PWER)
	if err != nil {
		return fail(c, err)
	}

	if err := s.handlers.AcceptScreenFile.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return ok(c, "file accepted")
}

// ReportFile handles POST /api/v1/orders/:id/screening/report.
func (s *Server) ReportFile(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	var req reportFileRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	option, err := order.ParseReportOption(req.Option)
	if err != nil {
		return fail(c, err)
	}

	mode := order.ReportModeManual
	if req.Auto {
		mode = order.ReportModeAuto
	}

	cmd, err := commands.NewReportFileCommand(principalFrom(c), orderID, order.Report{
		Option:  option,
		Mode:    mode,
		Comment: req.Comment,
	})
	if err != nil {
		return fail(c, err)
	}

	if err := s.handlers.ReportFile.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return ok(c, "file reported")
}

// AssignQC handles POST /api/v1/orders/:id/qc/assign.
func (s *Server) AssignQC(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	transcriberID, err := bindTranscriberID(c)
	if err != nil {
		return fail(c, err)
	}

	cmd, err := commands.NewAssignQCCommand(principalFrom(c), orderID, transcriberID)
	if err != nil {
		return fail(c, err)
	}

	if err := s.handlers.AssignQC.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return ok(c, "reviewer assigned")
}

// SubmitQC handles POST /api/v1/orders/:id/qc/submit.
func (s *Server) SubmitQC(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	cmd, err := commands.NewSubmitQCCommand(principalFrom(c), orderID)
	if err != nil {
		return fail(c, err)
	}

	if err := s.handlers.SubmitQC.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return ok(c, "review submitted for approval")
}

// ApproveSubmission handles POST /api/v1/orders/:id/approval/accept.
func (s *Server) ApproveSubmission(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	cmd, err := commands.NewApproveSubmissionCommand(principalFrom(c), orderID)
	if err != nil {
		return fail(c, err)
	}

	if err := s.handlers.ApproveSubmission.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return ok(c, "submission approved")
}

// RejectApproval handles POST /api/v1/orders/:id/approval/reject.
func (s *Server) RejectApproval(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	var req reasonRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewRejectApprovalCommand(principalFrom(c), orderID, req.Reason)
	if err != nil {
		return fail(c, err)
	}

	if err := s.handlers.RejectApproval.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return ok(c, "submission rejected")
}

// AssignFinalizer handles POST /api/v1/orders/:id/finalize/assign.
func (s *Server) AssignFinalizer(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	transcriberID, err := bindTranscriberID(c)
	if err != nil {
		return fail(c, err)
	}

	cmd, err := commands.NewAssignFinalizerCommand(principalFrom(c), orderID, transcriberID)
	if err != nil {
		return fail(c, err)
	}

	if err := s.handlers.AssignFinalizer.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return ok(c, "finalizer assigned")
}

// SubmitFinalize handles POST /api/v1/orders/:id/finalize/submit.
func (s *Server) SubmitFinalize(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	cmd, err := commands.NewSubmitFinalizeCommand(principalFrom(c), orderID)
	if err != nil {
		return fail(c, err)
	}

	if err := s.handlers.SubmitFinalize.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return ok(c, "finalization submitted")
}

// MarkFormatted handles POST /api/v1/orders/:id/formatted.
func (s *Server) MarkFormatted(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	cmd, err := commands.NewMarkFormattedCommand(principalFrom(c), orderID)
	if err != nil {
		return fail(c, err)
	}

	if err := s.handlers.MarkFormatted.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return ok(c, "order marked formatted")
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver.
func (s *Server) DeliverOrder(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	cmd, err := commands.NewDeliverOrderCommand(principalFrom(c), orderID)
	if err != nil {
		return fail(c, err)
	}

	if err := s.handlers.DeliverOrder.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return ok(c, "order delivered")
}

// RejectOrder handles POST /api/v1/orders/:id/reject.
func (s *Server) RejectOrder(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	var req reasonRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewRejectOrderCommand(principalFrom(c), orderID, req.Reason)
	if err != nil {
		return fail(c, err)
	}

	if err := s.handlers.RejectOrder.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return ok(c, "order rejected")
}

// UnassignJob handles POST /api/v1/assignments/:id/unassign.
func (s *Server) UnassignJob(c echo.Context) error {
	assignmentID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return fail(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req unassignJobRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	targetStatus, err := order.ParseStatus(req.TargetStatus)
	if err != nil {
		return fail(c, err)
	}

	cmd, err := commands.NewUnassignJobCommand(principalFrom(c), assignmentID, targetStatus, req.Reason)
	if err != nil {
		return fail(c, err)
	}

	if err := s.handlers.UnassignJob.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return ok(c, "job unassigned")
}

// RequestReReview handles POST /api/v1/orders/:id/re-review.
func (s *Server) RequestReReview(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	var req reReviewRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	cmd, err := commands.NewRequestReReviewCommand(principalFrom(c), orderID, req.Comment)
	if err != nil {
		return fail(c, err)
	}

	if err := s.handlers.RequestReReview.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return ok(c, "re-review requested")
}

// ChangeDeliveryDate handles POST /api/v1/orders/:id/postpone.
func (s *Server) ChangeDeliveryDate(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	var req postponeRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	cmd, err := commands.NewChangeDeliveryDateCommand(principalFrom(c), orderID, req.Days)
	if err != nil {
		return fail(c, err)
	}

	if err := s.handlers.ChangeDeliveryDate.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return ok(c, "delivery date postponed")
}

// FlagHighDifficulty handles POST /api/v1/orders/:id/difficulty.
func (s *Server) FlagHighDifficulty(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	var req difficultyRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	cmd, err := commands.NewFlagHighDifficultyCommand(principalFrom(c), orderID, req.Bonus)
	if err != nil {
		return fail(c, err)
	}

	if err := s.handlers.FlagHighDifficulty.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return ok(c, "order flagged high difficulty")
}

// ChangePriority handles POST /api/v1/orders/:id/priority.
func (s *Server) ChangePriority(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	var req priorityRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	cmd, err := commands.NewChangePriorityCommand(principalFrom(c), orderID, req.Priority)
	if err != nil {
		return fail(c, err)
	}

	if err := s.handlers.ChangePriority.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return ok(c, "priority raised")
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	var req reasonRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewCancelOrderCommand(principalFrom(c), orderID, req.Reason)
	if err != nil {
		return fail(c, err)
	}

	if err := s.handlers.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return ok(c, "order cancelled")
}

// RefundOrder handles POST /api/v1/orders/:id/refund.
func (s *Server) RefundOrder(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	cmd, err := commands.NewRefundOrderCommand(principalFrom(c), orderID)
	if err != nil {
		return fail(c, err)
	}

	if err := s.handlers.RefundOrder.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return ok(c, "order refunded")
}

// BlockOrder handles POST /api/v1/orders/:id/block.
func (s *Server) BlockOrder(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	cmd, err := commands.NewBlockOrderCommand(principalFrom(c), orderID)
	if err != nil {
		return fail(c, err)
	}

	if err := s.handlers.BlockOrder.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return ok(c, "order blocked")
}

// UnblockOrder handles POST /api/v1/orders/:id/unblock.
func (s *Server) UnblockOrder(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	cmd, err := commands.NewUnblockOrderCommand(principalFrom(c), orderID)
	if err != nil {
		return fail(c, err)
	}

	if err := s.handlers.BlockOrder.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	return ok(c, "order unblocked")
}

func bindTranscriberID(c echo.Context) (kernel.UUID, error) {
	var req assignRequest
	if err := c.Bind(&req); err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	if err := c.Validate(&req); err != nil {
		return kernel.UUID{}, err
	}

	id, err := kernel.UUIDFromString(req.TranscriberID)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("transcriberId", err)
	}
	return id, nil
}

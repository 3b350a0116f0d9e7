package http

import (
	"time"

	"transcription/internal/core/application/usecases/queries"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type orderView struct {
	ID             string           `json:"id"`
	FileID         string           `json:"fileId"`
	CustomerID     string           `json:"customerId"`
	OrderType      string           `json:"orderType"`
	Status         string           `json:"status"`
	Priority       int              `json:"priority"`
	PWER           int              `json:"pwer"`
	RateBonus      int              `json:"rateBonus"`
	DeliveryTs     time.Time        `json:"deliveryTs"`
	DeliveredTs    *time.Time       `json:"deliveredTs,omitempty"`
	ReReview       bool             `json:"reReview"`
	HighDifficulty bool             `json:"highDifficulty"`
	Assignments    []assignmentView `json:"assignments"`
}

type assignmentView struct {
	ID            string     `json:"id"`
	OrderID       string     `json:"orderId"`
	TranscriberID string     `json:"transcriberId"`
	JobType       string     `json:"jobType"`
	Status        string     `json:"status"`
	AcceptedTs    time.Time  `json:"acceptedTs"`
	CompletedTs   *time.Time `json:"completedTs,omitempty"`
	CancelledTs   *time.Time `json:"cancelledTs,omitempty"`
}

type activeOrderView struct {
	ID         string    `json:"id"`
	FileID     string    `json:"fileId"`
	Filename   string    `json:"filename"`
	OrderType  string    `json:"orderType"`
	Status     string    `json:"status"`
	Priority   int       `json:"priority"`
	DeliveryTs time.Time `json:"deliveryTs"`
}

type screeningView struct {
	ID          string    `json:"id"`
	FileID      string    `json:"fileId"`
	Filename    string    `json:"filename"`
	Duration    float64   `json:"duration"`
	CustomerID  string    `json:"customerId"`
	OrderType   string    `json:"orderType"`
	Priority    int       `json:"priority"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return fail(c, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return fail(c, err)
	}

	resp, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}

	view := orderView{
		ID:             resp.ID.String(),
		FileID:         resp.FileID,
		CustomerID:     resp.CustomerID.String(),
		OrderType:      resp.OrderType,
		Status:         resp.Status,
		Priority:       resp.Priority,
		PWER:           resp.PWER,
		RateBonus:      resp.RateBonus,
		DeliveryTs:     resp.DeliveryTs,
		DeliveredTs:    resp.DeliveredTs,
		ReReview:       resp.ReReview,
		HighDifficulty: resp.HighDifficulty,
		Assignments:    assignmentViews(resp.Assignments),
	}

	return okData(c, "OK", view)
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(c echo.Context) error {
	resp, err := s.handlers.GetActiveOrders.Handle(c.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return fail(c, err)
	}

	views := make([]activeOrderView, len(resp))
	for i, row := range resp {
		views[i] = activeOrderView{
			ID:         row.ID.String(),
			FileID:     row.FileID,
			Filename:   row.Filename,
			OrderType:  row.OrderType,
			Status:     row.Status,
			Priority:   row.Priority,
			DeliveryTs: row.DeliveryTs,
		}
	}

	return okData(c, "OK", views)
}

// GetScreeningQueue handles GET /api/v1/orders/screening.
func (s *Server) GetScreeningQueue(c echo.Context) error {
	resp, err := s.handlers.GetScreeningQueue.Handle(c.Request().Context(), queries.NewGetScreeningQueueQuery())
	if err != nil {
		return fail(c, err)
	}

	views := make([]screeningView, len(resp))
	for i, row := range resp {
		views[i] = screeningView{
			ID:          row.ID.String(),
			FileID:      row.FileID,
			Filename:    row.Filename,
			Duration:    row.Duration,
			CustomerID:  row.CustomerID.String(),
			OrderType:   row.OrderType,
			Priority:    row.Priority,
			SubmittedAt: row.UpdatedAt,
		}
	}

	return okData(c, "OK", views)
}

// GetAssignmentHistory handles GET /api/v1/transcribers/:id/assignments.
func (s *Server) GetAssignmentHistory(c echo.Context) error {
	transcriberID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return fail(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetAssignmentHistoryQuery(transcriberID)
	if err != nil {
		return fail(c, err)
	}

	resp, err := s.handlers.GetAssignmentHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}

	return okData(c, "OK", assignmentViews(resp))
}

func assignmentViews(models []queries.AssignmentReadModel) []assignmentView {
	views := make([]assignmentView, len(models))
	for i, a := range models {
		views[i] = assignmentView{
			ID:            a.ID.String(),
			OrderID:       a.OrderID.String(),
			TranscriberID: a.TranscriberID.String(),
			JobType:       a.JobType,
			Status:        a.Status,
			AcceptedTs:    a.AcceptedTs,
			CompletedTs:   a.CompletedTs,
			CancelledTs:   a.CancelledTs,
		}
	}
	return views
}

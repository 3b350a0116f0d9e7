package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "transcription/internal/adapters/in/http"
	"transcription/internal/core/application/usecases/commands"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/core/domain/model/order"
	"transcription/internal/core/ports"
	"transcription/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOrderRepo serves a single order from memory. A non-nil getErr is
// returned from Get to simulate infrastructure failures.
type stubOrderRepo struct {
	ord    *order.Order
	getErr error
}

func (r *stubOrderRepo) Add(_ context.Context, aggregate *order.Order) error {
	r.ord = aggregate
	return nil
}

func (r *stubOrderRepo) Update(_ context.Context, aggregate *order.Order) error {
	r.ord = aggregate
	return nil
}

func (r *stubOrderRepo) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.ord == nil || !r.ord.ID().IsEqual(id) {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return r.ord, nil
}

func (r *stubOrderRepo) GetActiveByFileID(_ context.Context, fileID string) (*order.Order, error) {
	return nil, errs.NewObjectNotFoundError("order", fileID)
}

func (r *stubOrderRepo) GetAllActive(context.Context) ([]*order.Order, error) {
	return nil, nil
}

func (r *stubOrderRepo) GetAllAwaitingScreening(context.Context) ([]*order.Order, error) {
	return nil, nil
}

func (r *stubOrderRepo) GetAllOverdueApprovals(context.Context, time.Time) ([]*order.Order, error) {
	return nil, nil
}

type stubOrderUoW struct {
	repo *stubOrderRepo
}

func (u *stubOrderUoW) Begin(context.Context) error            { return nil }
func (u *stubOrderUoW) Commit(context.Context) error           { return nil }
func (u *stubOrderUoW) Rollback(context.Context) error         { return nil }
func (u *stubOrderUoW) OrderRepository() ports.OrderRepository { return u.repo }

type stubOrderUoWFactory struct {
	uow *stubOrderUoW
}

func (f *stubOrderUoWFactory) Create() commands.OrderUoW { return f.uow }

func newTestServer(repo *stubOrderRepo) *echo.Echo {
	e := echo.New()
	server := httpadapter.NewServer(httpadapter.Handlers{
		SubmitForScreening: commands.NewSubmitForScreeningCommandHandler(
			&stubOrderUoWFactory{uow: &stubOrderUoW{repo: repo}},
		),
	})
	server.Register(e)
	return e
}

func newPendingOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()

	ord, err := order.NewOrder(
		kernel.NewUUID(),
		"f-100",
		customerID,
		order.TypeTranscription,
		time.Now().UTC().Add(72*time.Hour),
	)
	require.NoError(t, err)
	return ord
}

func submitRequest(orderID, userID, role string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/"+orderID+"/submit", strings.NewReader("{}"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	if role != "" {
		req.Header.Set("X-User-Role", role)
	}
	return req
}

func TestServer_SubmitForScreening_Success(t *testing.T) {
	customerID := kernel.NewUUID()
	ord := newPendingOrder(t, customerID)
	repo := &stubOrderRepo{ord: ord}
	e := newTestServer(repo)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, submitRequest(ord.ID().String(), customerID.String(), "Customer"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Equal(t, order.SubmittedForScreening, repo.ord.Status())
}

func TestServer_SubmitForScreening_MissingIdentityHeaders(t *testing.T) {
	customerID := kernel.NewUUID()
	ord := newPendingOrder(t, customerID)
	e := newTestServer(&stubOrderRepo{ord: ord})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, submitRequest(ord.ID().String(), "", ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestServer_SubmitForScreening_UnknownRole(t *testing.T) {
	customerID := kernel.NewUUID()
	ord := newPendingOrder(t, customerID)
	e := newTestServer(&stubOrderRepo{ord: ord})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, submitRequest(ord.ID().String(), customerID.String(), "Intruder"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_SubmitForScreening_NotOwner(t *testing.T) {
	ord := newPendingOrder(t, kernel.NewUUID())
	e := newTestServer(&stubOrderRepo{ord: ord})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, submitRequest(ord.ID().String(), kernel.NewUUID().String(), "Customer"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestServer_SubmitForScreening_WrongStatus(t *testing.T) {
	customerID := kernel.NewUUID()
	ord := newPendingOrder(t, customerID)
	require.NoError(t, ord.SubmitForScreening())
	e := newTestServer(&stubOrderRepo{ord: ord})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, submitRequest(ord.ID().String(), customerID.String(), "Customer"))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestServer_SubmitForScreening_OrderNotFound(t *testing.T) {
	customerID := kernel.NewUUID()
	e := newTestServer(&stubOrderRepo{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, submitRequest(kernel.NewUUID().String(), customerID.String(), "Customer"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_SubmitForScreening_MalformedOrderID(t *testing.T) {
	customerID := kernel.NewUUID()
	e := newTestServer(&stubOrderRepo{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, submitRequest("not-a-uuid", customerID.String(), "Customer"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_SubmitForScreening_InternalErrorHidden(t *testing.T) {
	customerID := kernel.NewUUID()
	repo := &stubOrderRepo{getErr: errors.New(`pq: relation "orders" does not exist`)}
	e := newTestServer(repo)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, submitRequest(kernel.NewUUID().String(), customerID.String(), "Customer"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "internal error")
	assert.NotContains(t, rec.Body.String(), "relation", "database details must not reach the client")
}

func TestServer_Health(t *testing.T) {
	e := newTestServer(&stubOrderRepo{})

	rec := httptest.NewRecorder()
	// health endpoint does not require identity headers
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

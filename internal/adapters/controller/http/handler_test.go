package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkwatch/parkwatch/internal/domain/entity"
	"github.com/parkwatch/parkwatch/internal/domain/service"
	"github.com/parkwatch/parkwatch/pkg/logger"
)

type stubTicketStorage struct {
	created *entity.Ticket
}

func (s *stubTicketStorage) Create(_ context.Context, ticket *entity.Ticket) (*entity.Ticket, error) {
	ticket.ID = "t-100"
	s.created = ticket
	return ticket, nil
}

func (s *stubTicketStorage) Delete(_ context.Context, _ string) error { return nil }

func (s *stubTicketStorage) GetSince(_ context.Context, _ time.Time) ([]entity.Ticket, error) {
	return []entity.Ticket{}, nil
}

type stubDispatcher struct {
	called chan service.Event
}

func (d *stubDispatcher) Dispatch(_ context.Context, event service.Event) (*service.DispatchSummary, error) {
	d.called <- event
	return &service.DispatchSummary{}, nil
}

type stubSessionStorage struct{}

func (stubSessionStorage) Create(_ context.Context, s *entity.ParkingSession) (*entity.ParkingSession, error) {
	s.ID = 1
	return s, nil
}
func (stubSessionStorage) EndByUserID(_ context.Context, _ int64) error { return nil }
func (stubSessionStorage) GetByUserID(_ context.Context, _ int64) (*entity.ParkingSession, error) {
	return &entity.ParkingSession{ID: 1}, nil
}
func (stubSessionStorage) GetAllActive(_ context.Context) ([]entity.ParkingSession, error) {
	return nil, nil
}

type stubBookmarkStorage struct{}

func (stubBookmarkStorage) Create(_ context.Context, b *entity.Bookmark) (*entity.Bookmark, error) {
	b.ID = 1
	return b, nil
}
func (stubBookmarkStorage) Delete(_ context.Context, _ uint, _ int64) error { return nil }
func (stubBookmarkStorage) GetByUserID(_ context.Context, _ int64) ([]entity.Bookmark, error) {
	return []entity.Bookmark{}, nil
}
func (stubBookmarkStorage) GetAll(_ context.Context) ([]entity.Bookmark, error) { return nil, nil }

type stubUserStorage struct{}

func (stubUserStorage) Upsert(_ context.Context, u *entity.User) (*entity.User, error) { return u, nil }
func (stubUserStorage) Get(_ context.Context, id int64) (*entity.User, error) {
	return &entity.User{ID: id}, nil
}
func (stubUserStorage) GetByIDs(_ context.Context, _ []int64) ([]entity.User, error) { return nil, nil }

type stubCache struct{}

func (stubCache) GetMany(_ context.Context, _ []int64) (map[int64]entity.User, error) {
	return nil, nil
}
func (stubCache) Set(_ context.Context, _ entity.User) error { return nil }
func (stubCache) Clear(_ context.Context, _ int64) error     { return nil }

func newTestServer(t *testing.T) (*httptest.Server, *stubTicketStorage, *stubDispatcher) {
	t.Helper()
	log := logger.Nop()

	tickets := &stubTicketStorage{}
	notifier := &stubDispatcher{called: make(chan service.Event, 1)}

	handler := NewHandler(
		service.NewTicketService(tickets, notifier, log),
		service.NewParkingSessionService(stubSessionStorage{}),
		service.NewBookmarkService(stubBookmarkStorage{}),
		service.NewUserService(stubUserStorage{}, stubCache{}, log),
		log,
	)

	srv := httptest.NewServer(NewRouter(handler))
	t.Cleanup(srv.Close)
	return srv, tickets, notifier
}

func postJSON(t *testing.T, url string, body interface{}, headers map[string]string) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestReportTicket_CreatedAndDispatched(t *testing.T) {
	srv, tickets, notifier := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/tickets", map[string]interface{}{
		"latitude":  40.7128,
		"longitude": -74.0060,
		"kind":      "enforcement",
	}, map[string]string{"X-User-ID": "7"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, tickets.created)
	assert.Equal(t, entity.ReportKindEnforcement, tickets.created.Kind)
	require.NotNil(t, tickets.created.ReporterID)
	assert.Equal(t, int64(7), *tickets.created.ReporterID)

	select {
	case event := <-notifier.called:
		assert.Equal(t, "t-100", event.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("fan-out was never triggered")
	}
}

func TestReportTicket_AnonymousAllowed(t *testing.T) {
	srv, tickets, notifier := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/tickets", map[string]interface{}{
		"latitude":  40.7128,
		"longitude": -74.0060,
		"kind":      "ticket",
	}, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, tickets.created)
	assert.Nil(t, tickets.created.ReporterID)
	<-notifier.called
}

func TestReportTicket_RejectsBadCoordinates(t *testing.T) {
	srv, tickets, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/tickets", map[string]interface{}{
		"latitude":  91.0,
		"longitude": -74.0060,
		"kind":      "ticket",
	}, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, tickets.created)
}

func TestReportTicket_RejectsUnknownKind(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/tickets", map[string]interface{}{
		"latitude":  40.0,
		"longitude": -74.0,
		"kind":      "meteor",
	}, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateSettings_RequiresAuth(t *testing.T) {
	srv, _, _ := newTestServer(t)

	raw, _ := json.Marshal(map[string]interface{}{"parkingNotify": true})
	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/settings/notifications", bytes.NewReader(raw))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestStartParkingSession(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/parking-sessions", map[string]interface{}{
		"latitude":  40.0,
		"longitude": -74.0,
	}, map[string]string{"X-User-ID": "7"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

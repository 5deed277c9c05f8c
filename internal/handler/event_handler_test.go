package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalsalud/agenda-api/internal/models"
	"github.com/vitalsalud/agenda-api/internal/service"
	"github.com/vitalsalud/agenda-api/pkg/response"
)

type eventRepoStub struct {
	events     []models.Event
	total      int
	byID       *models.Event
	lastFilter models.EventFilter
	listErr    error
	getErr     error
}

func (s *eventRepoStub) List(ctx context.Context, filter models.EventFilter) ([]models.Event, int, error) {
	s.lastFilter = filter
	if s.listErr != nil {
		return nil, 0, s.listErr
	}
	return s.events, s.total, nil
}

func (s *eventRepoStub) GetByID(ctx context.Context, id string) (*models.Event, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.byID, nil
}

func (s *eventRepoStub) Create(ctx context.Context, event *models.Event) error {
	event.ID = "evt-created"
	return nil
}

func (s *eventRepoStub) Update(ctx context.Context, event *models.Event) error { return nil }

func (s *eventRepoStub) SetActive(ctx context.Context, ids []string, active bool) (int64, error) {
	return int64(len(ids)), nil
}

func (s *eventRepoStub) DeleteBySchedule(ctx context.Context, scheduleID string) (int64, error) {
	return 2, nil
}

func newEventHandler(repo *eventRepoStub) *EventHandler {
	svc := service.NewEventService(repo, nil, nil, time.Minute, nil, nil)
	return NewEventHandler(svc)
}

func TestEventHandlerListParsesQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &eventRepoStub{events: []models.Event{{ID: "evt-1"}}, total: 1}
	handler := newEventHandler(repo)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet,
		"/events/filter?type=TURNO&staffId=staff-1&status=CONFIRMED&startDate=2025-02-22&endDate=2025-04-07&disablePagination=true", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.EventTypeTurno, repo.lastFilter.Type)
	assert.Equal(t, "staff-1", repo.lastFilter.StaffID)
	assert.Equal(t, models.EventStatusConfirmed, repo.lastFilter.Status)
	assert.Equal(t, "2025-02-22", repo.lastFilter.StartDate)
	assert.True(t, repo.lastFilter.DisablePagination)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Nil(t, envelope.Error)
}

func TestEventHandlerListMissingType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newEventHandler(&eventRepoStub{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/events/filter", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEventHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newEventHandler(&eventRepoStub{})

	payload := `{
		"title": "Consulta",
		"type": "CITA",
		"start": "2025-03-10T09:00:00Z",
		"end": "2025-03-10T09:30:00Z",
		"staffId": "staff-1",
		"branchId": "branch-1"
	}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestEventHandlerCreateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newEventHandler(&eventRepoStub{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(`{"title":`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEventHandlerBulkDeactivate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newEventHandler(&eventRepoStub{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodDelete, "/events/remove/all",
		bytes.NewBufferString(`{"ids":["evt-1","evt-2"]}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.BulkDeactivate(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"affected":2`)
}

func TestEventHandlerDeleteBySchedule(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newEventHandler(&eventRepoStub{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodDelete, "/events/by-schedule/sched-1", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "scheduleId", Value: "sched-1"}}

	handler.DeleteBySchedule(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"affected":2`)
}

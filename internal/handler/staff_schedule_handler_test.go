package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalsalud/agenda-api/internal/models"
	"github.com/vitalsalud/agenda-api/internal/service"
)

type scheduleRepoStub struct {
	schedules  []models.StaffSchedule
	byID       *models.StaffSchedule
	lastFilter models.StaffScheduleFilter
	activeID   string
	activeTo   bool
}

func (s *scheduleRepoStub) List(ctx context.Context, filter models.StaffScheduleFilter) ([]models.StaffSchedule, int, error) {
	s.lastFilter = filter
	return s.schedules, len(s.schedules), nil
}

func (s *scheduleRepoStub) GetByID(ctx context.Context, id string) (*models.StaffSchedule, error) {
	return s.byID, nil
}

func (s *scheduleRepoStub) Create(ctx context.Context, schedule *models.StaffSchedule) error {
	schedule.ID = "sched-created"
	return nil
}

func (s *scheduleRepoStub) Update(ctx context.Context, schedule *models.StaffSchedule) error {
	return nil
}

func (s *scheduleRepoStub) SetActive(ctx context.Context, id string, active bool) error {
	s.activeID = id
	s.activeTo = active
	return nil
}

func newScheduleHandler(repo *scheduleRepoStub) *StaffScheduleHandler {
	svc := service.NewStaffScheduleService(repo, nil, nil, nil)
	return NewStaffScheduleHandler(svc)
}

func TestStaffScheduleHandlerListParsesQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &scheduleRepoStub{schedules: []models.StaffSchedule{{ID: "sched-1"}}}
	handler := newScheduleHandler(repo)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/staff-schedules?staffId=staff-1&active=true", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "staff-1", repo.lastFilter.StaffID)
	require.NotNil(t, repo.lastFilter.Active)
	assert.True(t, *repo.lastFilter.Active)
}

func TestStaffScheduleHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newScheduleHandler(&scheduleRepoStub{})

	payload := `{
		"staffId": "staff-1",
		"branchId": "branch-1",
		"title": "Turno mañana",
		"startTime": "08:00",
		"endTime": "16:00",
		"startDate": "2025-03-03T00:00:00Z",
		"frequency": "WEEKLY",
		"interval": 1,
		"daysOfWeek": ["MO", "WE", "FR"]
	}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/staff-schedules", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "sched-created")
}

func TestStaffScheduleHandlerCreateInvalidRecurrence(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newScheduleHandler(&scheduleRepoStub{})

	// Weekly with no days of week.
	payload := `{
		"staffId": "staff-1",
		"branchId": "branch-1",
		"title": "Turno mañana",
		"startTime": "08:00",
		"endTime": "16:00",
		"startDate": "2025-03-03T00:00:00Z",
		"frequency": "WEEKLY",
		"interval": 1
	}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/staff-schedules", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStaffScheduleHandlerDeactivate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &scheduleRepoStub{byID: &models.StaffSchedule{ID: "sched-1"}}
	handler := newScheduleHandler(repo)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodDelete, "/staff-schedules/sched-1", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "sched-1"}}

	handler.Deactivate(c)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "sched-1", repo.activeID)
	assert.False(t, repo.activeTo)
}

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalsalud/agenda-api/internal/models"
)

type mockScheduleReader struct {
	schedule *models.StaffSchedule
	err      error
}

func (m *mockScheduleReader) GetByID(ctx context.Context, id string) (*models.StaffSchedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.schedule, nil
}

type mockEventWriter struct {
	mu             sync.Mutex
	created        []models.Event
	clearedFor     string
	bulkCreateErr  error
	deleteGenCalls int
}

func (m *mockEventWriter) BulkCreate(ctx context.Context, events []models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.bulkCreateErr != nil {
		return m.bulkCreateErr
	}
	m.created = events
	return nil
}

func (m *mockEventWriter) DeleteGenerated(ctx context.Context, scheduleID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteGenCalls++
	m.clearedFor = scheduleID
	return 0, nil
}

func (m *mockEventWriter) cleared() (string, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clearedFor, m.deleteGenCalls
}

func weeklySchedule() *models.StaffSchedule {
	until := time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC)
	return &models.StaffSchedule{
		ID:         "sched-1",
		StaffID:    "staff-1",
		BranchID:   "branch-1",
		Title:      "Turno mañana",
		Color:      "#0ea5e9",
		StartTime:  "08:00",
		EndTime:    "16:00",
		StartDate:  time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
		Frequency:  "WEEKLY",
		Interval:   1,
		Until:      &until,
		DaysOfWeek: []string{"MO", "WE"},
	}
}

func TestGeneratorServiceGenerate(t *testing.T) {
	schedule := weeklySchedule()
	schedule.IsActive = true
	reader := &mockScheduleReader{schedule: schedule}
	writer := &mockEventWriter{}
	cache := &memoryCache{}
	svc := NewGeneratorService(reader, writer, cache, GeneratorConfig{Horizon: 365 * 24 * time.Hour}, nil)

	count, err := svc.Generate(context.Background(), "sched-1")
	require.NoError(t, err)

	// Mondays and Wednesdays from 2025-03-03 through 2025-03-16.
	assert.Equal(t, 4, count)
	require.Len(t, writer.created, 4)
	assert.Equal(t, "sched-1", writer.clearedFor)
	assert.Equal(t, 1, writer.deleteGenCalls)

	first := writer.created[0]
	assert.Equal(t, models.EventTypeTurno, first.Type)
	assert.Equal(t, models.EventStatusConfirmed, first.Status)
	assert.Equal(t, "2025-03-03", first.Start.Format("2006-01-02"))
	assert.Equal(t, 8, first.Start.Hour())
	assert.Equal(t, 8*time.Hour, first.End.Sub(first.Start))
	require.NotNil(t, first.StaffScheduleID)
	assert.Equal(t, "sched-1", *first.StaffScheduleID)
	assert.True(t, first.IsActive)

	require.Len(t, cache.invalidated, 1)
	assert.Equal(t, "events:q:*", cache.invalidated[0])
}

func TestGeneratorServiceGenerateOvernightShift(t *testing.T) {
	schedule := weeklySchedule()
	schedule.IsActive = true
	schedule.StartTime = "22:00"
	schedule.EndTime = "06:00"
	reader := &mockScheduleReader{schedule: schedule}
	writer := &mockEventWriter{}
	svc := NewGeneratorService(reader, writer, nil, GeneratorConfig{Horizon: 365 * 24 * time.Hour}, nil)

	_, err := svc.Generate(context.Background(), "sched-1")
	require.NoError(t, err)
	require.NotEmpty(t, writer.created)
	assert.Equal(t, 8*time.Hour, writer.created[0].End.Sub(writer.created[0].Start))
}

func TestGeneratorServiceRejectsInactiveSchedule(t *testing.T) {
	schedule := weeklySchedule()
	schedule.IsActive = false
	svc := NewGeneratorService(&mockScheduleReader{schedule: schedule}, &mockEventWriter{}, nil, GeneratorConfig{}, nil)

	_, err := svc.Generate(context.Background(), "sched-1")
	assert.Error(t, err)
}

func TestGeneratorServiceQueueLifecycle(t *testing.T) {
	schedule := weeklySchedule()
	schedule.IsActive = true
	reader := &mockScheduleReader{schedule: schedule}
	writer := &mockEventWriter{}
	svc := NewGeneratorService(reader, writer, nil, GeneratorConfig{Workers: 1}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)

	require.NoError(t, svc.EnqueueGenerate("sched-1"))

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, calls := writer.cleared(); calls > 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	svc.Stop()

	clearedFor, _ := writer.cleared()
	assert.Equal(t, "sched-1", clearedFor)
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalsalud/agenda-api/internal/calendar"
	"github.com/vitalsalud/agenda-api/internal/models"
)

type mockEventLister struct {
	events     []models.Event
	err        error
	lastFilter models.EventFilter
	calls      int
}

func (m *mockEventLister) List(ctx context.Context, filter models.EventFilter) ([]models.Event, *models.Pagination, error) {
	m.calls++
	m.lastFilter = filter
	if m.err != nil {
		return nil, nil, m.err
	}
	return m.events, nil, nil
}

func newCalendarService(lister *mockEventLister) *CalendarService {
	resolver := calendar.NewResolver(calendar.ShiftCalendarPolicy())
	return NewCalendarService(resolver, lister, 128, 3, nil)
}

func TestCalendarServiceMonthView(t *testing.T) {
	start := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	lister := &mockEventLister{events: []models.Event{
		{ID: "evt-1", Start: start, End: start.Add(time.Hour)},
	}}
	svc := newCalendarService(lister)

	view, err := svc.View(context.Background(), CalendarViewRequest{
		Mode:   calendar.ModeMonth,
		Cursor: time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
		Filter: models.EventFilter{Type: models.EventTypeTurno},
	})
	require.NoError(t, err)
	require.NotNil(t, view.Month)
	assert.Nil(t, view.Day)
	assert.Nil(t, view.Week)
	assert.Equal(t, "mes", view.Mode)
	assert.Equal(t, "2025-02-22", view.StartDate)
	assert.Equal(t, "2025-04-07", view.EndDate)

	// The fetch went through the resolver: padded range, forced status,
	// pagination off.
	assert.Equal(t, "2025-02-22", lister.lastFilter.StartDate)
	assert.Equal(t, models.EventStatusConfirmed, lister.lastFilter.Status)
	assert.True(t, lister.lastFilter.DisablePagination)
}

func TestCalendarServiceDayAndWeekViews(t *testing.T) {
	lister := &mockEventLister{}
	svc := newCalendarService(lister)
	cursor := time.Date(2025, time.March, 13, 0, 0, 0, 0, time.UTC)

	view, err := svc.View(context.Background(), CalendarViewRequest{
		Mode:   calendar.ModeDay,
		Cursor: cursor,
		Filter: models.EventFilter{Type: models.EventTypeCita},
	})
	require.NoError(t, err)
	require.NotNil(t, view.Day)
	assert.Equal(t, "2025-03-13", view.Day.Date)

	view, err = svc.View(context.Background(), CalendarViewRequest{
		Mode:   calendar.ModeWeek,
		Cursor: cursor,
		Filter: models.EventFilter{Type: models.EventTypeCita},
	})
	require.NoError(t, err)
	require.NotNil(t, view.Week)
	assert.Equal(t, "2025-03-10", view.Week.Start)
	assert.Len(t, view.Week.Days, 7)
}

func TestCalendarServiceDegradesOnFetchError(t *testing.T) {
	lister := &mockEventLister{err: errors.New("db down")}
	svc := newCalendarService(lister)

	view, err := svc.View(context.Background(), CalendarViewRequest{
		Mode:   calendar.ModeMonth,
		Cursor: time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
		Filter: models.EventFilter{Type: models.EventTypeTurno},
	})
	require.NoError(t, err)
	require.NotNil(t, view.Month)
	for _, week := range view.Month.Weeks {
		for _, cell := range week {
			assert.Empty(t, cell.Events)
		}
	}
}

func TestCalendarServiceRejectsUnknownMode(t *testing.T) {
	svc := newCalendarService(&mockEventLister{})

	_, err := svc.View(context.Background(), CalendarViewRequest{
		Mode:   calendar.Mode("anual"),
		Filter: models.EventFilter{Type: models.EventTypeTurno},
	})
	assert.Error(t, err)
}

func TestCalendarServiceDefaultsCursorToNow(t *testing.T) {
	lister := &mockEventLister{}
	svc := newCalendarService(lister)
	svc.now = func() time.Time {
		return time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	}

	view, err := svc.View(context.Background(), CalendarViewRequest{
		Mode:   calendar.ModeMonth,
		Filter: models.EventFilter{Type: models.EventTypeTurno},
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-15", view.Cursor)
	assert.Equal(t, "2025-02-22", view.StartDate)
}

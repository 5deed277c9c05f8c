package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vitalsalud/agenda-api/internal/calendar"
	"github.com/vitalsalud/agenda-api/internal/dto"
	"github.com/vitalsalud/agenda-api/internal/models"
	appErrors "github.com/vitalsalud/agenda-api/pkg/errors"
)

type calendarEventLister interface {
	List(ctx context.Context, filter models.EventFilter) ([]models.Event, *models.Pagination, error)
}

// CalendarService composes the filter resolver, the cached event
// layer and the grid builders into ready-to-render view models.
type CalendarService struct {
	resolver      *calendar.Resolver
	events        calendarEventLister
	pixelsPerHour int
	maxPerCell    int
	logger        *zap.Logger
	now           func() time.Time
}

// NewCalendarService constructs the service.
func NewCalendarService(resolver *calendar.Resolver, events calendarEventLister, pixelsPerHour, maxPerCell int, logger *zap.Logger) *CalendarService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if pixelsPerHour <= 0 {
		pixelsPerHour = calendar.DefaultPixelsPerHour
	}
	if maxPerCell <= 0 {
		maxPerCell = 3
	}
	return &CalendarService{
		resolver:      resolver,
		events:        events,
		pixelsPerHour: pixelsPerHour,
		maxPerCell:    maxPerCell,
		logger:        logger,
		now:           time.Now,
	}
}

// CalendarViewRequest selects what to render.
type CalendarViewRequest struct {
	Mode   calendar.Mode
	Cursor time.Time
	Filter models.EventFilter
}

// View renders the calendar for the requested mode and cursor. A
// failed event fetch degrades to an empty grid with a logged warning
// rather than an error: the calendar always renders.
func (s *CalendarService) View(ctx context.Context, req CalendarViewRequest) (*dto.CalendarView, error) {
	if !req.Mode.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown calendar mode")
	}
	if req.Cursor.IsZero() {
		req.Cursor = s.now()
	}

	filter := s.resolver.Normalize(req.Filter, req.Cursor, req.Mode)
	filter.DisablePagination = true

	events, _, err := s.events.List(ctx, filter)
	if err != nil {
		s.logger.Warn("event fetch failed, rendering empty calendar",
			zap.String("filter", filter.QueryKey()), zap.Error(err))
		events = nil
	}

	view := &dto.CalendarView{
		Mode:      string(req.Mode),
		Cursor:    req.Cursor.Format(calendar.DateLayout),
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		FilterKey: filter.QueryKey(),
	}

	switch req.Mode {
	case calendar.ModeDay:
		grid := calendar.BuildDayGrid(req.Cursor, events, s.pixelsPerHour)
		view.Day = &grid
	case calendar.ModeWeek:
		grid := calendar.BuildWeekGrid(req.Cursor, events, s.pixelsPerHour)
		view.Week = &grid
	default:
		grid := calendar.BuildMonthGrid(req.Cursor, events, s.maxPerCell, s.now())
		view.Month = &grid
	}

	return view, nil
}

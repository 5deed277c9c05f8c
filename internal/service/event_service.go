package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/vitalsalud/agenda-api/internal/models"
	"github.com/vitalsalud/agenda-api/internal/recurrence"
	appErrors "github.com/vitalsalud/agenda-api/pkg/errors"
)

// eventCachePattern matches every cached event query.
const (
	eventCachePrefix  = "events:q:"
	eventCachePattern = eventCachePrefix + "*"
)

type eventRepository interface {
	List(ctx context.Context, filter models.EventFilter) ([]models.Event, int, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	SetActive(ctx context.Context, ids []string, active bool) (int64, error)
	DeleteBySchedule(ctx context.Context, scheduleID string) (int64, error)
}

type eventCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Invalidate(ctx context.Context, pattern string) error
}

type generationEnqueuer interface {
	EnqueueGenerate(scheduleID string) error
}

// EventService serves and mutates calendar events, caching list
// queries by their normalized filter key.
type EventService struct {
	repo      eventRepository
	cache     eventCache
	generator generationEnqueuer
	cacheTTL  time.Duration
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEventService constructs the service.
func NewEventService(repo eventRepository, cache eventCache, generator generationEnqueuer, cacheTTL time.Duration, validate *validator.Validate, logger *zap.Logger) *EventService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = 15 * time.Minute
	}
	return &EventService{repo: repo, cache: cache, generator: generator, cacheTTL: cacheTTL, validator: validate, logger: logger}
}

type eventListPayload struct {
	Events []models.Event `json:"events"`
	Total  int            `json:"total"`
}

// List returns events matching the filter. Distinct staff, branch and
// date-range combinations cache independently under the filter's
// canonical query key.
func (s *EventService) List(ctx context.Context, filter models.EventFilter) ([]models.Event, *models.Pagination, error) {
	if err := validateFilter(filter); err != nil {
		return nil, nil, err
	}

	key := eventCacheKey(filter)
	if s.cache != nil {
		var payload eventListPayload
		if hit, _ := s.cache.Get(ctx, key, &payload); hit {
			return payload.Events, paginationFor(filter, payload.Total), nil
		}
	}

	events, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, eventListPayload{Events: events, Total: total}, s.cacheTTL)
	}

	return events, paginationFor(filter, total), nil
}

// Get returns a single event by id.
func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get event")
	}
	return event, nil
}

// CreateEventRequest describes the create payload.
type CreateEventRequest struct {
	Title           string           `json:"title" validate:"required"`
	Type            string           `json:"type" validate:"required"`
	Start           time.Time        `json:"start" validate:"required"`
	End             time.Time        `json:"end" validate:"required"`
	Status          string           `json:"status"`
	Color           string           `json:"color"`
	StaffID         string           `json:"staffId" validate:"required"`
	BranchID        string           `json:"branchId" validate:"required"`
	PatientID       *string          `json:"patientId"`
	StaffScheduleID *string          `json:"staffScheduleId"`
	IsBaseEvent     bool             `json:"isBaseEvent"`
	Recurrence      *recurrence.Rule `json:"recurrence"`
	Exceptions      []string         `json:"exceptions"`
}

// Create registers a new event.
func (s *EventService) Create(ctx context.Context, req CreateEventRequest) (*models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}
	eventType := models.EventType(req.Type)
	if !eventType.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown event type %q", req.Type))
	}
	status := models.EventStatus(req.Status)
	if req.Status == "" {
		status = models.EventStatusPending
	} else if !status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown event status %q", req.Status))
	}
	if !req.End.After(req.Start) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end must be after start")
	}
	if req.Recurrence != nil {
		if err := req.Recurrence.Validate(req.Start); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInvalidRecurrence.Code, appErrors.ErrInvalidRecurrence.Status, err.Error())
		}
	}

	event := &models.Event{
		Title:           req.Title,
		Type:            eventType,
		Start:           req.Start,
		End:             req.End,
		Status:          status,
		Color:           req.Color,
		StaffID:         req.StaffID,
		BranchID:        req.BranchID,
		PatientID:       req.PatientID,
		StaffScheduleID: req.StaffScheduleID,
		IsActive:        true,
		IsBaseEvent:     req.IsBaseEvent,
		ExceptionDates:  req.Exceptions,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create event")
	}

	s.invalidate(ctx)
	return event, nil
}

// UpdateEventRequest describes the partial update payload. Nil fields
// are left untouched.
type UpdateEventRequest struct {
	Title              *string    `json:"title"`
	Start              *time.Time `json:"start"`
	End                *time.Time `json:"end"`
	Status             *string    `json:"status"`
	Color              *string    `json:"color"`
	StaffID            *string    `json:"staffId"`
	BranchID           *string    `json:"branchId"`
	IsCancelled        *bool      `json:"isCancelled"`
	CancellationReason *string    `json:"cancellationReason"`
	Exceptions         []string   `json:"exceptions"`
}

// Update applies a partial update to an event.
func (s *EventService) Update(ctx context.Context, id string, req UpdateEventRequest) (*models.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load event")
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Start != nil {
		event.Start = *req.Start
	}
	if req.End != nil {
		event.End = *req.End
	}
	if req.Status != nil {
		status := models.EventStatus(*req.Status)
		if !status.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown event status %q", *req.Status))
		}
		event.Status = status
	}
	if req.Color != nil {
		event.Color = *req.Color
	}
	if req.StaffID != nil {
		event.StaffID = *req.StaffID
	}
	if req.BranchID != nil {
		event.BranchID = *req.BranchID
	}
	if req.IsCancelled != nil {
		event.IsCancelled = *req.IsCancelled
	}
	if req.CancellationReason != nil {
		event.CancellationReason = req.CancellationReason
	}
	if req.Exceptions != nil {
		event.ExceptionDates = req.Exceptions
	}
	if !event.End.After(event.Start) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end must be after start")
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update event")
	}

	s.invalidate(ctx)
	return event, nil
}

// BulkDeactivate soft-deletes the given events.
func (s *EventService) BulkDeactivate(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "ids must not be empty")
	}
	affected, err := s.repo.SetActive(ctx, ids, false)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to deactivate events")
	}
	s.invalidate(ctx)
	return affected, nil
}

// BulkReactivate restores soft-deleted events.
func (s *EventService) BulkReactivate(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "ids must not be empty")
	}
	affected, err := s.repo.SetActive(ctx, ids, true)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reactivate events")
	}
	s.invalidate(ctx)
	return affected, nil
}

// DeleteBySchedule removes every event materialized from a schedule
// template.
func (s *EventService) DeleteBySchedule(ctx context.Context, scheduleID string) (int64, error) {
	affected, err := s.repo.DeleteBySchedule(ctx, scheduleID)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete events by schedule")
	}
	s.invalidate(ctx)
	return affected, nil
}

// GenerateFromEvent queues recurrence expansion for the schedule that
// produced the given base event.
func (s *EventService) GenerateFromEvent(ctx context.Context, eventID string) error {
	event, err := s.Get(ctx, eventID)
	if err != nil {
		return err
	}
	if event.StaffScheduleID == nil || *event.StaffScheduleID == "" {
		return appErrors.Clone(appErrors.ErrValidation, "event is not linked to a staff schedule")
	}
	if s.generator == nil {
		return appErrors.Clone(appErrors.ErrInternal, "event generation is not available")
	}
	if err := s.generator.EnqueueGenerate(*event.StaffScheduleID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to queue event generation")
	}
	return nil
}

func (s *EventService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, eventCachePattern); err != nil {
		s.logger.Warn("event cache invalidation failed", zap.Error(err))
	}
}

func eventCacheKey(filter models.EventFilter) string {
	key := eventCachePrefix + filter.QueryKey()
	if !filter.DisablePagination {
		key = fmt.Sprintf("%s&page=%d&size=%d", key, filter.Page, filter.PageSize)
	}
	return key
}

func validateFilter(filter models.EventFilter) error {
	if filter.Type == "" {
		return appErrors.Clone(appErrors.ErrValidation, "type is required")
	}
	if !filter.Type.Valid() {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown event type %q", filter.Type))
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown event status %q", filter.Status))
	}
	var start, end time.Time
	if filter.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", filter.StartDate)
		if err != nil {
			return appErrors.Clone(appErrors.ErrValidation, "invalid startDate, expected YYYY-MM-DD")
		}
		start = parsed
	}
	if filter.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", filter.EndDate)
		if err != nil {
			return appErrors.Clone(appErrors.ErrValidation, "invalid endDate, expected YYYY-MM-DD")
		}
		end = parsed
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return appErrors.Clone(appErrors.ErrValidation, "startDate must not exceed endDate")
	}
	return nil
}

func paginationFor(filter models.EventFilter, total int) *models.Pagination {
	if filter.DisablePagination {
		return nil
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 100
	}
	return &models.Pagination{Page: page, PageSize: size, TotalCount: total}
}

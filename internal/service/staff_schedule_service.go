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

type staffScheduleRepository interface {
	List(ctx context.Context, filter models.StaffScheduleFilter) ([]models.StaffSchedule, int, error)
	GetByID(ctx context.Context, id string) (*models.StaffSchedule, error)
	Create(ctx context.Context, schedule *models.StaffSchedule) error
	Update(ctx context.Context, schedule *models.StaffSchedule) error
	SetActive(ctx context.Context, id string, active bool) error
}

// StaffScheduleService manages recurring shift templates.
type StaffScheduleService struct {
	repo      staffScheduleRepository
	cache     eventCache
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStaffScheduleService constructs the service.
func NewStaffScheduleService(repo staffScheduleRepository, cache eventCache, validate *validator.Validate, logger *zap.Logger) *StaffScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StaffScheduleService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns schedule templates with pagination metadata.
func (s *StaffScheduleService) List(ctx context.Context, filter models.StaffScheduleFilter) ([]models.StaffSchedule, *models.Pagination, error) {
	schedules, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list staff schedules")
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 50
	}
	return schedules, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

// Get returns a schedule template by id.
func (s *StaffScheduleService) Get(ctx context.Context, id string) (*models.StaffSchedule, error) {
	schedule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "staff schedule not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get staff schedule")
	}
	return schedule, nil
}

// StaffScheduleRequest describes the create/update payload.
type StaffScheduleRequest struct {
	StaffID    string     `json:"staffId" validate:"required"`
	BranchID   string     `json:"branchId" validate:"required"`
	Title      string     `json:"title" validate:"required"`
	Color      string     `json:"color"`
	StartTime  string     `json:"startTime" validate:"required"`
	EndTime    string     `json:"endTime" validate:"required"`
	StartDate  time.Time  `json:"startDate" validate:"required"`
	Frequency  string     `json:"frequency" validate:"required"`
	Interval   int        `json:"interval" validate:"required,min=1"`
	Until      *time.Time `json:"until"`
	DaysOfWeek []string   `json:"daysOfWeek"`
	Exceptions []string   `json:"exceptions"`
}

func (s *StaffScheduleService) validateRequest(req StaffScheduleRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid staff schedule payload")
	}
	startClock, err := time.Parse("15:04", req.StartTime)
	if err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "invalid startTime, expected HH:mm")
	}
	endClock, err := time.Parse("15:04", req.EndTime)
	if err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "invalid endTime, expected HH:mm")
	}
	if !endClock.After(startClock) {
		return appErrors.Clone(appErrors.ErrValidation, "endTime must be after startTime")
	}
	rule := recurrence.Rule{
		Frequency:  recurrence.Frequency(req.Frequency),
		Interval:   req.Interval,
		Until:      req.Until,
		DaysOfWeek: req.DaysOfWeek,
		Exceptions: req.Exceptions,
	}
	if err := rule.Validate(req.StartDate); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInvalidRecurrence.Code, appErrors.ErrInvalidRecurrence.Status, err.Error())
	}
	return nil
}

// Create registers a schedule template.
func (s *StaffScheduleService) Create(ctx context.Context, req StaffScheduleRequest) (*models.StaffSchedule, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}
	schedule := &models.StaffSchedule{
		StaffID:    req.StaffID,
		BranchID:   req.BranchID,
		Title:      req.Title,
		Color:      req.Color,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		StartDate:  req.StartDate,
		Frequency:  req.Frequency,
		Interval:   req.Interval,
		Until:      req.Until,
		DaysOfWeek: req.DaysOfWeek,
		Exceptions: req.Exceptions,
		IsActive:   true,
	}
	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create staff schedule")
	}
	s.invalidateEvents(ctx)
	return schedule, nil
}

// Update rewrites a schedule template.
func (s *StaffScheduleService) Update(ctx context.Context, id string, req StaffScheduleRequest) (*models.StaffSchedule, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}
	schedule, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	schedule.StaffID = req.StaffID
	schedule.BranchID = req.BranchID
	schedule.Title = req.Title
	schedule.Color = req.Color
	schedule.StartTime = req.StartTime
	schedule.EndTime = req.EndTime
	schedule.StartDate = req.StartDate
	schedule.Frequency = req.Frequency
	schedule.Interval = req.Interval
	schedule.Until = req.Until
	schedule.DaysOfWeek = req.DaysOfWeek
	schedule.Exceptions = req.Exceptions
	if err := s.repo.Update(ctx, schedule); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update staff schedule")
	}
	s.invalidateEvents(ctx)
	return schedule, nil
}

// Deactivate soft-deletes a schedule template.
func (s *StaffScheduleService) Deactivate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, false)
}

// Reactivate restores a deactivated template.
func (s *StaffScheduleService) Reactivate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, true)
}

func (s *StaffScheduleService) setActive(ctx context.Context, id string, active bool) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("failed to set staff schedule active=%t", active))
	}
	s.invalidateEvents(ctx)
	return nil
}

func (s *StaffScheduleService) invalidateEvents(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, eventCachePattern); err != nil {
		s.logger.Warn("event cache invalidation failed", zap.Error(err))
	}
}

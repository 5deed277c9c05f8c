package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vitalsalud/agenda-api/internal/models"
	"github.com/vitalsalud/agenda-api/internal/recurrence"
	"github.com/vitalsalud/agenda-api/pkg/jobs"
)

type scheduleReader interface {
	GetByID(ctx context.Context, id string) (*models.StaffSchedule, error)
}

type generatedEventWriter interface {
	BulkCreate(ctx context.Context, events []models.Event) error
	DeleteGenerated(ctx context.Context, scheduleID string) (int64, error)
}

// GeneratorService expands staff schedule recurrence rules into
// concrete shift events on a background worker queue.
type GeneratorService struct {
	schedules scheduleReader
	events    generatedEventWriter
	cache     eventCache
	queue     *jobs.Queue
	horizon   time.Duration
	logger    *zap.Logger
}

// GeneratorConfig tunes queue behaviour.
type GeneratorConfig struct {
	Workers    int
	MaxRetries int
	RetryDelay time.Duration
	Horizon    time.Duration
}

// NewGeneratorService constructs the service and its queue.
func NewGeneratorService(schedules scheduleReader, events generatedEventWriter, cache eventCache, cfg GeneratorConfig, logger *zap.Logger) *GeneratorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Horizon <= 0 {
		cfg.Horizon = 365 * 24 * time.Hour
	}
	s := &GeneratorService{
		schedules: schedules,
		events:    events,
		cache:     cache,
		horizon:   cfg.Horizon,
		logger:    logger,
	}
	s.queue = jobs.NewQueue("event-generator", s.handleJob, jobs.QueueConfig{
		Workers:    cfg.Workers,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
		Logger:     logger,
	})
	return s
}

// Start launches the worker queue.
func (s *GeneratorService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop drains the worker queue.
func (s *GeneratorService) Stop() {
	s.queue.Stop()
}

// EnqueueGenerate queues expansion for a schedule template.
func (s *GeneratorService) EnqueueGenerate(scheduleID string) error {
	return s.queue.Enqueue(jobs.Job{
		ID:      uuid.NewString(),
		Type:    "generate-events",
		Payload: scheduleID,
	})
}

func (s *GeneratorService) handleJob(ctx context.Context, job jobs.Job) error {
	scheduleID, ok := job.Payload.(string)
	if !ok {
		s.logger.Error("generator job with bad payload", zap.String("job_id", job.ID))
		return nil
	}
	count, err := s.Generate(ctx, scheduleID)
	if err != nil {
		return err
	}
	s.logger.Info("schedule expanded",
		zap.String("schedule_id", scheduleID),
		zap.Int("events", count))
	return nil
}

// Generate synchronously expands one schedule into shift events.
// Previously generated rows are replaced, so regeneration after a
// template edit is repeatable; the base event is preserved.
func (s *GeneratorService) Generate(ctx context.Context, scheduleID string) (int, error) {
	schedule, err := s.schedules.GetByID(ctx, scheduleID)
	if err != nil {
		return 0, fmt.Errorf("load schedule %s: %w", scheduleID, err)
	}
	if !schedule.IsActive {
		return 0, fmt.Errorf("schedule %s is inactive", scheduleID)
	}

	startClock, err := time.Parse("15:04", schedule.StartTime)
	if err != nil {
		return 0, fmt.Errorf("schedule %s start time: %w", scheduleID, err)
	}
	endClock, err := time.Parse("15:04", schedule.EndTime)
	if err != nil {
		return 0, fmt.Errorf("schedule %s end time: %w", scheduleID, err)
	}
	duration := endClock.Sub(startClock)
	if duration <= 0 {
		duration += 24 * time.Hour
	}

	anchor := time.Date(
		schedule.StartDate.Year(), schedule.StartDate.Month(), schedule.StartDate.Day(),
		startClock.Hour(), startClock.Minute(), 0, 0, time.UTC,
	)

	rule := recurrence.Rule{
		Frequency:  recurrence.Frequency(schedule.Frequency),
		Interval:   schedule.Interval,
		Until:      schedule.Until,
		DaysOfWeek: schedule.DaysOfWeek,
		Exceptions: schedule.Exceptions,
	}

	horizon := time.Now().UTC().Add(s.horizon)
	occurrences, err := recurrence.Expand(rule, anchor, horizon)
	if err != nil {
		return 0, fmt.Errorf("expand schedule %s: %w", scheduleID, err)
	}

	events := make([]models.Event, 0, len(occurrences))
	for _, start := range occurrences {
		events = append(events, models.Event{
			Title:           schedule.Title,
			Type:            models.EventTypeTurno,
			Start:           start,
			End:             start.Add(duration),
			Status:          models.EventStatusConfirmed,
			Color:           schedule.Color,
			StaffID:         schedule.StaffID,
			BranchID:        schedule.BranchID,
			StaffScheduleID: &schedule.ID,
			IsActive:        true,
		})
	}

	if _, err := s.events.DeleteGenerated(ctx, scheduleID); err != nil {
		return 0, fmt.Errorf("clear generated events for %s: %w", scheduleID, err)
	}
	if err := s.events.BulkCreate(ctx, events); err != nil {
		return 0, fmt.Errorf("store generated events for %s: %w", scheduleID, err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, eventCachePattern); err != nil {
			s.logger.Warn("event cache invalidation failed", zap.Error(err))
		}
	}

	return len(events), nil
}

package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/vitalsalud/agenda-api/internal/models"
)

const eventColumns = `e.id, e.title, e.type, e.start_at, e.end_at, e.status, e.color, e.staff_id, e.branch_id,
e.patient_id, e.staff_schedule_id, e.is_active, e.is_cancelled, e.is_base_event, e.cancellation_reason,
e.exception_dates, s.name AS staff_name, s.last_name AS staff_last_name, b.name AS branch_name,
e.created_at, e.updated_at`

const eventJoins = `FROM events e
JOIN staff s ON s.id = e.staff_id
JOIN branches b ON b.id = e.branch_id`

// EventRepository persists calendar events.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository constructs an event repository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// List returns events matching the filter, joined with staff and
// branch display names.
func (r *EventRepository) List(ctx context.Context, filter models.EventFilter) ([]models.Event, int, error) {
	where := []string{"e.is_active = TRUE", "e.type = $1"}
	args := []interface{}{string(filter.Type)}
	if filter.StaffID != "" {
		where = append(where, fmt.Sprintf("e.staff_id = $%d", len(args)+1))
		args = append(args, filter.StaffID)
	}
	if filter.BranchID != "" {
		where = append(where, fmt.Sprintf("e.branch_id = $%d", len(args)+1))
		args = append(args, filter.BranchID)
	}
	if filter.StaffScheduleID != "" {
		where = append(where, fmt.Sprintf("e.staff_schedule_id = $%d", len(args)+1))
		args = append(args, filter.StaffScheduleID)
	}
	if filter.Status != "" {
		where = append(where, fmt.Sprintf("e.status = $%d", len(args)+1))
		args = append(args, string(filter.Status))
	}
	if filter.StartDate != "" {
		where = append(where, fmt.Sprintf("e.start_at::date >= $%d", len(args)+1))
		args = append(args, filter.StartDate)
	}
	if filter.EndDate != "" {
		where = append(where, fmt.Sprintf("e.start_at::date <= $%d", len(args)+1))
		args = append(args, filter.EndDate)
	}
	whereClause := strings.Join(where, " AND ")

	limitClause := ""
	if !filter.DisablePagination {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		size := filter.PageSize
		if size <= 0 || size > 500 {
			size = 100
		}
		limitClause = fmt.Sprintf(" LIMIT %d OFFSET %d", size, (page-1)*size)
	}

	query := fmt.Sprintf("SELECT %s\n%s WHERE %s ORDER BY e.start_at ASC%s", eventColumns, eventJoins, whereClause, limitClause)
	var events []models.Event
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s WHERE %s", eventJoins, whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}

	return events, total, nil
}

// GetByID fetches a single event.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	query := fmt.Sprintf("SELECT %s\n%s WHERE e.id = $1", eventColumns, eventJoins)
	var event models.Event
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		return nil, err
	}
	return &event, nil
}

// Create inserts an event.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}
	event.UpdatedAt = now
	query := `INSERT INTO events (id, title, type, start_at, end_at, status, color, staff_id, branch_id, patient_id,
staff_schedule_id, is_active, is_cancelled, is_base_event, cancellation_reason, exception_dates, created_at, updated_at)
VALUES (:id, :title, :type, :start_at, :end_at, :status, :color, :staff_id, :branch_id, :patient_id,
:staff_schedule_id, :is_active, :is_cancelled, :is_base_event, :cancellation_reason, :exception_dates, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// BulkCreate inserts many events in one transaction. Used by the
// recurrence generator.
func (r *EventRepository) BulkCreate(ctx context.Context, events []models.Event) error {
	if len(events) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin bulk create: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	now := time.Now().UTC()
	query := `INSERT INTO events (id, title, type, start_at, end_at, status, color, staff_id, branch_id, patient_id,
staff_schedule_id, is_active, is_cancelled, is_base_event, cancellation_reason, exception_dates, created_at, updated_at)
VALUES (:id, :title, :type, :start_at, :end_at, :status, :color, :staff_id, :branch_id, :patient_id,
:staff_schedule_id, :is_active, :is_cancelled, :is_base_event, :cancellation_reason, :exception_dates, :created_at, :updated_at)`
	for i := range events {
		if events[i].ID == "" {
			events[i].ID = uuid.NewString()
		}
		if events[i].CreatedAt.IsZero() {
			events[i].CreatedAt = now
		}
		events[i].UpdatedAt = now
		if _, err := tx.NamedExecContext(ctx, query, events[i]); err != nil {
			return fmt.Errorf("bulk create event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit bulk create: %w", err)
	}
	return nil
}

// Update rewrites the mutable fields of an event.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	event.UpdatedAt = time.Now().UTC()
	query := `UPDATE events SET title = :title, type = :type, start_at = :start_at, end_at = :end_at, status = :status,
color = :color, staff_id = :staff_id, branch_id = :branch_id, patient_id = :patient_id, is_cancelled = :is_cancelled,
cancellation_reason = :cancellation_reason, exception_dates = :exception_dates, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// SetActive flips the soft-delete flag on the given events.
func (r *EventRepository) SetActive(ctx context.Context, ids []string, active bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := r.db.ExecContext(ctx,
		"UPDATE events SET is_active = $1, updated_at = $2 WHERE id = ANY($3)",
		active, time.Now().UTC(), pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("set events active: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("set events active rows: %w", err)
	}
	return affected, nil
}

// DeleteGenerated removes the non-base events materialized from a
// schedule, keeping the base event so regeneration is repeatable.
func (r *EventRepository) DeleteGenerated(ctx context.Context, scheduleID string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM events WHERE staff_schedule_id = $1 AND is_base_event = FALSE", scheduleID)
	if err != nil {
		return 0, fmt.Errorf("delete generated events: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete generated events rows: %w", err)
	}
	return affected, nil
}

// DeleteBySchedule removes every event generated from a schedule
// template. Already-materialized rows are the only thing affected;
// the template itself is untouched.
func (r *EventRepository) DeleteBySchedule(ctx context.Context, scheduleID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM events WHERE staff_schedule_id = $1", scheduleID)
	if err != nil {
		return 0, fmt.Errorf("delete events by schedule: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete events by schedule rows: %w", err)
	}
	return affected, nil
}

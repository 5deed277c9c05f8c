package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vitalsalud/agenda-api/internal/models"
)

const staffScheduleColumns = `id, staff_id, branch_id, title, color, start_time, end_time, start_date,
frequency, recurrence_interval, until_date, days_of_week, exceptions, is_active, created_at, updated_at`

// StaffScheduleRepository persists recurring shift templates.
type StaffScheduleRepository struct {
	db *sqlx.DB
}

// NewStaffScheduleRepository constructs a staff schedule repository.
func NewStaffScheduleRepository(db *sqlx.DB) *StaffScheduleRepository {
	return &StaffScheduleRepository{db: db}
}

// List returns schedule templates matching the filter.
func (r *StaffScheduleRepository) List(ctx context.Context, filter models.StaffScheduleFilter) ([]models.StaffSchedule, int, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	if filter.StaffID != "" {
		where = append(where, fmt.Sprintf("staff_id = $%d", len(args)+1))
		args = append(args, filter.StaffID)
	}
	if filter.BranchID != "" {
		where = append(where, fmt.Sprintf("branch_id = $%d", len(args)+1))
		args = append(args, filter.BranchID)
	}
	if filter.Active != nil {
		where = append(where, fmt.Sprintf("is_active = $%d", len(args)+1))
		args = append(args, *filter.Active)
	}
	whereClause := strings.Join(where, " AND ")

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 200 {
		size = 50
	}

	query := fmt.Sprintf("SELECT %s FROM staff_schedules WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d",
		staffScheduleColumns, whereClause, size, (page-1)*size)
	var schedules []models.StaffSchedule
	if err := r.db.SelectContext(ctx, &schedules, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list staff schedules: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM staff_schedules WHERE %s", whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count staff schedules: %w", err)
	}

	return schedules, total, nil
}

// GetByID fetches a schedule template.
func (r *StaffScheduleRepository) GetByID(ctx context.Context, id string) (*models.StaffSchedule, error) {
	query := fmt.Sprintf("SELECT %s FROM staff_schedules WHERE id = $1", staffScheduleColumns)
	var schedule models.StaffSchedule
	if err := r.db.GetContext(ctx, &schedule, query, id); err != nil {
		return nil, err
	}
	return &schedule, nil
}

// Create inserts a schedule template.
func (r *StaffScheduleRepository) Create(ctx context.Context, schedule *models.StaffSchedule) error {
	if schedule.ID == "" {
		schedule.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if schedule.CreatedAt.IsZero() {
		schedule.CreatedAt = now
	}
	schedule.UpdatedAt = now
	query := `INSERT INTO staff_schedules (id, staff_id, branch_id, title, color, start_time, end_time, start_date,
frequency, recurrence_interval, until_date, days_of_week, exceptions, is_active, created_at, updated_at)
VALUES (:id, :staff_id, :branch_id, :title, :color, :start_time, :end_time, :start_date,
:frequency, :recurrence_interval, :until_date, :days_of_week, :exceptions, :is_active, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, schedule); err != nil {
		return fmt.Errorf("create staff schedule: %w", err)
	}
	return nil
}

// Update rewrites a schedule template.
func (r *StaffScheduleRepository) Update(ctx context.Context, schedule *models.StaffSchedule) error {
	schedule.UpdatedAt = time.Now().UTC()
	query := `UPDATE staff_schedules SET staff_id = :staff_id, branch_id = :branch_id, title = :title, color = :color,
start_time = :start_time, end_time = :end_time, start_date = :start_date, frequency = :frequency,
recurrence_interval = :recurrence_interval, until_date = :until_date, days_of_week = :days_of_week,
exceptions = :exceptions, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, schedule); err != nil {
		return fmt.Errorf("update staff schedule: %w", err)
	}
	return nil
}

// SetActive flips the soft-delete flag. Templates are deactivated and
// reactivated, never hard-deleted.
func (r *StaffScheduleRepository) SetActive(ctx context.Context, id string, active bool) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE staff_schedules SET is_active = $1, updated_at = $2 WHERE id = $3",
		active, time.Now().UTC(), id); err != nil {
		return fmt.Errorf("set staff schedule active: %w", err)
	}
	return nil
}

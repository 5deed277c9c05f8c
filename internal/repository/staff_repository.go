package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/vitalsalud/agenda-api/internal/models"
)

// StaffRepository reads the staff roster backing calendar filters.
type StaffRepository struct {
	db *sqlx.DB
}

// NewStaffRepository constructs a staff repository.
func NewStaffRepository(db *sqlx.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

// List returns staff members matching the filter.
func (r *StaffRepository) List(ctx context.Context, filter models.StaffFilter) ([]models.Staff, int, error) {
	where := []string{"1=1"}
	args := []interface{}{}
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

	query := fmt.Sprintf(`SELECT id, name, last_name, email, cmp, branch_id, is_active, created_at, updated_at
FROM staff WHERE %s ORDER BY last_name ASC, name ASC LIMIT %d OFFSET %d`, whereClause, size, (page-1)*size)
	var staff []models.Staff
	if err := r.db.SelectContext(ctx, &staff, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list staff: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM staff WHERE %s", whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count staff: %w", err)
	}

	return staff, total, nil
}

// GetByID fetches a staff member.
func (r *StaffRepository) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	const query = `SELECT id, name, last_name, email, cmp, branch_id, is_active, created_at, updated_at
FROM staff WHERE id = $1`
	var staff models.Staff
	if err := r.db.GetContext(ctx, &staff, query, id); err != nil {
		return nil, err
	}
	return &staff, nil
}

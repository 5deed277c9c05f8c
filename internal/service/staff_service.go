package service

import (
	"context"
	"database/sql"

	"github.com/vitalsalud/agenda-api/internal/models"
	appErrors "github.com/vitalsalud/agenda-api/pkg/errors"
)

type staffRepository interface {
	List(ctx context.Context, filter models.StaffFilter) ([]models.Staff, int, error)
	GetByID(ctx context.Context, id string) (*models.Staff, error)
}

// StaffService serves the staff roster used to populate calendar
// filters.
type StaffService struct {
	repo staffRepository
}

// NewStaffService constructs the service.
func NewStaffService(repo staffRepository) *StaffService {
	return &StaffService{repo: repo}
}

// List returns staff members matching the filter.
func (s *StaffService) List(ctx context.Context, filter models.StaffFilter) ([]models.Staff, *models.Pagination, error) {
	staff, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list staff")
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 50
	}
	return staff, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

// Get returns a staff member by id.
func (s *StaffService) Get(ctx context.Context, id string) (*models.Staff, error) {
	staff, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "staff member not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get staff member")
	}
	return staff, nil
}

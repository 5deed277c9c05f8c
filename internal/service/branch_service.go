package service

import (
	"context"
	"database/sql"

	"github.com/vitalsalud/agenda-api/internal/models"
	appErrors "github.com/vitalsalud/agenda-api/pkg/errors"
)

type branchRepository interface {
	List(ctx context.Context) ([]models.Branch, error)
	GetByID(ctx context.Context, id string) (*models.Branch, error)
}

// BranchService serves practice locations.
type BranchService struct {
	repo branchRepository
}

// NewBranchService constructs the service.
func NewBranchService(repo branchRepository) *BranchService {
	return &BranchService{repo: repo}
}

// List returns all active branches.
func (s *BranchService) List(ctx context.Context) ([]models.Branch, error) {
	branches, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list branches")
	}
	return branches, nil
}

// Get returns a branch by id.
func (s *BranchService) Get(ctx context.Context, id string) (*models.Branch, error) {
	branch, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "branch not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get branch")
	}
	return branch, nil
}

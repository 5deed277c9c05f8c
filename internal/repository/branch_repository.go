package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vitalsalud/agenda-api/internal/models"
)

// BranchRepository reads practice locations.
type BranchRepository struct {
	db *sqlx.DB
}

// NewBranchRepository constructs a branch repository.
func NewBranchRepository(db *sqlx.DB) *BranchRepository {
	return &BranchRepository{db: db}
}

// List returns all active branches.
func (r *BranchRepository) List(ctx context.Context) ([]models.Branch, error) {
	const query = `SELECT id, name, address, phone, is_active, created_at, updated_at
FROM branches WHERE is_active = TRUE ORDER BY name ASC`
	var branches []models.Branch
	if err := r.db.SelectContext(ctx, &branches, query); err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	return branches, nil
}

// GetByID fetches a branch.
func (r *BranchRepository) GetByID(ctx context.Context, id string) (*models.Branch, error) {
	const query = `SELECT id, name, address, phone, is_active, created_at, updated_at
FROM branches WHERE id = $1`
	var branch models.Branch
	if err := r.db.GetContext(ctx, &branch, query, id); err != nil {
		return nil, err
	}
	return &branch, nil
}

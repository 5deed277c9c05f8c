package models

import "time"

// Staff is a practice employee that can own schedules and events.
type Staff struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	LastName  string    `db:"last_name" json:"lastName"`
	Email     string    `db:"email" json:"email"`
	CMP       *string   `db:"cmp" json:"cmp,omitempty"`
	BranchID  string    `db:"branch_id" json:"branchId"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// StaffFilter narrows staff listings.
type StaffFilter struct {
	BranchID string
	Active   *bool
	Page     int
	PageSize int
}

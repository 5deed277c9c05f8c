package models

import (
	"time"

	"github.com/lib/pq"
)

// StaffSchedule is a recurring shift template owned by one staff member
// at one branch. Times are local times of day in HH:mm form; the
// recurrence fields describe how concrete events are generated from it.
type StaffSchedule struct {
	ID         string         `db:"id" json:"id"`
	StaffID    string         `db:"staff_id" json:"staffId"`
	BranchID   string         `db:"branch_id" json:"branchId"`
	Title      string         `db:"title" json:"title"`
	Color      string         `db:"color" json:"color"`
	StartTime  string         `db:"start_time" json:"startTime"`
	EndTime    string         `db:"end_time" json:"endTime"`
	StartDate  time.Time      `db:"start_date" json:"startDate"`
	Frequency  string         `db:"frequency" json:"frequency"`
	Interval   int            `db:"recurrence_interval" json:"interval"`
	Until      *time.Time     `db:"until_date" json:"until,omitempty"`
	DaysOfWeek pq.StringArray `db:"days_of_week" json:"daysOfWeek,omitempty"`
	Exceptions pq.StringArray `db:"exceptions" json:"exceptions,omitempty"`
	IsActive   bool           `db:"is_active" json:"isActive"`
	CreatedAt  time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time      `db:"updated_at" json:"updatedAt"`
}

// StaffScheduleFilter describes query params for listing templates.
type StaffScheduleFilter struct {
	StaffID  string
	BranchID string
	Active   *bool
	Page     int
	PageSize int
}

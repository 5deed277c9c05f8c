package models

import (
	"net/url"
	"time"

	"github.com/lib/pq"
)

// EventType distinguishes shifts from appointments.
type EventType string

const (
	EventTypeTurno EventType = "TURNO"
	EventTypeCita  EventType = "CITA"
	EventTypeOtro  EventType = "OTRO"
)

// Valid reports whether the type is one of the known values.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeTurno, EventTypeCita, EventTypeOtro:
		return true
	}
	return false
}

// EventStatus is the lifecycle state of a calendar event.
type EventStatus string

const (
	EventStatusPending     EventStatus = "PENDING"
	EventStatusConfirmed   EventStatus = "CONFIRMED"
	EventStatusCancelled   EventStatus = "CANCELLED"
	EventStatusCompleted   EventStatus = "COMPLETED"
	EventStatusNoShow      EventStatus = "NO_SHOW"
	EventStatusRescheduled EventStatus = "RESCHEDULED"
)

// Valid reports whether the status is one of the known values.
func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusPending, EventStatusConfirmed, EventStatusCancelled,
		EventStatusCompleted, EventStatusNoShow, EventStatusRescheduled:
		return true
	}
	return false
}

// Event is a concrete calendar occurrence, either entered directly or
// materialized from a staff schedule's recurrence rule.
type Event struct {
	ID                 string         `db:"id" json:"id"`
	Title              string         `db:"title" json:"title"`
	Type               EventType      `db:"type" json:"type"`
	Start              time.Time      `db:"start_at" json:"start"`
	End                time.Time      `db:"end_at" json:"end"`
	Status             EventStatus    `db:"status" json:"status"`
	Color              string         `db:"color" json:"color"`
	StaffID            string         `db:"staff_id" json:"staffId"`
	BranchID           string         `db:"branch_id" json:"branchId"`
	PatientID          *string        `db:"patient_id" json:"patientId,omitempty"`
	StaffScheduleID    *string        `db:"staff_schedule_id" json:"staffScheduleId,omitempty"`
	IsActive           bool           `db:"is_active" json:"isActive"`
	IsCancelled        bool           `db:"is_cancelled" json:"isCancelled"`
	IsBaseEvent        bool           `db:"is_base_event" json:"isBaseEvent"`
	CancellationReason *string        `db:"cancellation_reason" json:"cancellationReason,omitempty"`
	ExceptionDates     pq.StringArray `db:"exception_dates" json:"exceptionDates,omitempty"`
	StaffName          string         `db:"staff_name" json:"staffName"`
	StaffLastName      string         `db:"staff_last_name" json:"staffLastName"`
	BranchName         string         `db:"branch_name" json:"branchName"`
	CreatedAt          time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time      `db:"updated_at" json:"updatedAt"`
}

// EventFilter narrows down events for listing. Dates are YYYY-MM-DD.
type EventFilter struct {
	StaffID           string      `json:"staffId,omitempty"`
	BranchID          string      `json:"branchId,omitempty"`
	StaffScheduleID   string      `json:"staffScheduleId,omitempty"`
	Type              EventType   `json:"type"`
	Status            EventStatus `json:"status,omitempty"`
	StartDate         string      `json:"startDate,omitempty"`
	EndDate           string      `json:"endDate,omitempty"`
	DisablePagination bool        `json:"disablePagination,omitempty"`
	Page              int         `json:"-"`
	PageSize          int         `json:"-"`
}

// QueryKey serializes the filter into a canonical query string. Empty
// fields are absent rather than empty-valued, so the same logical
// filter always yields the same key. It doubles as the cache key.
func (f EventFilter) QueryKey() string {
	values := url.Values{}
	values.Set("type", string(f.Type))
	if f.StaffID != "" {
		values.Set("staffId", f.StaffID)
	}
	if f.BranchID != "" {
		values.Set("branchId", f.BranchID)
	}
	if f.StaffScheduleID != "" {
		values.Set("staffScheduleId", f.StaffScheduleID)
	}
	if f.Status != "" {
		values.Set("status", string(f.Status))
	}
	if f.StartDate != "" {
		values.Set("startDate", f.StartDate)
	}
	if f.EndDate != "" {
		values.Set("endDate", f.EndDate)
	}
	if f.DisablePagination {
		values.Set("disablePagination", "true")
	}
	return values.Encode()
}

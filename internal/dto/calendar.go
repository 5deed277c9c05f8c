package dto

import "github.com/vitalsalud/agenda-api/internal/calendar"

// CalendarView is the response body of the calendar endpoint. Exactly
// one of Day, Week or Month is set, matching the requested mode.
type CalendarView struct {
	Mode      string              `json:"mode"`
	Cursor    string              `json:"cursor"`
	StartDate string              `json:"startDate"`
	EndDate   string              `json:"endDate"`
	FilterKey string              `json:"filterKey"`
	Day       *calendar.DayGrid   `json:"day,omitempty"`
	Week      *calendar.WeekGrid  `json:"week,omitempty"`
	Month     *calendar.MonthGrid `json:"month,omitempty"`
}

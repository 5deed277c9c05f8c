package calendar

import (
	"time"

	"github.com/vitalsalud/agenda-api/internal/models"
)

// Mode is the calendar display granularity.
type Mode string

const (
	ModeDay   Mode = "dia"
	ModeWeek  Mode = "semana"
	ModeMonth Mode = "mes"
)

// Valid reports whether the mode is one of the known values.
func (m Mode) Valid() bool {
	switch m {
	case ModeDay, ModeWeek, ModeMonth:
		return true
	}
	return false
}

// rangePadding widens the fetched month on both sides so that day and
// week navigation across month boundaries never needs a refetch.
const rangePadding = 7

// FilterPolicy fixes filter fields per event type. The shift calendar
// only ever shows confirmed shifts; keeping that rule here, rather
// than buried in a call site, makes it visible and testable on its own.
type FilterPolicy struct {
	ForcedStatus map[models.EventType]models.EventStatus
}

// ShiftCalendarPolicy is the production policy: TURNO calendars are
// pinned to CONFIRMED events.
func ShiftCalendarPolicy() FilterPolicy {
	return FilterPolicy{
		ForcedStatus: map[models.EventType]models.EventStatus{
			models.EventTypeTurno: models.EventStatusConfirmed,
		},
	}
}

// Resolver normalizes partial event filters into complete queries.
type Resolver struct {
	policy FilterPolicy
}

// NewResolver builds a resolver with the given policy.
func NewResolver(policy FilterPolicy) *Resolver {
	return &Resolver{policy: policy}
}

// Normalize completes a partial filter for the given view cursor. The
// date range always covers the cursor's month extended by seven days
// on each side, regardless of mode. Normalization is idempotent: a
// normalized filter passed back through yields the same result.
func (r *Resolver) Normalize(partial models.EventFilter, cursor time.Time, mode Mode) models.EventFilter {
	filter := partial
	if forced, ok := r.policy.ForcedStatus[filter.Type]; ok {
		filter.Status = forced
	}
	filter.StartDate = monthStart(cursor).AddDate(0, 0, -rangePadding).Format(DateLayout)
	filter.EndDate = monthEnd(cursor).AddDate(0, 0, rangePadding).Format(DateLayout)
	return filter
}

package recurrence

import (
	"fmt"
	"time"
)

// Frequency is the repetition unit of a rule.
type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyYearly  Frequency = "YEARLY"
)

// Valid reports whether the frequency is one of the known values.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// DateLayout is the wire format for rule dates.
const DateLayout = "2006-01-02"

var weekdayTags = map[string]time.Weekday{
	"MO": time.Monday,
	"TU": time.Tuesday,
	"WE": time.Wednesday,
	"TH": time.Thursday,
	"FR": time.Friday,
	"SA": time.Saturday,
	"SU": time.Sunday,
}

// Rule describes how a schedule repeats. DaysOfWeek uses two-letter
// tags (MO..SU) and only applies to WEEKLY rules. Exceptions are
// YYYY-MM-DD dates excluded from the generated instances.
type Rule struct {
	Frequency  Frequency  `json:"frequency"`
	Interval   int        `json:"interval"`
	Until      *time.Time `json:"until,omitempty"`
	DaysOfWeek []string   `json:"daysOfWeek,omitempty"`
	Exceptions []string   `json:"exceptions,omitempty"`
}

// Validate checks the rule shape against the given schedule start date.
func (r Rule) Validate(start time.Time) error {
	if !r.Frequency.Valid() {
		return fmt.Errorf("unknown frequency %q", r.Frequency)
	}
	if r.Interval < 1 {
		return fmt.Errorf("interval must be at least 1, got %d", r.Interval)
	}
	for _, tag := range r.DaysOfWeek {
		if _, ok := weekdayTags[tag]; !ok {
			return fmt.Errorf("unknown weekday tag %q", tag)
		}
	}
	for _, raw := range r.Exceptions {
		if _, err := time.Parse(DateLayout, raw); err != nil {
			return fmt.Errorf("malformed exception date %q", raw)
		}
	}
	if r.IsNoPattern(start) {
		return nil
	}
	if r.Frequency == FrequencyWeekly && len(r.DaysOfWeek) == 0 {
		return fmt.Errorf("weekly rules require at least one day of week")
	}
	if r.Until != nil && r.Until.Before(truncateToDay(start)) {
		return fmt.Errorf("until date %s precedes schedule start", r.Until.Format(DateLayout))
	}
	return nil
}

// IsNoPattern recognizes the single-occurrence sentinel: a yearly rule
// with interval 1 whose until date already passed relative to the
// schedule start. The wire contract keeps this encoding; internally
// callers should work with Policy instead.
func (r Rule) IsNoPattern(today time.Time) bool {
	return r.Frequency == FrequencyYearly &&
		r.Interval == 1 &&
		r.Until != nil &&
		r.Until.Before(truncateToDay(today))
}

// ExceptionSet returns the exception dates keyed by day for lookup.
func (r Rule) ExceptionSet() map[string]struct{} {
	if len(r.Exceptions) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(r.Exceptions))
	for _, raw := range r.Exceptions {
		set[raw] = struct{}{}
	}
	return set
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

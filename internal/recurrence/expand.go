package recurrence

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

var rruleFrequencies = map[Frequency]rrule.Frequency{
	FrequencyDaily:   rrule.DAILY,
	FrequencyWeekly:  rrule.WEEKLY,
	FrequencyMonthly: rrule.MONTHLY,
	FrequencyYearly:  rrule.YEARLY,
}

var rruleWeekdays = map[string]rrule.Weekday{
	"MO": rrule.MO,
	"TU": rrule.TU,
	"WE": rrule.WE,
	"TH": rrule.TH,
	"FR": rrule.FR,
	"SA": rrule.SA,
	"SU": rrule.SU,
}

// Expand materializes the occurrence start instants of a rule anchored
// at start, limited to [start, horizon] and the rule's until date.
// Exception dates are skipped. A no-pattern rule yields only the
// anchor occurrence.
func Expand(rule Rule, start time.Time, horizon time.Time) ([]time.Time, error) {
	if rule.IsNoPattern(start) {
		return []time.Time{start}, nil
	}

	freq, ok := rruleFrequencies[rule.Frequency]
	if !ok {
		return nil, fmt.Errorf("unknown frequency %q", rule.Frequency)
	}

	opt := rrule.ROption{
		Freq:     freq,
		Interval: rule.Interval,
		Dtstart:  start,
	}
	if rule.Until != nil {
		// Until is inclusive: occurrences on the until day still count.
		opt.Until = rule.Until.AddDate(0, 0, 1).Add(-time.Second)
	}
	for _, tag := range rule.DaysOfWeek {
		day, ok := rruleWeekdays[tag]
		if !ok {
			return nil, fmt.Errorf("unknown weekday tag %q", tag)
		}
		opt.Byweekday = append(opt.Byweekday, day)
	}

	r, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("build rrule: %w", err)
	}

	exceptions := rule.ExceptionSet()
	occurrences := r.Between(start, horizon, true)
	result := make([]time.Time, 0, len(occurrences))
	for _, ts := range occurrences {
		if _, skip := exceptions[ts.Format(DateLayout)]; skip {
			continue
		}
		result = append(result, ts)
	}

	return result, nil
}

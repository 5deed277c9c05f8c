package recurrence

import "time"

// Policy is the explicit internal representation of a schedule's
// repetition: either a single occurrence or a real recurring rule.
// It replaces the ambiguous yearly-with-expired-until sentinel that
// the wire contract still speaks.
type Policy struct {
	Recurring bool
	Rule      Rule
}

// NoPattern is the single-occurrence policy.
func NoPattern() Policy {
	return Policy{}
}

// Recurring wraps a rule into a recurring policy.
func Recurring(rule Rule) Policy {
	return Policy{Recurring: true, Rule: rule}
}

// PolicyOf interprets a wire rule relative to the schedule start date.
func PolicyOf(rule Rule, start time.Time) Policy {
	if rule.IsNoPattern(start) {
		return NoPattern()
	}
	return Recurring(rule)
}

// Wire encodes the policy back into the wire rule representation,
// producing the sentinel for single-occurrence policies. The sentinel
// until date is the day before the reference date.
func (p Policy) Wire(today time.Time) Rule {
	if p.Recurring {
		return p.Rule
	}
	yesterday := truncateToDay(today).AddDate(0, 0, -1)
	return Rule{Frequency: FrequencyYearly, Interval: 1, Until: &yesterday}
}

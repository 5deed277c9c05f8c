package recurrence

import "time"

// Preset names the repetition patterns offered by the schedule form.
type Preset string

const (
	PresetNone         Preset = "none"
	PresetDaily        Preset = "daily"
	PresetSpecificDays Preset = "specific-days"
	PresetBiweekly     Preset = "biweekly"
)

// Canonical returns the (frequency, interval) pair a preset stands for.
// PresetNone reports ok=false: it carries no real frequency and is
// encoded through Policy.Wire instead.
func (p Preset) Canonical() (Frequency, int, bool) {
	switch p {
	case PresetDaily:
		return FrequencyDaily, 1, true
	case PresetSpecificDays:
		return FrequencyWeekly, 1, true
	case PresetBiweekly:
		return FrequencyWeekly, 2, true
	default:
		return "", 0, false
	}
}

// PresetFor maps a wire rule back to the form preset for display.
// Unmatched combinations (real monthly or yearly rules) report
// ok=false and are displayed verbatim.
func PresetFor(rule Rule, today time.Time) (Preset, bool) {
	if rule.IsNoPattern(today) {
		return PresetNone, true
	}
	switch {
	case rule.Frequency == FrequencyDaily && rule.Interval == 1:
		return PresetDaily, true
	case rule.Frequency == FrequencyWeekly && rule.Interval == 2:
		return PresetBiweekly, true
	case rule.Frequency == FrequencyWeekly && rule.Interval == 1:
		return PresetSpecificDays, true
	}
	return "", false
}

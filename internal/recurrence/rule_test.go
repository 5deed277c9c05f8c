package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRuleValidate(t *testing.T) {
	start := date(2025, time.March, 3)
	until := date(2025, time.June, 30)

	tests := []struct {
		name    string
		rule    Rule
		wantErr bool
	}{
		{
			name: "daily",
			rule: Rule{Frequency: FrequencyDaily, Interval: 1},
		},
		{
			name: "weekly with days",
			rule: Rule{Frequency: FrequencyWeekly, Interval: 1, DaysOfWeek: []string{"MO", "WE", "FR"}},
		},
		{
			name: "biweekly",
			rule: Rule{Frequency: FrequencyWeekly, Interval: 2, DaysOfWeek: []string{"TU"}, Until: &until},
		},
		{
			name:    "unknown frequency",
			rule:    Rule{Frequency: "HOURLY", Interval: 1},
			wantErr: true,
		},
		{
			name:    "zero interval",
			rule:    Rule{Frequency: FrequencyDaily, Interval: 0},
			wantErr: true,
		},
		{
			name:    "weekly without days",
			rule:    Rule{Frequency: FrequencyWeekly, Interval: 1},
			wantErr: true,
		},
		{
			name:    "bad weekday tag",
			rule:    Rule{Frequency: FrequencyWeekly, Interval: 1, DaysOfWeek: []string{"XX"}},
			wantErr: true,
		},
		{
			name:    "malformed exception",
			rule:    Rule{Frequency: FrequencyDaily, Interval: 1, Exceptions: []string{"03/10/2025"}},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.rule.Validate(start)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRuleValidateUntilBeforeStart(t *testing.T) {
	start := date(2025, time.March, 3)
	until := date(2025, time.February, 1)
	rule := Rule{Frequency: FrequencyDaily, Interval: 1, Until: &until}
	assert.Error(t, rule.Validate(start))
}

func TestRuleValidateNoPatternSentinel(t *testing.T) {
	// A yearly rule whose until already passed is the single-occurrence
	// sentinel, not a misconfigured yearly rule.
	start := date(2025, time.March, 3)
	until := date(2025, time.March, 2)
	rule := Rule{Frequency: FrequencyYearly, Interval: 1, Until: &until}
	require.True(t, rule.IsNoPattern(start))
	assert.NoError(t, rule.Validate(start))
}

func TestIsNoPattern(t *testing.T) {
	today := date(2025, time.March, 10)
	yesterday := date(2025, time.March, 9)
	future := date(2026, time.January, 1)

	assert.True(t, Rule{Frequency: FrequencyYearly, Interval: 1, Until: &yesterday}.IsNoPattern(today))
	assert.False(t, Rule{Frequency: FrequencyYearly, Interval: 1, Until: &future}.IsNoPattern(today))
	assert.False(t, Rule{Frequency: FrequencyYearly, Interval: 2, Until: &yesterday}.IsNoPattern(today))
	assert.False(t, Rule{Frequency: FrequencyDaily, Interval: 1, Until: &yesterday}.IsNoPattern(today))
	assert.False(t, Rule{Frequency: FrequencyYearly, Interval: 1}.IsNoPattern(today))
}

func TestPolicyWireRoundTrip(t *testing.T) {
	today := date(2025, time.March, 10)

	wire := NoPattern().Wire(today)
	require.NotNil(t, wire.Until)
	assert.Equal(t, date(2025, time.March, 9), *wire.Until)
	assert.True(t, wire.IsNoPattern(today))

	// Decoding the sentinel lands back on the single-occurrence policy.
	assert.Equal(t, NoPattern(), PolicyOf(wire, today))

	rule := Rule{Frequency: FrequencyWeekly, Interval: 2, DaysOfWeek: []string{"MO"}}
	policy := PolicyOf(rule, today)
	require.True(t, policy.Recurring)
	assert.Equal(t, rule, policy.Wire(today))
}

func TestPresetCanonical(t *testing.T) {
	freq, interval, ok := PresetDaily.Canonical()
	require.True(t, ok)
	assert.Equal(t, FrequencyDaily, freq)
	assert.Equal(t, 1, interval)

	freq, interval, ok = PresetBiweekly.Canonical()
	require.True(t, ok)
	assert.Equal(t, FrequencyWeekly, freq)
	assert.Equal(t, 2, interval)

	_, _, ok = PresetNone.Canonical()
	assert.False(t, ok)
}

func TestPresetFor(t *testing.T) {
	today := date(2025, time.March, 10)
	yesterday := date(2025, time.March, 9)

	preset, ok := PresetFor(Rule{Frequency: FrequencyYearly, Interval: 1, Until: &yesterday}, today)
	require.True(t, ok)
	assert.Equal(t, PresetNone, preset)

	preset, ok = PresetFor(Rule{Frequency: FrequencyDaily, Interval: 1}, today)
	require.True(t, ok)
	assert.Equal(t, PresetDaily, preset)

	preset, ok = PresetFor(Rule{Frequency: FrequencyWeekly, Interval: 1, DaysOfWeek: []string{"MO", "TH"}}, today)
	require.True(t, ok)
	assert.Equal(t, PresetSpecificDays, preset)

	preset, ok = PresetFor(Rule{Frequency: FrequencyWeekly, Interval: 2, DaysOfWeek: []string{"MO"}}, today)
	require.True(t, ok)
	assert.Equal(t, PresetBiweekly, preset)

	_, ok = PresetFor(Rule{Frequency: FrequencyMonthly, Interval: 1}, today)
	assert.False(t, ok)
}

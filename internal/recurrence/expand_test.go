package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandDaily(t *testing.T) {
	start := time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC)
	horizon := start.AddDate(0, 0, 4)

	got, err := Expand(Rule{Frequency: FrequencyDaily, Interval: 1}, start, horizon)
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, start, got[0])
	assert.Equal(t, start.AddDate(0, 0, 4), got[4])
}

func TestExpandWeeklyOnSpecificDays(t *testing.T) {
	// 2025-03-03 is a Monday.
	start := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	horizon := start.AddDate(0, 0, 13)

	got, err := Expand(Rule{
		Frequency:  FrequencyWeekly,
		Interval:   1,
		DaysOfWeek: []string{"MO", "WE"},
	}, start, horizon)
	require.NoError(t, err)

	var days []string
	for _, ts := range got {
		days = append(days, ts.Format(DateLayout))
		assert.Equal(t, 9, ts.Hour())
	}
	assert.Equal(t, []string{"2025-03-03", "2025-03-05", "2025-03-10", "2025-03-12"}, days)
}

func TestExpandBiweekly(t *testing.T) {
	start := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	horizon := start.AddDate(0, 0, 28)

	got, err := Expand(Rule{
		Frequency:  FrequencyWeekly,
		Interval:   2,
		DaysOfWeek: []string{"MO"},
	}, start, horizon)
	require.NoError(t, err)

	var days []string
	for _, ts := range got {
		days = append(days, ts.Format(DateLayout))
	}
	assert.Equal(t, []string{"2025-03-03", "2025-03-17", "2025-03-31"}, days)
}

func TestExpandSkipsExceptions(t *testing.T) {
	start := time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC)
	horizon := start.AddDate(0, 0, 4)

	got, err := Expand(Rule{
		Frequency:  FrequencyDaily,
		Interval:   1,
		Exceptions: []string{"2025-03-04", "2025-03-06"},
	}, start, horizon)
	require.NoError(t, err)

	var days []string
	for _, ts := range got {
		days = append(days, ts.Format(DateLayout))
	}
	assert.Equal(t, []string{"2025-03-03", "2025-03-05", "2025-03-07"}, days)
}

func TestExpandUntilInclusive(t *testing.T) {
	start := time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC)
	until := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	horizon := start.AddDate(0, 0, 30)

	got, err := Expand(Rule{Frequency: FrequencyDaily, Interval: 1, Until: &until}, start, horizon)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "2025-03-05", got[2].Format(DateLayout))
}

func TestExpandNoPatternYieldsAnchorOnly(t *testing.T) {
	start := time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)
	until := time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)
	horizon := start.AddDate(1, 0, 0)

	got, err := Expand(Rule{Frequency: FrequencyYearly, Interval: 1, Until: &until}, start, horizon)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{start}, got)
}

func TestExpandUnknownFrequency(t *testing.T) {
	start := time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC)
	_, err := Expand(Rule{Frequency: "HOURLY", Interval: 1}, start, start.AddDate(0, 0, 1))
	assert.Error(t, err)
}

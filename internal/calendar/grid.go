package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/vitalsalud/agenda-api/internal/models"
)

// PositionedEvent pairs an event with its computed lane placement.
type PositionedEvent struct {
	Event    models.Event `json:"event"`
	Position Position     `json:"position"`
}

// DayGrid is the view model of a single day lane: 24 hour slots with
// absolutely positioned events.
type DayGrid struct {
	Date   string            `json:"date"`
	Hours  []string          `json:"hours"`
	Events []PositionedEvent `json:"events"`
}

// WeekGrid renders seven day lanes, Monday first.
type WeekGrid struct {
	Start string    `json:"start"`
	Days  []DayGrid `json:"days"`
}

// MonthCell is one day cell of the month grid. Events are capped and
// the overflow is reported so the client can offer a "+N more"
// affordance that navigates to the day.
type MonthCell struct {
	Date      string         `json:"date"`
	InMonth   bool           `json:"inMonth"`
	Today     bool           `json:"today"`
	Events    []models.Event `json:"events"`
	MoreCount int            `json:"moreCount"`
}

// MonthGrid spans the full weeks touching the month, so partial weeks
// from adjacent months are included.
type MonthGrid struct {
	Month string        `json:"month"`
	Weeks [][]MonthCell `json:"weeks"`
}

// BuildDayGrid assembles the day view model for the given date.
func BuildDayGrid(date time.Time, events []models.Event, pixelsPerHour int) DayGrid {
	day := dayOf(date)

	hours := make([]string, 24)
	for h := 0; h < 24; h++ {
		hours[h] = fmt.Sprintf("%02d:00", h)
	}

	var dayEvents []models.Event
	for _, event := range events {
		if sameDay(event.Start, day) {
			dayEvents = append(dayEvents, event)
		}
	}

	positioned := make([]PositionedEvent, 0, len(dayEvents))
	for _, event := range dayEvents {
		positioned = append(positioned, PositionedEvent{
			Event:    event,
			Position: EventPosition(event, dayEvents, pixelsPerHour),
		})
	}

	return DayGrid{
		Date:   day.Format(DateLayout),
		Hours:  hours,
		Events: positioned,
	}
}

// BuildWeekGrid assembles seven day grids for the Monday-start week
// containing the cursor.
func BuildWeekGrid(cursor time.Time, events []models.Event, pixelsPerHour int) WeekGrid {
	start := weekStart(cursor)
	days := make([]DayGrid, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, BuildDayGrid(start.AddDate(0, 0, i), events, pixelsPerHour))
	}
	return WeekGrid{Start: start.Format(DateLayout), Days: days}
}

// BuildMonthGrid assembles the month view model for the cursor's
// month. Each cell holds at most maxPerCell events, ordered by start
// time, with the remainder counted.
func BuildMonthGrid(cursor time.Time, events []models.Event, maxPerCell int, today time.Time) MonthGrid {
	if maxPerCell <= 0 {
		maxPerCell = 3
	}

	first := weekStart(monthStart(cursor))
	last := weekStart(monthEnd(cursor)).AddDate(0, 0, 6)

	byDay := make(map[string][]models.Event)
	for _, event := range events {
		key := dayOf(event.Start).Format(DateLayout)
		byDay[key] = append(byDay[key], event)
	}
	for key := range byDay {
		sortEventsByStart(byDay[key])
	}

	var weeks [][]MonthCell
	for day := first; !day.After(last); day = day.AddDate(0, 0, 7) {
		week := make([]MonthCell, 0, 7)
		for i := 0; i < 7; i++ {
			date := day.AddDate(0, 0, i)
			key := date.Format(DateLayout)
			cellEvents := byDay[key]
			more := 0
			if len(cellEvents) > maxPerCell {
				more = len(cellEvents) - maxPerCell
				cellEvents = cellEvents[:maxPerCell]
			}
			week = append(week, MonthCell{
				Date:      key,
				InMonth:   date.Month() == cursor.Month(),
				Today:     sameDay(date, today),
				Events:    cellEvents,
				MoreCount: more,
			})
		}
		weeks = append(weeks, week)
	}

	return MonthGrid{Month: monthStart(cursor).Format("2006-01"), Weeks: weeks}
}

func sortEventsByStart(events []models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})
}

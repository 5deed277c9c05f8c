package calendar

import (
	"sort"
	"strconv"
	"time"

	"github.com/vitalsalud/agenda-api/internal/models"
)

// DefaultPixelsPerHour is the vertical scale of the day grid.
const DefaultPixelsPerHour = 128

// Position places an event inside a day lane. Top and Height are
// pixels; Left and Width are percentage strings for the horizontal
// slot within the lane.
type Position struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
	Left   string  `json:"left"`
	Width  string  `json:"width"`
}

// overlaps applies the half-open interval test: [a.Start, a.End) and
// [b.Start, b.End) intersect.
func overlaps(a, b models.Event) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

// OverlappingEvents returns the events among candidates that fall on
// the same calendar day as event and whose time interval intersects
// it. The event itself is excluded; input order is preserved.
func OverlappingEvents(event models.Event, candidates []models.Event) []models.Event {
	var result []models.Event
	for _, other := range candidates {
		if other.ID == event.ID {
			continue
		}
		if !sameDay(other.Start, event.Start) {
			continue
		}
		if overlaps(event, other) {
			result = append(result, other)
		}
	}
	return result
}

// EventPosition computes the lane placement of event among the other
// events of the same day. The overlap group (the event plus everything
// intersecting it) is sorted by start time ascending, ties keeping
// input order; the event's rank in that group picks its horizontal
// slot, with every member equally wide. Vertically the event is
// placed at pixelsPerHour per hour from midnight, its height clamped
// at 23:59 when it runs past the day boundary.
func EventPosition(event models.Event, dayEvents []models.Event, pixelsPerHour int) Position {
	if pixelsPerHour <= 0 {
		pixelsPerHour = DefaultPixelsPerHour
	}

	group := make([]models.Event, 0, len(dayEvents)+1)
	seen := false
	for _, other := range dayEvents {
		if other.ID == event.ID {
			group = append(group, other)
			seen = true
			continue
		}
		if sameDay(other.Start, event.Start) && overlaps(event, other) {
			group = append(group, other)
		}
	}
	if !seen {
		group = append(group, event)
	}

	sort.SliceStable(group, func(i, j int) bool {
		return group[i].Start.Before(group[j].Start)
	})

	rank := 0
	for i, member := range group {
		if member.ID == event.ID {
			rank = i
			break
		}
	}

	width := 100.0 / float64(len(group))
	left := width * float64(rank)

	scale := float64(pixelsPerHour)
	top := float64(event.Start.Hour())*scale + float64(event.Start.Minute())*scale/60

	end := event.End
	if !sameDay(event.Start, end) {
		end = dayOf(event.Start).Add(23*time.Hour + 59*time.Minute)
	}
	minutes := end.Sub(event.Start).Minutes()
	if minutes < 0 {
		minutes = 0
	}
	height := minutes * scale / 60

	return Position{
		Top:    top,
		Height: height,
		Left:   formatPercent(left),
		Width:  formatPercent(width),
	}
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

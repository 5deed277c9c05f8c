package calendar

import (
	"sync"
	"time"

	"github.com/vitalsalud/agenda-api/internal/models"
)

// View holds the state of one mounted calendar: display mode, cursor
// date, the active filter, loaded events and dialog/selection state.
// It must be created through NewView; there is no usable zero value.
//
// Fetches are guarded by a generation counter: every cursor, mode or
// filter change bumps the generation, and results tagged with an older
// generation are discarded. A slow response can therefore never
// overwrite the state of a newer request.
type View struct {
	mu sync.Mutex

	resolver *Resolver
	mode     Mode
	cursor   time.Time
	base     models.EventFilter

	events     []models.Event
	generation uint64

	selected              *models.Event
	newEventDialogOpen    bool
	manageEventDialogOpen bool
}

// NewView creates a calendar view at the given cursor date.
func NewView(resolver *Resolver, base models.EventFilter, cursor time.Time, mode Mode) *View {
	if !mode.Valid() {
		mode = ModeMonth
	}
	return &View{
		resolver: resolver,
		mode:     mode,
		cursor:   dayOf(cursor),
		base:     base,
	}
}

// Mode returns the current display mode.
func (v *View) Mode() Mode {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.mode
}

// Cursor returns the current cursor date.
func (v *View) Cursor() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cursor
}

// SetMode switches the display mode. Any mode is reachable from any
// other; the cursor is kept.
func (v *View) SetMode(mode Mode) uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	if mode.Valid() && mode != v.mode {
		v.mode = mode
		v.generation++
	}
	return v.generation
}

// SetFilter replaces the base filter (staff, branch, status controls).
func (v *View) SetFilter(base models.EventFilter) uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.base = base
	v.generation++
	return v.generation
}

// Next advances the cursor by one day, week or month per the mode.
func (v *View) Next() uint64 {
	return v.step(1)
}

// Prev retreats the cursor by one day, week or month per the mode.
func (v *View) Prev() uint64 {
	return v.step(-1)
}

func (v *View) step(direction int) uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	switch v.mode {
	case ModeDay:
		v.cursor = v.cursor.AddDate(0, 0, direction)
	case ModeWeek:
		v.cursor = v.cursor.AddDate(0, 0, 7*direction)
	default:
		v.cursor = v.cursor.AddDate(0, direction, 0)
	}
	v.generation++
	return v.generation
}

// CurrentFilter resolves the complete filter for the current cursor
// and mode, together with the generation it belongs to.
func (v *View) CurrentFilter() (models.EventFilter, uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.resolver.Normalize(v.base, v.cursor, v.mode), v.generation
}

// ApplyEvents installs fetched events if they belong to the latest
// generation. Stale results are dropped and false is returned.
func (v *View) ApplyEvents(generation uint64, events []models.Event) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if generation != v.generation {
		return false
	}
	v.events = events
	return true
}

// Events returns the currently loaded events.
func (v *View) Events() []models.Event {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.events
}

// VisibleRange derives the day span rendered for the current mode:
// the cursor day, its Monday-start week, or the full weeks covering
// its month.
func (v *View) VisibleRange() (time.Time, time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()
	switch v.mode {
	case ModeDay:
		return v.cursor, v.cursor
	case ModeWeek:
		start := weekStart(v.cursor)
		return start, start.AddDate(0, 0, 6)
	default:
		start := weekStart(monthStart(v.cursor))
		end := weekStart(monthEnd(v.cursor)).AddDate(0, 0, 6)
		return start, end
	}
}

// Select marks an event as selected and opens the manage dialog.
func (v *View) Select(event models.Event) {
	v.mu.Lock()
	defer v.mu.Unlock()
	selected := event
	v.selected = &selected
	v.manageEventDialogOpen = true
}

// Selected returns the selected event, if any.
func (v *View) Selected() *models.Event {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selected
}

// OpenNewEventDialog opens the creation dialog.
func (v *View) OpenNewEventDialog() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.newEventDialogOpen = true
}

// CloseNewEventDialog closes the creation dialog.
func (v *View) CloseNewEventDialog() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.newEventDialogOpen = false
}

// CloseManageDialog closes the manage dialog and clears the selection.
func (v *View) CloseManageDialog() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.manageEventDialogOpen = false
	v.selected = nil
}

// DialogState reports the dialog visibility flags.
func (v *View) DialogState() (newEvent bool, manageEvent bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.newEventDialogOpen, v.manageEventDialogOpen
}

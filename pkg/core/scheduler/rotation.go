package scheduler

import (
	"github.com/oakmere/surveyor-rota/pkg/core/model"
)

const (
	// rotationBlockDays keys the on-duty member: two-week turns
	rotationBlockDays = 14

	// rotationStintSpanDays marks a completed stint: a first night in week
	// one and a closing Saturday night in week two span at least 12 days
	rotationStintSpanDays = 12

	// rotationRestDays is the mandatory rest after a stint ends on a Saturday
	rotationRestDays = 3
)

// NightShiftTracking records one rotation member's progress through their
// stint and any mandatory rest days owed
type NightShiftTracking struct {
	ConsecutiveNightWeeks int
	LastNightShiftDate    model.DateKey
	NightShiftsInRotation []model.DateKey
	RequiredDaysOff       map[model.DateKey]bool
}

// rotationTracker drives the fixed night-shift rotation: a configured list
// of named staff who take night cover in two-week turns
type rotationTracker struct {
	roster      []*model.Surveyor
	tracking    map[string]*NightShiftTracking
	windowStart model.DateKey
}

// newRotationTracker resolves the configured names against the active
// surveyor list, preserving rotation order. Names with no active match are
// skipped.
func newRotationTracker(names []string, active []model.Surveyor, windowStart model.DateKey) *rotationTracker {
	t := &rotationTracker{
		tracking:    make(map[string]*NightShiftTracking),
		windowStart: windowStart,
	}
	for _, name := range names {
		for i := range active {
			if active[i].Name == name {
				t.roster = append(t.roster, &active[i])
				t.tracking[active[i].ID] = &NightShiftTracking{
					RequiredDaysOff: make(map[model.DateKey]bool),
				}
				break
			}
		}
	}
	if len(t.roster) == 0 {
		return nil
	}
	return t
}

// memberFor selects the rotation member on duty for a date, keyed by
// two-week blocks since the window start
func (t *rotationTracker) memberFor(date model.DateKey) *model.Surveyor {
	days := model.DaysBetween(t.windowStart, date)
	if days < 0 {
		return nil
	}
	idx := (days / rotationBlockDays) % len(t.roster)
	return t.roster[idx]
}

// inRestWindow reports whether a tracked member owes mandatory rest on the
// given date. Untracked surveyors are never resting.
func (t *rotationTracker) inRestWindow(surveyorID string, date model.DateKey) bool {
	tr, ok := t.tracking[surveyorID]
	return ok && tr.RequiredDaysOff[date]
}

// tryAssign attempts to put the on-duty rotation member on the night shift
// for the date. It reports the assigned surveyor ID and whether the
// assignment happened; an unavailable member simply yields to the general
// candidate search.
func (t *rotationTracker) tryAssign(r *run, date model.DateKey) (string, bool) {
	member := t.memberFor(date)
	if member == nil {
		return "", false
	}
	if !member.IsAvailable(date) {
		return "", false
	}
	if t.inRestWindow(member.ID, date) {
		return "", false
	}
	if r.assignments.HasWorking(date, member.ID) {
		return "", false
	}

	r.assign(member, date, model.ShiftNight)
	t.recordNightShift(member.ID, date)
	return member.ID, true
}

// recordNightShift advances the member's stint. A stint that spans two full
// weeks and ends on a Saturday books the next three calendar days as
// mandatory rest and resets the stint.
func (t *rotationTracker) recordNightShift(surveyorID string, date model.DateKey) {
	tr := t.tracking[surveyorID]
	tr.NightShiftsInRotation = append(tr.NightShiftsInRotation, date)
	tr.LastNightShiftDate = date

	if !date.IsSaturday() {
		return
	}
	stintStart := tr.NightShiftsInRotation[0]
	if model.DaysBetween(stintStart, date) < rotationStintSpanDays {
		return
	}

	for i := 1; i <= rotationRestDays; i++ {
		tr.RequiredDaysOff[date.AddDays(i)] = true
	}
	tr.ConsecutiveNightWeeks++
	tr.NightShiftsInRotation = nil
}

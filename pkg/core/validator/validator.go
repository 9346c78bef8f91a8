// Package validator inspects a proposed fortnight roster and reports rule
// violations as human-readable issue strings. It is pure and deterministic:
// the same input always yields the same ordered issue list, missing maps
// default to empty, and nothing is ever mutated or auto-corrected.
package validator

import (
	"time"

	"github.com/oakmere/surveyor-rota/pkg/core/model"
)

// ShiftCap is the default fortnight working-shift target for a surveyor
const ShiftCap = 9

// NightWorkerShiftCap is the fortnight target for night-shift workers, who
// are scheduled Monday to Friday only
const NightWorkerShiftCap = 10

// nightWorkerThreshold classifies a surveyor as a night-shift worker once
// they hold this many night shifts, regardless of day-shift count
const nightWorkerThreshold = 5

// Input carries everything the validator needs for one pass. Only
// Surveyors, Anchor and Area are required; all maps default to empty.
type Input struct {
	Surveyors   []model.Surveyor
	Assignments model.AssignmentsByDate

	// OtherArea is the sibling area's roster for the same window, used only
	// to count cross-area workload (a surveyor's capacity is global).
	OtherArea model.AssignmentsByDate

	Anchor time.Time
	Area   model.Area

	// Demand is optional; the demand stage is skipped when empty
	Demand *model.Demand

	// WeekendHistory is optional; weekend dates worked in the 21 days
	// before the window block new weekend assignments
	WeekendHistory model.WeekendHistory
}

// ValidateRoster runs every rule stage in order and returns the combined
// issue list. Stages never short-circuit; each appends independently.
// Area-preference mismatches are deliberately not checked here - manual
// overrides across areas are permitted by policy.
func ValidateRoster(in Input) []string {
	rc := newRunContext(in)

	issues := []string{}
	issues = append(issues, rc.checkDuplicateShifts()...)
	issues = append(issues, rc.checkShiftCounts()...)
	issues = append(issues, rc.checkDemand()...)
	issues = append(issues, rc.checkWeekendRule()...)
	issues = append(issues, rc.checkSaturdaySpacing()...)
	return issues
}

// tally accumulates one surveyor's workload over the window
type tally struct {
	dayShifts    int
	nightShifts  int
	workingDates []model.DateKey
	weekendDates []model.DateKey
	saturdays    []model.DateKey
	crossArea    int
}

func (t *tally) workingShifts() int {
	return len(t.workingDates)
}

// isNightWorker classifies a surveyor as primarily working nights
func (t *tally) isNightWorker() bool {
	return t.nightShifts > t.dayShifts || t.nightShifts >= nightWorkerThreshold
}

// runContext holds the window and per-surveyor tallies shared by all stages
type runContext struct {
	in       Input
	window   []model.DateKey
	assigned []model.Surveyor
	tallies  map[string]*tally
}

func newRunContext(in Input) *runContext {
	rc := &runContext{
		in:      in,
		window:  model.FortnightWindow(in.Anchor),
		tallies: make(map[string]*tally),
	}

	for _, s := range in.Surveyors {
		t := &tally{}
		for _, date := range rc.window {
			for _, asgn := range in.Assignments[date] {
				if asgn.SurveyorID != s.ID || !asgn.Shift.IsWorking() {
					continue
				}
				switch asgn.Shift {
				case model.ShiftDay:
					t.dayShifts++
				case model.ShiftNight:
					t.nightShifts++
				}
				t.workingDates = append(t.workingDates, date)
				if date.IsWeekend() {
					t.weekendDates = append(t.weekendDates, date)
				}
				if date.IsSaturday() {
					t.saturdays = append(t.saturdays, date)
				}
			}
			for _, asgn := range in.OtherArea[date] {
				if asgn.SurveyorID == s.ID && asgn.Shift.IsWorking() {
					t.crossArea++
				}
			}
		}

		// Surveyors with no working assignment in the window are presumed
		// intentionally excluded (e.g. on leave for the whole period) and
		// are not analysed.
		if len(t.workingDates) == 0 {
			continue
		}
		rc.assigned = append(rc.assigned, s)
		rc.tallies[s.ID] = t
	}

	return rc
}

// availableDays counts the window days a surveyor could work: Sundays and
// non-availability dates are excluded, and night-shift workers additionally
// exclude weekends
func (rc *runContext) availableDays(s *model.Surveyor, nightWorker bool) int {
	available := 0
	for _, date := range rc.window {
		if date.IsSunday() {
			continue
		}
		if nightWorker && date.IsWeekend() {
			continue
		}
		if !s.IsAvailable(date) {
			continue
		}
		available++
	}
	return available
}

// unavailableDates returns the surveyor's non-availability dates that fall
// inside the window, in window order
func (rc *runContext) unavailableDates(s *model.Surveyor) []model.DateKey {
	var dates []model.DateKey
	for _, date := range rc.window {
		if !s.IsAvailable(date) {
			dates = append(dates, date)
		}
	}
	return dates
}

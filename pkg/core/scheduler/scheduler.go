// Package scheduler constructs a full fortnight of assignments honoring the
// same constraint vocabulary the validator checks: demand fill first, then
// shift-count balancing, then a deduplication safety net. The scheduler
// never mutates caller-owned inputs and reports unmet demand as issues
// rather than errors.
package scheduler

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/oakmere/surveyor-rota/pkg/core/model"
)

// ShiftTarget is the fortnight working-shift target and hard cap applied
// during auto-population
const ShiftTarget = 9

// Input carries everything one auto-populate run needs. Existing
// assignments are preserved verbatim and count toward targets.
type Input struct {
	Surveyors      []model.Surveyor
	Anchor         time.Time
	WeekendHistory model.WeekendHistory
	Existing       model.AssignmentsByDate
	Area           model.Area

	// Demand is optional; missing dates fall back to the area defaults
	Demand *model.Demand

	// NightRotation names the fixed night-shift rotation staff, in rotation
	// order. Only the SOUTH area runs a rotation.
	NightRotation []string

	// Rand drives the balancing phase's date shuffle. Nil seeds from the
	// clock; tests inject a fixed seed for reproducibility.
	Rand *rand.Rand
}

// Result is the outcome of a successful run
type Result struct {
	Success     bool
	Assignments model.AssignmentsByDate
	Issues      []string
	Stats       map[string]*SurveyorStats
}

// SurveyorStats tracks one surveyor's accumulated load through a run
type SurveyorStats struct {
	ShiftsAssigned      int
	WeekendDaysAssigned int
	WeekendDays         []model.DateKey
	SaturdaysWorked     []model.DateKey
	Assignments         []model.DateKey
}

// AutoPopulate fills the fortnight window for one area. It returns an error
// only when there are no active surveyors at all; every other problem is
// reported through Result.Issues.
func AutoPopulate(in Input) (*Result, error) {
	var active []model.Surveyor
	for _, s := range in.Surveyors {
		if s.Active {
			active = append(active, s)
		}
	}
	if len(active) == 0 {
		return nil, errors.New("no active surveyors to schedule")
	}

	r := newRun(in, active)
	r.fillDemand()
	r.balance()
	r.dedupe()

	return &Result{
		Success:     true,
		Assignments: r.assignments,
		Issues:      r.issues,
		Stats:       r.stats,
	}, nil
}

// run is the working state of one auto-populate pass
type run struct {
	in             Input
	window         []model.DateKey
	active         []model.Surveyor
	assignments    model.AssignmentsByDate
	stats          map[string]*SurveyorStats
	canWorkWeekend map[string]bool
	rotation       *rotationTracker
	issues         []string
	rnd            *rand.Rand
}

func newRun(in Input, active []model.Surveyor) *run {
	r := &run{
		in:             in,
		window:         model.FortnightWindow(in.Anchor),
		active:         active,
		stats:          make(map[string]*SurveyorStats),
		canWorkWeekend: make(map[string]bool),
		issues:         []string{},
		rnd:            in.Rand,
	}
	if r.rnd == nil {
		r.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if in.Existing != nil {
		r.assignments = in.Existing.Clone()
	} else {
		r.assignments = make(model.AssignmentsByDate)
	}

	// Locked assignments count toward every target, so prefill stats from
	// them before any new assignment is made.
	for _, date := range r.window {
		for _, asgn := range r.assignments[date] {
			if !asgn.Shift.IsWorking() {
				continue
			}
			st := r.statsFor(asgn.SurveyorID)
			st.ShiftsAssigned++
			st.Assignments = append(st.Assignments, date)
			if date.IsWeekend() {
				st.WeekendDaysAssigned++
				st.WeekendDays = append(st.WeekendDays, date)
			}
			if date.IsSaturday() {
				st.SaturdaysWorked = append(st.SaturdaysWorked, date)
			}
		}
	}

	windowStart := r.window[0]
	for _, s := range active {
		r.canWorkWeekend[s.ID] = !in.WeekendHistory.WorkedWeekendWithin(s.ID, windowStart)
	}

	if in.Area == model.AreaSouth && len(in.NightRotation) > 0 {
		r.rotation = newRotationTracker(in.NightRotation, active, windowStart)
	}

	return r
}

func (r *run) statsFor(surveyorID string) *SurveyorStats {
	st, ok := r.stats[surveyorID]
	if !ok {
		st = &SurveyorStats{}
		r.stats[surveyorID] = st
	}
	return st
}

// fillDemand is phase 1: walk the window in order and fill each date's
// resolved day and night demand
func (r *run) fillDemand() {
	for _, date := range r.window {
		// Sundays carry zero coverage; clear anything already there.
		if date.IsSunday() {
			delete(r.assignments, date)
			continue
		}

		need := r.in.Demand.ResolveOrDefault(date, r.in.Area)
		r.fillDay(date, need.Day)
		r.fillNight(date, need.Night)
	}
}

func (r *run) fillDay(date model.DateKey, dayNeeded int) {
	for {
		assigned := r.assignments.CountShift(date, model.ShiftDay)
		if assigned >= dayNeeded {
			return
		}
		candidate := r.findBestCandidate(date, model.ShiftDay, nil)
		if candidate == nil {
			r.issues = append(r.issues, fmt.Sprintf(
				"Unable to meet day demand on %s: %d of %d filled",
				date.Display(), assigned, dayNeeded))
			return
		}
		r.assign(candidate, date, model.ShiftDay)
	}
}

// nightState is the per-date night-fill state machine: the rotation is
// attempted at most once, decrements remaining need by exactly one on
// success, and the residual is filled by general candidate search.
type nightState struct {
	rotationAttempted  bool
	rotationAssignedID string
	nightRemaining     int
}

func (r *run) fillNight(date model.DateKey, nightNeeded int) {
	st := nightState{
		nightRemaining: nightNeeded - r.assignments.CountShift(date, model.ShiftNight),
	}

	if r.rotation != nil && st.nightRemaining > 0 {
		st.rotationAttempted = true
		if id, ok := r.rotation.tryAssign(r, date); ok {
			st.rotationAssignedID = id
			st.nightRemaining--
		}
	}

	for st.nightRemaining > 0 {
		// Exclude the rotation member just assigned so the residual fill
		// cannot double-book them.
		exclude := map[string]bool{}
		if st.rotationAssignedID != "" {
			exclude[st.rotationAssignedID] = true
		}
		for _, asgn := range r.assignments[date] {
			if asgn.Shift == model.ShiftNight {
				exclude[asgn.SurveyorID] = true
			}
		}

		candidate := r.findBestCandidate(date, model.ShiftNight, exclude)
		if candidate == nil {
			assigned := r.assignments.CountShift(date, model.ShiftNight)
			r.issues = append(r.issues, fmt.Sprintf(
				"Unable to meet night demand on %s: %d of %d filled",
				date.Display(), assigned, nightNeeded))
			return
		}
		r.assign(candidate, date, model.ShiftNight)
		st.nightRemaining--
	}
}

// assign adds a new working assignment and updates the surveyor's stats
func (r *run) assign(s *model.Surveyor, date model.DateKey, shift model.Shift) {
	r.assignments[date] = append(r.assignments[date], model.Assignment{
		ID:         newAssignmentID(),
		SurveyorID: s.ID,
		Shift:      shift,
	})

	st := r.statsFor(s.ID)
	st.ShiftsAssigned++
	st.Assignments = append(st.Assignments, date)
	if date.IsWeekend() {
		st.WeekendDaysAssigned++
		st.WeekendDays = append(st.WeekendDays, date)
	}
	if date.IsSaturday() {
		st.SaturdaysWorked = append(st.SaturdaysWorked, date)
	}
}

// dedupe rebuilds the assignment lists keeping only the first entry per
// (date, surveyor, shift). A removal here means an earlier phase
// double-booked; it is repaired and reported so operators can audit it.
func (r *run) dedupe() {
	dates := make([]model.DateKey, 0, len(r.assignments))
	for date := range r.assignments {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })

	for _, date := range dates {
		seen := make(map[string]bool)
		kept := make([]model.Assignment, 0, len(r.assignments[date]))
		for _, asgn := range r.assignments[date] {
			key := asgn.SurveyorID + "|" + string(asgn.Shift)
			if seen[key] {
				r.issues = append(r.issues, fmt.Sprintf(
					"Removed duplicate %s assignment for surveyor %s on %s",
					asgn.Shift, asgn.SurveyorID, date.Display()))
				continue
			}
			seen[key] = true
			kept = append(kept, asgn)
		}
		r.assignments[date] = kept
	}
}

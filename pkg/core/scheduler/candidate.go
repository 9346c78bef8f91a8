package scheduler

import (
	"github.com/google/uuid"

	"github.com/oakmere/surveyor-rota/pkg/core/model"
)

// Candidate scoring values. Lower totals win; a negative value makes a
// candidate more attractive.
const (
	// scoreLoadSpread penalizes each shift already assigned, spreading load
	scoreLoadSpread = 10

	// scorePreferredShift rewards a match with the surveyor's shift preference
	scorePreferredShift = -20

	// scoreMismatchedShift penalizes assigning against a stated preference
	scoreMismatchedShift = 10

	// scoreHomeArea rewards surveyors whose area preference is this roster
	scoreHomeArea = -15

	// scoreFreshWeekend rewards a first weekend day for the fortnight
	scoreFreshWeekend = -10

	// scoreClustering penalizes each assignment within the trailing 2 days
	scoreClustering = 15

	// scoreBackToBack penalizes working the immediately preceding day
	scoreBackToBack = 10

	// scoreWeekday mildly biases fill toward weekdays
	scoreWeekday = -5
)

func newAssignmentID() string {
	return uuid.New().String()
}

// findBestCandidate returns the lowest-scoring eligible surveyor for the
// given date and shift, or nil when nobody survives the hard filters. Ties
// are broken by input order.
func (r *run) findBestCandidate(date model.DateKey, shift model.Shift, exclude map[string]bool) *model.Surveyor {
	var best *model.Surveyor
	bestScore := 0

	for i := range r.active {
		s := &r.active[i]
		if exclude[s.ID] {
			continue
		}
		if !r.isEligible(s, date, shift) {
			continue
		}
		score := r.score(s, date, shift)
		if best == nil || score < bestScore {
			best = s
			bestScore = score
		}
	}

	return best
}

// isEligible applies the hard filters shared by demand fill and balancing.
// Area preference is a strict exclusion here - auto-populate never
// overrides it, unlike manual edits.
func (r *run) isEligible(s *model.Surveyor, date model.DateKey, shift model.Shift) bool {
	if date.IsSunday() {
		return false
	}
	if r.assignments.HasWorking(date, s.ID) {
		return false
	}
	if s.AreaPreference != nil && *s.AreaPreference != r.in.Area {
		return false
	}
	if !s.IsAvailable(date) {
		return false
	}
	if shift == model.ShiftNight && r.rotation != nil && r.rotation.inRestWindow(s.ID, date) {
		return false
	}

	st := r.statsFor(s.ID)
	if date.IsWeekend() {
		if !r.canWorkWeekend[s.ID] || st.WeekendDaysAssigned >= 1 {
			return false
		}
	}
	if date.IsSaturday() && violatesSaturdaySpacing(st.SaturdaysWorked, date) {
		return false
	}
	if st.ShiftsAssigned >= ShiftTarget {
		return false
	}

	return true
}

// violatesSaturdaySpacing applies the same spacing rules the validator
// checks: no Saturdays exactly 7 days apart, and at most one worked
// Saturday per 3-consecutive-Saturday span (any pair within 14 days).
func violatesSaturdaySpacing(worked []model.DateKey, date model.DateKey) bool {
	for _, sat := range worked {
		gap := model.DaysBetween(sat, date)
		if gap < 0 {
			gap = -gap
		}
		if gap > 0 && gap <= 14 {
			return true
		}
	}
	return false
}

func (r *run) score(s *model.Surveyor, date model.DateKey, shift model.Shift) int {
	st := r.statsFor(s.ID)

	score := scoreLoadSpread * st.ShiftsAssigned

	if s.ShiftPreference != nil {
		if *s.ShiftPreference == shift {
			score += scorePreferredShift
		} else {
			score += scoreMismatchedShift
		}
	}
	if s.AreaPreference != nil && *s.AreaPreference == r.in.Area {
		score += scoreHomeArea
	}
	if date.IsWeekend() && st.WeekendDaysAssigned == 0 {
		score += scoreFreshWeekend
	}

	score += scoreClustering * countRecent(st.Assignments, date)
	if assignedOn(st.Assignments, date.AddDays(-1)) {
		score += scoreBackToBack
	}
	if !date.IsWeekend() {
		score += scoreWeekday
	}

	return score
}

// countRecent counts assignments within the trailing 2 days of date
func countRecent(assigned []model.DateKey, date model.DateKey) int {
	count := 0
	for _, d := range assigned {
		gap := model.DaysBetween(d, date)
		if gap == 1 || gap == 2 {
			count++
		}
	}
	return count
}

func assignedOn(assigned []model.DateKey, date model.DateKey) bool {
	for _, d := range assigned {
		if d == date {
			return true
		}
	}
	return false
}

package scheduler

import (
	"sort"

	"github.com/oakmere/surveyor-rota/pkg/core/model"
)

// balanceIterations bounds the fixed-point balancing loop
const balanceIterations = 20

// balance is phase 2: lift under-target surveyors toward the shift target
// by adding DAY shifts where day demand still has room. Demand is never
// exceeded and NIGHT shifts are never added here.
func (r *run) balance() {
	var eligible []*model.Surveyor
	for i := range r.active {
		s := &r.active[i]
		if s.AreaPreference == nil || *s.AreaPreference == r.in.Area {
			eligible = append(eligible, s)
		}
	}

	for iter := 0; iter < balanceIterations; iter++ {
		changed := false

		// Most deprived surveyors get first pick each iteration
		sort.SliceStable(eligible, func(i, j int) bool {
			return r.statsFor(eligible[i].ID).ShiftsAssigned < r.statsFor(eligible[j].ID).ShiftsAssigned
		})

		for _, s := range eligible {
			if r.statsFor(s.ID).ShiftsAssigned >= ShiftTarget {
				continue
			}
			if r.tryBalanceAssign(s) {
				changed = true
			}
		}

		if !changed {
			break
		}
	}
}

// tryBalanceAssign scans the window in a shuffled order and adds one DAY
// shift on the first date that passes all phase-1 filters and whose day
// count is strictly below demand while night demand is already met
func (r *run) tryBalanceAssign(s *model.Surveyor) bool {
	dates := make([]model.DateKey, len(r.window))
	copy(dates, r.window)
	r.rnd.Shuffle(len(dates), func(i, j int) {
		dates[i], dates[j] = dates[j], dates[i]
	})

	for _, date := range dates {
		if !r.isEligible(s, date, model.ShiftDay) {
			continue
		}
		need := r.in.Demand.ResolveOrDefault(date, r.in.Area)
		if r.assignments.CountShift(date, model.ShiftDay) >= need.Day {
			continue
		}
		if r.assignments.CountShift(date, model.ShiftNight) < need.Night {
			continue
		}
		r.assign(s, date, model.ShiftDay)
		return true
	}

	return false
}

package validator

import (
	"fmt"

	"github.com/oakmere/surveyor-rota/pkg/core/model"
)

// checkDemand flags dates where staffing falls short of the resolved
// demand: day shifts on weekdays, night shifts on any day (shortfall or
// excess). Saturday day demand is a maximum by policy, so its shortfall
// is computed but never reported.
func (rc *runContext) checkDemand() []string {
	if rc.in.Demand.IsEmpty() {
		return nil
	}

	var issues []string

	for _, date := range rc.window {
		need, ok := rc.in.Demand.Resolve(date)
		if !ok {
			continue
		}

		dayCount := rc.in.Assignments.CountShift(date, model.ShiftDay)
		nightCount := rc.in.Assignments.CountShift(date, model.ShiftNight)

		dayShortfall := need.Day - dayCount
		if !date.IsWeekend() && dayShortfall > 0 {
			issues = append(issues, fmt.Sprintf(
				"Day shift shortfall on %s: %d assigned of %d required (shortfall %d; %s)",
				date.Display(), dayCount, need.Day, dayShortfall, rc.shortfallReason(date)))
		}

		nightShortfall := need.Night - nightCount
		if nightShortfall > 0 {
			issues = append(issues, fmt.Sprintf(
				"Night shift shortfall on %s: %d assigned of %d required (shortfall %d; %s)",
				date.Display(), nightCount, need.Night, nightShortfall, rc.shortfallReason(date)))
		} else if nightShortfall < 0 {
			issues = append(issues, fmt.Sprintf(
				"Night shift excess on %s: %d assigned of %d required",
				date.Display(), nightCount, need.Night))
		}
	}

	return issues
}

// shortfallReason explains why a shortfall exists: how many surveyors could
// still take the slot, or why none can
func (rc *runContext) shortfallReason(date model.DateKey) string {
	eligible, onLeave, atCap := 0, 0, 0

	for i := range rc.in.Surveyors {
		s := &rc.in.Surveyors[i]
		if rc.in.Assignments.HasWorking(date, s.ID) {
			continue
		}
		switch {
		case !s.IsAvailable(date):
			onLeave++
		case rc.windowShiftCount(s.ID) >= ShiftCap:
			atCap++
		default:
			eligible++
		}
	}

	if eligible > 0 {
		return fmt.Sprintf("%d eligible surveyor(s) unassigned", eligible)
	}
	return fmt.Sprintf("no eligible surveyors: %d on leave, %d at shift cap", onLeave, atCap)
}

// windowShiftCount returns the surveyor's working-shift count over the
// window, zero for surveyors with no assignments
func (rc *runContext) windowShiftCount(surveyorID string) int {
	if t, ok := rc.tallies[surveyorID]; ok {
		return t.workingShifts()
	}
	return 0
}

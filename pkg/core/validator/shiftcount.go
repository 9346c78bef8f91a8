package validator

import (
	"fmt"
	"strings"

	"github.com/oakmere/surveyor-rota/pkg/core/model"
)

// checkShiftCounts verifies every assigned surveyor's fortnight total
// against min(target, availableDays). Night-shift workers get the 10-shift
// Monday-to-Friday policy and are flagged if scheduled on a weekend.
// Cross-area shifts count toward the total before comparison.
func (rc *runContext) checkShiftCounts() []string {
	var issues []string

	for i := range rc.assigned {
		s := &rc.assigned[i]
		t := rc.tallies[s.ID]

		nightWorker := t.isNightWorker()
		if nightWorker {
			for _, date := range t.weekendDates {
				issues = append(issues, fmt.Sprintf(
					"%s is a night-shift worker but is assigned to a weekend on %s",
					s.Name, date.Display()))
			}
		}

		target := ShiftCap
		if nightWorker {
			target = NightWorkerShiftCap
		}

		available := rc.availableDays(s, nightWorker)
		expected := min(target, available)
		actual := t.workingShifts() + t.crossArea

		if actual == expected {
			continue
		}

		msg := fmt.Sprintf("%s has %d working shifts but expected %d", s.Name, actual, expected)
		if unavailable := rc.unavailableDates(s); len(unavailable) > 0 {
			ranges := model.FormatDateRanges(unavailable)
			msg += fmt.Sprintf(" (Not available from %s)", strings.Join(ranges, ", "))
		}
		issues = append(issues, msg)
	}

	return issues
}

package validator

import (
	"fmt"

	"github.com/oakmere/surveyor-rota/pkg/core/model"
)

// checkSaturdaySpacing flags consecutive worked Saturdays (exactly 7 days
// apart) and more than one worked Saturday inside a 3-consecutive-Saturday
// span
func (rc *runContext) checkSaturdaySpacing() []string {
	var issues []string

	for i := range rc.assigned {
		s := &rc.assigned[i]
		t := rc.tallies[s.ID]
		if len(t.saturdays) < 2 {
			continue
		}

		for a := 0; a < len(t.saturdays); a++ {
			for b := a + 1; b < len(t.saturdays); b++ {
				gap := model.DaysBetween(t.saturdays[a], t.saturdays[b])
				if gap < 0 {
					gap = -gap
				}
				if gap == 7 {
					issues = append(issues, fmt.Sprintf(
						"%s works consecutive Saturdays (%s and %s)",
						s.Name, t.saturdays[a].Display(), t.saturdays[b].Display()))
				}
				// Two worked Saturdays within 14 days always share a span
				// of 3 consecutive Saturdays.
				if gap <= 14 {
					issues = append(issues, fmt.Sprintf(
						"%s works more than one Saturday in a 3-Saturday window (%s and %s)",
						s.Name, t.saturdays[a].Display(), t.saturdays[b].Display()))
				}
			}
		}
	}

	return issues
}

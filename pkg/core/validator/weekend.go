package validator

import (
	"fmt"
	"strings"

	"github.com/oakmere/surveyor-rota/pkg/core/model"
)

// checkWeekendRule flags surveyors working more than one weekend day this
// fortnight, and any weekend work at all when the history shows a weekend
// worked within the preceding 21 days
func (rc *runContext) checkWeekendRule() []string {
	var issues []string

	windowStart := rc.window[0]

	for i := range rc.assigned {
		s := &rc.assigned[i]
		t := rc.tallies[s.ID]

		if len(t.weekendDates) > 1 {
			issues = append(issues, fmt.Sprintf(
				"%s works %d weekend days this fortnight (max 1)",
				s.Name, len(t.weekendDates)))
		}

		if len(t.weekendDates) > 0 && rc.in.WeekendHistory.WorkedWeekendWithin(s.ID, windowStart) {
			dates := make([]string, len(t.weekendDates))
			for j, d := range t.weekendDates {
				dates[j] = d.Display()
			}
			issues = append(issues, fmt.Sprintf(
				"%s: weekend rule violated - worked a weekend within the last %d days but is assigned %s",
				s.Name, model.WeekendHistoryDays, strings.Join(dates, ", ")))
		}
	}

	return issues
}

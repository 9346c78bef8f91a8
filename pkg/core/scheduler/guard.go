package scheduler

import (
	"fmt"

	"github.com/oakmere/surveyor-rota/pkg/core/model"
)

// CanAssign is the synchronous precondition for a single manual edit: a
// surveyor may not be given a second working shift on the same date. All
// other rules stay advisory until a full validation pass runs.
func CanAssign(byDate model.AssignmentsByDate, date model.DateKey, surveyorID string) (bool, string) {
	if byDate.HasWorking(date, surveyorID) {
		return false, fmt.Sprintf("surveyor already has a working shift on %s", date.Display())
	}
	return true, ""
}

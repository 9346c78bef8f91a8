package validator

import "fmt"

// checkDuplicateShifts flags any (surveyor, date) holding more than one
// working assignment - the central uniqueness invariant
func (rc *runContext) checkDuplicateShifts() []string {
	var issues []string

	for _, s := range rc.assigned {
		for _, date := range rc.window {
			working := rc.in.Assignments.WorkingFor(date, s.ID)
			if len(working) > 1 {
				issues = append(issues, fmt.Sprintf(
					"%s has multiple working shifts on %s (%d assignments)",
					s.Name, date.Display(), len(working)))
			}
		}
	}

	return issues
}

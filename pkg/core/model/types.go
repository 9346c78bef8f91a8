package model

// Area identifies one of the two independently rostered service territories
type Area string

const (
	AreaSouth Area = "SOUTH"
	AreaNorth Area = "NORTH"
)

// Other returns the sibling service area
func (a Area) Other() Area {
	if a == AreaSouth {
		return AreaNorth
	}
	return AreaSouth
}

// Shift is the kind of working shift. Off is never persisted as a working
// assignment; setting a shift to Off deletes the assignment instead.
type Shift string

const (
	ShiftDay   Shift = "DAY"
	ShiftNight Shift = "NIGHT"
	ShiftOff   Shift = "OFF"
)

// IsWorking returns true for shifts that count toward a surveyor's load
func (s Shift) IsWorking() bool {
	return s == ShiftDay || s == ShiftNight
}

// Surveyor represents a field-survey staff member. Immutable for the
// duration of one scheduling run.
type Surveyor struct {
	ID   string
	Name string

	// Active surveyors are the only ones considered for scheduling
	Active bool

	// AreaPreference is advisory for manual edits but a hard eligibility
	// filter during auto-population. Nil means either area.
	AreaPreference *Area

	// ShiftPreference biases candidate scoring. Nil means no preference.
	ShiftPreference *Shift

	// NonAvailability holds dates the surveyor cannot work
	NonAvailability map[DateKey]bool
}

// IsAvailable reports whether the surveyor can work the given date
func (s *Surveyor) IsAvailable(date DateKey) bool {
	return !s.NonAvailability[date]
}

// Assignment is a single working shift for one surveyor on one date.
// At most one DAY/NIGHT assignment per (date, surveyor) may exist.
type Assignment struct {
	ID         string
	SurveyorID string
	Shift      Shift
	BreakMins  int
	Confirmed  bool
}

// AssignmentsByDate maps each date to the assignments scheduled on it
type AssignmentsByDate map[DateKey][]Assignment

// WorkingFor returns the working (DAY/NIGHT) assignments a surveyor holds
// on the given date
func (a AssignmentsByDate) WorkingFor(date DateKey, surveyorID string) []Assignment {
	var out []Assignment
	for _, asgn := range a[date] {
		if asgn.SurveyorID == surveyorID && asgn.Shift.IsWorking() {
			out = append(out, asgn)
		}
	}
	return out
}

// HasWorking reports whether the surveyor holds any working assignment on
// the given date
func (a AssignmentsByDate) HasWorking(date DateKey, surveyorID string) bool {
	for _, asgn := range a[date] {
		if asgn.SurveyorID == surveyorID && asgn.Shift.IsWorking() {
			return true
		}
	}
	return false
}

// HasShift reports whether the surveyor holds an assignment of the given
// shift on the given date
func (a AssignmentsByDate) HasShift(date DateKey, surveyorID string, shift Shift) bool {
	for _, asgn := range a[date] {
		if asgn.SurveyorID == surveyorID && asgn.Shift == shift {
			return true
		}
	}
	return false
}

// CountShift returns how many assignments of the given shift exist on a date
func (a AssignmentsByDate) CountShift(date DateKey, shift Shift) int {
	count := 0
	for _, asgn := range a[date] {
		if asgn.Shift == shift {
			count++
		}
	}
	return count
}

// Clone returns a deep copy so callers can extend a roster without
// mutating the original
func (a AssignmentsByDate) Clone() AssignmentsByDate {
	out := make(AssignmentsByDate, len(a))
	for date, asgns := range a {
		copied := make([]Assignment, len(asgns))
		copy(copied, asgns)
		out[date] = copied
	}
	return out
}

// RosterStatus is the lifecycle state of a roster
type RosterStatus string

const (
	RosterDraft     RosterStatus = "draft"
	RosterPublished RosterStatus = "published"
	RosterConfirmed RosterStatus = "confirmed"
)

// Roster is a fortnight of assignments for one area
type Roster struct {
	ID        string
	Area      Area
	StartDate DateKey
	EndDate   DateKey
	ByDate    AssignmentsByDate
	Status    RosterStatus
}

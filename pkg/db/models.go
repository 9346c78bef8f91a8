package db

// Surveyor is a database surveyor record. Preferences are stored as plain
// text; empty means no preference.
type Surveyor struct {
	ID              string
	Name            string
	Active          bool
	AreaPreference  string
	ShiftPreference string
	NonAvailability []string
}

// Assignment is a database assignment record, keyed by (area, date,
// surveyor). OFF shifts are never stored; deleting the row is the OFF edit.
type Assignment struct {
	ID         string
	Area       string
	Date       string
	SurveyorID string
	Shift      string
	BreakMins  int
	Confirmed  bool
}

// DemandSetting is an explicit per-date staffing target for one area
type DemandSetting struct {
	Area  string
	Date  string
	Day   int
	Night int
}

// WeekendWorked records a confirmed weekend shift for the rolling
// weekend-history window
type WeekendWorked struct {
	SurveyorID string
	Date       string
}

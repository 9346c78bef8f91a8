package model

// WeekendHistoryDays is the rolling window over which a previously worked
// weekend blocks new weekend assignments
const WeekendHistoryDays = 21

// WeekendHistory records, per surveyor, the weekend dates on which a
// confirmed shift was worked. It is the only state carried between
// scheduling runs.
type WeekendHistory map[string]map[DateKey]bool

// Record marks a weekend date as worked by the surveyor
func (h WeekendHistory) Record(surveyorID string, date DateKey) {
	if h[surveyorID] == nil {
		h[surveyorID] = make(map[DateKey]bool)
	}
	h[surveyorID][date] = true
}

// Prune drops entries older than the rolling window before the given
// window start
func (h WeekendHistory) Prune(windowStart DateKey) {
	cutoff := windowStart.AddDays(-WeekendHistoryDays)
	for surveyorID, dates := range h {
		for date := range dates {
			if date < cutoff {
				delete(dates, date)
			}
		}
		if len(dates) == 0 {
			delete(h, surveyorID)
		}
	}
}

// WorkedWeekendWithin reports whether the surveyor worked a weekend in the
// rolling window before the given window start
func (h WeekendHistory) WorkedWeekendWithin(surveyorID string, windowStart DateKey) bool {
	cutoff := windowStart.AddDays(-WeekendHistoryDays)
	for date := range h[surveyorID] {
		if date >= cutoff && date < windowStart {
			return true
		}
	}
	return false
}

package services

import (
	"github.com/oakmere/surveyor-rota/internal/config"
	"github.com/oakmere/surveyor-rota/pkg/core/model"
	"github.com/oakmere/surveyor-rota/pkg/db"
)

// surveyorsFromRecords maps database surveyor records into domain surveyors
func surveyorsFromRecords(records []db.Surveyor) []model.Surveyor {
	surveyors := make([]model.Surveyor, 0, len(records))
	for _, rec := range records {
		s := model.Surveyor{
			ID:              rec.ID,
			Name:            rec.Name,
			Active:          rec.Active,
			NonAvailability: make(map[model.DateKey]bool, len(rec.NonAvailability)),
		}
		if rec.AreaPreference != "" {
			area := model.Area(rec.AreaPreference)
			s.AreaPreference = &area
		}
		if rec.ShiftPreference != "" {
			shift := model.Shift(rec.ShiftPreference)
			s.ShiftPreference = &shift
		}
		for _, date := range rec.NonAvailability {
			s.NonAvailability[model.DateKey(date)] = true
		}
		surveyors = append(surveyors, s)
	}
	return surveyors
}

// assignmentsFromRecords groups database assignment records by date
func assignmentsFromRecords(records []db.Assignment) model.AssignmentsByDate {
	byDate := make(model.AssignmentsByDate)
	for _, rec := range records {
		date := model.DateKey(rec.Date)
		byDate[date] = append(byDate[date], model.Assignment{
			ID:         rec.ID,
			SurveyorID: rec.SurveyorID,
			Shift:      model.Shift(rec.Shift),
			BreakMins:  rec.BreakMins,
			Confirmed:  rec.Confirmed,
		})
	}
	return byDate
}

// assignmentRecords flattens a roster into database records for one area
func assignmentRecords(area model.Area, byDate model.AssignmentsByDate) []db.Assignment {
	var records []db.Assignment
	for date, assignments := range byDate {
		for _, a := range assignments {
			if !a.Shift.IsWorking() {
				continue
			}
			records = append(records, db.Assignment{
				ID:         a.ID,
				Area:       string(area),
				Date:       string(date),
				SurveyorID: a.SurveyorID,
				Shift:      string(a.Shift),
				BreakMins:  a.BreakMins,
				Confirmed:  a.Confirmed,
			})
		}
	}
	return records
}

// weekendHistoryFromRecords builds the rolling weekend-history map
func weekendHistoryFromRecords(records []db.WeekendWorked) model.WeekendHistory {
	history := make(model.WeekendHistory)
	for _, rec := range records {
		history.Record(rec.SurveyorID, model.DateKey(rec.Date))
	}
	return history
}

// buildDemand combines explicit per-date settings, recurrence-based config
// overrides, and the area's configured template. Explicit database settings
// win over config overrides on the same date.
func buildDemand(area model.Area, settings []db.DemandSetting, overrides map[string]config.DemandCounts, cfg *config.Config) *model.Demand {
	demand := &model.Demand{ByDate: make(map[model.DateKey]model.DayNight)}

	for date, counts := range overrides {
		demand.ByDate[model.DateKey(date)] = model.DayNight{Day: counts.Day, Night: counts.Night}
	}
	for _, s := range settings {
		demand.ByDate[model.DateKey(s.Date)] = model.DayNight{Day: s.Day, Night: s.Night}
	}

	if cfg != nil {
		if tpl, ok := cfg.DemandTemplates[string(area)]; ok {
			demand.Template = &model.DemandTemplate{
				MonFriDay: tpl.MonFriDay,
				SatDay:    tpl.SatDay,
				Night:     tpl.Night,
			}
		}
	}

	return demand
}

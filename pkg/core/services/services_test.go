package services

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oakmere/surveyor-rota/internal/config"
	"github.com/oakmere/surveyor-rota/pkg/core/model"
	"github.com/oakmere/surveyor-rota/pkg/db"
)

// anchor is a Monday; the window runs 2025-01-06 to 2025-01-19
var anchor = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

// fakeStore is an in-memory stand-in for the postgres layer
type fakeStore struct {
	surveyors   []db.Surveyor
	assignments []db.Assignment
	demand      []db.DemandSetting
	weekend     []db.WeekendWorked

	replaced        bool
	replacedRecords []db.Assignment
	insertedHistory []db.WeekendWorked
	prunedBefore    string
	upserted        []db.Assignment
	deleted         []string
}

func (f *fakeStore) GetSurveyors(ctx context.Context) ([]db.Surveyor, error) {
	return f.surveyors, nil
}

func (f *fakeStore) GetAssignments(ctx context.Context, area, from, to string) ([]db.Assignment, error) {
	var out []db.Assignment
	for _, a := range f.assignments {
		if a.Area == area && a.Date >= from && a.Date <= to {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeStore) GetDemandSettings(ctx context.Context, area, from, to string) ([]db.DemandSetting, error) {
	var out []db.DemandSetting
	for _, d := range f.demand {
		if d.Area == area && d.Date >= from && d.Date <= to {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeStore) GetWeekendHistory(ctx context.Context) ([]db.WeekendWorked, error) {
	return f.weekend, nil
}

func (f *fakeStore) ReplaceAssignments(ctx context.Context, area, from, to string, assignments []db.Assignment) error {
	f.replaced = true
	f.replacedRecords = assignments
	return nil
}

func (f *fakeStore) InsertWeekendHistory(ctx context.Context, entries []db.WeekendWorked) error {
	f.insertedHistory = append(f.insertedHistory, entries...)
	return nil
}

func (f *fakeStore) PruneWeekendHistory(ctx context.Context, before string) error {
	f.prunedBefore = before
	return nil
}

func (f *fakeStore) UpsertAssignment(ctx context.Context, assignment db.Assignment) error {
	f.upserted = append(f.upserted, assignment)
	return nil
}

func (f *fakeStore) DeleteAssignment(ctx context.Context, area, date, surveyorID string) error {
	f.deleted = append(f.deleted, area+"|"+date+"|"+surveyorID)
	return nil
}

func rosterConfig() *config.Config {
	return &config.Config{
		DatabaseURL: "postgres://localhost/test",
		DemandTemplates: map[string]config.DemandTemplateConfig{
			"NORTH": {MonFriDay: 1, SatDay: 0, Night: 0},
		},
	}
}

func activeSurveyors() []db.Surveyor {
	return []db.Surveyor{
		{ID: "s1", Name: "Alice", Active: true},
		{ID: "s2", Name: "Bob", Active: true},
	}
}

func TestPopulateRoster_DryRun(t *testing.T) {
	store := &fakeStore{surveyors: activeSurveyors()}

	result, err := PopulateRoster(context.Background(), store, rosterConfig(), zap.NewNop(),
		model.AreaNorth, anchor, true, rand.New(rand.NewSource(1)))

	require.NoError(t, err)
	assert.False(t, result.Persisted)
	assert.False(t, store.replaced, "dry run must not write")
	assert.Empty(t, store.insertedHistory)

	// 10 weekdays of one day shift each
	total := 0
	for _, asgns := range result.Assignments {
		total += len(asgns)
	}
	assert.Equal(t, 10, total)
	assert.Equal(t, model.DateKey("2025-01-06"), result.WindowStart)
	assert.Equal(t, model.DateKey("2025-01-19"), result.WindowEnd)
}

func TestPopulateRoster_PersistsAndRecordsWeekends(t *testing.T) {
	store := &fakeStore{surveyors: activeSurveyors()}
	cfg := rosterConfig()
	cfg.DemandTemplates["NORTH"] = config.DemandTemplateConfig{MonFriDay: 0, SatDay: 1, Night: 0}

	result, err := PopulateRoster(context.Background(), store, cfg, zap.NewNop(),
		model.AreaNorth, anchor, false, rand.New(rand.NewSource(1)))

	require.NoError(t, err)
	assert.True(t, result.Persisted)
	assert.True(t, store.replaced)

	// Both Saturdays filled, each by a different surveyor
	require.Len(t, store.replacedRecords, 2)
	assert.Len(t, store.insertedHistory, 2, "weekend work feeds the rolling history")

	// History pruned back to the 21-day horizon before the window
	assert.Equal(t, "2024-12-16", store.prunedBefore)
}

func TestPopulateRoster_ExplicitDemandWinsOverTemplate(t *testing.T) {
	store := &fakeStore{
		surveyors: activeSurveyors(),
		demand: []db.DemandSetting{
			{Area: "NORTH", Date: "2025-01-08", Day: 2, Night: 0},
		},
	}
	cfg := rosterConfig()
	cfg.DemandTemplates["NORTH"] = config.DemandTemplateConfig{MonFriDay: 1, SatDay: 0, Night: 0}

	result, err := PopulateRoster(context.Background(), store, cfg, zap.NewNop(),
		model.AreaNorth, anchor, true, rand.New(rand.NewSource(1)))

	require.NoError(t, err)
	assert.Equal(t, 2, result.Assignments.CountShift("2025-01-08", model.ShiftDay))
	assert.Equal(t, 1, result.Assignments.CountShift("2025-01-07", model.ShiftDay))
}

func TestPopulateRoster_NoActiveSurveyors(t *testing.T) {
	store := &fakeStore{surveyors: []db.Surveyor{{ID: "s1", Name: "Alice", Active: false}}}

	_, err := PopulateRoster(context.Background(), store, rosterConfig(), zap.NewNop(),
		model.AreaNorth, anchor, true, rand.New(rand.NewSource(1)))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to populate roster")
}

func TestValidateRoster_IgnoresInactiveSurveyors(t *testing.T) {
	store := &fakeStore{
		surveyors: []db.Surveyor{
			{ID: "s1", Name: "Alice", Active: true},
			{ID: "s2", Name: "Bob", Active: false},
		},
		assignments: []db.Assignment{
			{ID: "a1", Area: "NORTH", Date: "2025-01-07", SurveyorID: "s1", Shift: "DAY"},
			{ID: "a2", Area: "NORTH", Date: "2025-01-08", SurveyorID: "s2", Shift: "DAY"},
		},
	}

	issues, err := ValidateRoster(context.Background(), store, &config.Config{DatabaseURL: "x"},
		zap.NewNop(), model.AreaNorth, anchor)

	require.NoError(t, err)

	var aliceFlagged, bobFlagged bool
	for _, issue := range issues {
		if strings.Contains(issue, "Alice") {
			aliceFlagged = true
		}
		if strings.Contains(issue, "Bob") {
			bobFlagged = true
		}
	}
	assert.True(t, aliceFlagged, "Alice is under her shift target, got %v", issues)
	assert.False(t, bobFlagged, "inactive surveyors are not validated")
}

func TestValidateRoster_CountsOtherAreaShifts(t *testing.T) {
	assignments := []db.Assignment{}
	for _, d := range []string{"2025-01-06", "2025-01-07", "2025-01-08", "2025-01-09"} {
		assignments = append(assignments, db.Assignment{
			ID: "n" + d, Area: "NORTH", Date: d, SurveyorID: "s1", Shift: "DAY",
		})
	}
	for _, d := range []string{"2025-01-13", "2025-01-14", "2025-01-15", "2025-01-16", "2025-01-17"} {
		assignments = append(assignments, db.Assignment{
			ID: "s" + d, Area: "SOUTH", Date: d, SurveyorID: "s1", Shift: "DAY",
		})
	}
	store := &fakeStore{
		surveyors:   []db.Surveyor{{ID: "s1", Name: "Alice", Active: true}},
		assignments: assignments,
	}

	issues, err := ValidateRoster(context.Background(), store, &config.Config{DatabaseURL: "x"},
		zap.NewNop(), model.AreaNorth, anchor)

	require.NoError(t, err)
	assert.Empty(t, issues, "cross-area shifts count toward the target")
}

func TestEditAssignment_OffDeletes(t *testing.T) {
	store := &fakeStore{}

	err := EditAssignment(context.Background(), store, zap.NewNop(), EditRequest{
		Area:       model.AreaNorth,
		Date:       "2025-01-07",
		SurveyorID: "s1",
		Shift:      model.ShiftOff,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"NORTH|2025-01-07|s1"}, store.deleted)
	assert.Empty(t, store.upserted)
}

func TestEditAssignment_PatchesExisting(t *testing.T) {
	store := &fakeStore{
		assignments: []db.Assignment{
			{ID: "a1", Area: "NORTH", Date: "2025-01-07", SurveyorID: "s1", Shift: "DAY"},
		},
	}

	err := EditAssignment(context.Background(), store, zap.NewNop(), EditRequest{
		Area:       model.AreaNorth,
		Date:       "2025-01-07",
		SurveyorID: "s1",
		Shift:      model.ShiftNight,
		BreakMins:  30,
		Confirmed:  true,
	})

	require.NoError(t, err)
	require.Len(t, store.upserted, 1)
	assert.Equal(t, "a1", store.upserted[0].ID, "existing assignment keeps its ID")
	assert.Equal(t, "NIGHT", store.upserted[0].Shift)
	assert.Equal(t, 30, store.upserted[0].BreakMins)
	assert.True(t, store.upserted[0].Confirmed)
}

func TestEditAssignment_InsertsNew(t *testing.T) {
	store := &fakeStore{
		assignments: []db.Assignment{
			{ID: "a1", Area: "NORTH", Date: "2025-01-07", SurveyorID: "s1", Shift: "DAY"},
		},
	}

	err := EditAssignment(context.Background(), store, zap.NewNop(), EditRequest{
		Area:       model.AreaNorth,
		Date:       "2025-01-07",
		SurveyorID: "s2",
		Shift:      model.ShiftDay,
	})

	require.NoError(t, err)
	require.Len(t, store.upserted, 1)
	assert.NotEmpty(t, store.upserted[0].ID)
	assert.Equal(t, "s2", store.upserted[0].SurveyorID)
}

func TestEditAssignment_RejectsUnknownShift(t *testing.T) {
	err := EditAssignment(context.Background(), &fakeStore{}, zap.NewNop(), EditRequest{
		Area:       model.AreaNorth,
		Date:       "2025-01-07",
		SurveyorID: "s1",
		Shift:      model.Shift("SPLIT"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid shift")
}

func TestBuildDemand_Precedence(t *testing.T) {
	settings := []db.DemandSetting{{Area: "NORTH", Date: "2025-01-08", Day: 1, Night: 1}}
	overrides := map[string]config.DemandCounts{
		"2025-01-08": {Day: 5, Night: 2},
		"2025-01-09": {Day: 4, Night: 0},
	}
	cfg := rosterConfig()

	demand := buildDemand(model.AreaNorth, settings, overrides, cfg)

	// Database settings win over config overrides on the same date
	assert.Equal(t, model.DayNight{Day: 1, Night: 1}, demand.ByDate["2025-01-08"])
	assert.Equal(t, model.DayNight{Day: 4, Night: 0}, demand.ByDate["2025-01-09"])

	require.NotNil(t, demand.Template)
	assert.Equal(t, 1, demand.Template.MonFriDay)
}

package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/oakmere/surveyor-rota/internal/config"
	"github.com/oakmere/surveyor-rota/pkg/core/model"
	"github.com/oakmere/surveyor-rota/pkg/core/scheduler"
	"github.com/oakmere/surveyor-rota/pkg/db"
)

// PopulateStore defines the database operations needed for populating a
// roster
type PopulateStore interface {
	GetSurveyors(ctx context.Context) ([]db.Surveyor, error)
	GetAssignments(ctx context.Context, area, from, to string) ([]db.Assignment, error)
	GetDemandSettings(ctx context.Context, area, from, to string) ([]db.DemandSetting, error)
	GetWeekendHistory(ctx context.Context) ([]db.WeekendWorked, error)
	ReplaceAssignments(ctx context.Context, area, from, to string, assignments []db.Assignment) error
	InsertWeekendHistory(ctx context.Context, entries []db.WeekendWorked) error
	PruneWeekendHistory(ctx context.Context, before string) error
}

// PopulateRosterResult contains the populated fortnight and run diagnostics
type PopulateRosterResult struct {
	Area        model.Area
	WindowStart model.DateKey
	WindowEnd   model.DateKey
	Assignments model.AssignmentsByDate
	Issues      []string
	Stats       map[string]*scheduler.SurveyorStats
	Persisted   bool
}

// PopulateRoster loads the scheduling context, runs the auto-populate
// scheduler for one area's fortnight, and persists the result in a single
// transaction unless dryRun is set. A nil rnd seeds the balancing shuffle
// from the clock.
func PopulateRoster(
	ctx context.Context,
	store PopulateStore,
	cfg *config.Config,
	logger *zap.Logger,
	area model.Area,
	anchor time.Time,
	dryRun bool,
	rnd *rand.Rand,
) (*PopulateRosterResult, error) {
	window := model.FortnightWindow(anchor)
	windowStart, windowEnd := window[0], window[len(window)-1]

	logger.Info("Populating roster",
		zap.String("area", string(area)),
		zap.String("window_start", string(windowStart)),
		zap.String("window_end", string(windowEnd)),
		zap.Bool("dry_run", dryRun))

	surveyorRecords, err := store.GetSurveyors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch surveyors: %w", err)
	}
	surveyors := surveyorsFromRecords(surveyorRecords)
	logger.Debug("Loaded surveyors", zap.Int("count", len(surveyors)))

	assignmentRecordsExisting, err := store.GetAssignments(ctx, string(area), string(windowStart), string(windowEnd))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}
	existing := assignmentsFromRecords(assignmentRecordsExisting)
	logger.Debug("Loaded existing assignments", zap.Int("count", len(assignmentRecordsExisting)))

	settings, err := store.GetDemandSettings(ctx, string(area), string(windowStart), string(windowEnd))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch demand settings: %w", err)
	}

	overrides, err := cfg.DemandOverridesForRange(windowStart.Time(), windowEnd.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to expand demand overrides: %w", err)
	}
	demand := buildDemand(area, settings, overrides, cfg)

	historyRecords, err := store.GetWeekendHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weekend history: %w", err)
	}
	history := weekendHistoryFromRecords(historyRecords)
	history.Prune(windowStart)

	result, err := scheduler.AutoPopulate(scheduler.Input{
		Surveyors:      surveyors,
		Anchor:         anchor,
		WeekendHistory: history,
		Existing:       existing,
		Area:           area,
		Demand:         demand,
		NightRotation:  cfg.NightRotation,
		Rand:           rnd,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to populate roster: %w", err)
	}

	logger.Info("Scheduler run complete",
		zap.Int("issues", len(result.Issues)),
		zap.Int("surveyors_scheduled", len(result.Stats)))

	out := &PopulateRosterResult{
		Area:        area,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		Assignments: result.Assignments,
		Issues:      result.Issues,
		Stats:       result.Stats,
	}

	if dryRun {
		logger.Info("Dry run - assignments not persisted")
		return out, nil
	}

	records := assignmentRecords(area, result.Assignments)
	if err := store.ReplaceAssignments(ctx, string(area), string(windowStart), string(windowEnd), records); err != nil {
		return nil, fmt.Errorf("failed to persist assignments: %w", err)
	}

	if err := recordWeekendWork(ctx, store, result.Assignments); err != nil {
		return nil, err
	}

	cutoff := windowStart.AddDays(-model.WeekendHistoryDays)
	if err := store.PruneWeekendHistory(ctx, string(cutoff)); err != nil {
		return nil, fmt.Errorf("failed to prune weekend history: %w", err)
	}

	out.Persisted = true
	logger.Info("Roster persisted", zap.Int("assignments", len(records)))
	return out, nil
}

// recordWeekendWork stores every weekend working assignment into the
// rolling weekend history so future runs respect the 21-day rule
func recordWeekendWork(ctx context.Context, store PopulateStore, byDate model.AssignmentsByDate) error {
	var entries []db.WeekendWorked
	for date, assignments := range byDate {
		if !date.IsWeekend() {
			continue
		}
		for _, a := range assignments {
			if a.Shift.IsWorking() {
				entries = append(entries, db.WeekendWorked{
					SurveyorID: a.SurveyorID,
					Date:       string(date),
				})
			}
		}
	}

	if err := store.InsertWeekendHistory(ctx, entries); err != nil {
		return fmt.Errorf("failed to record weekend history: %w", err)
	}
	return nil
}
